package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"structify/internal/asset"
	"structify/internal/blob"
	"structify/internal/config"
	"structify/internal/ent"
	"structify/internal/extract"
)

type appStores struct {
	assets    asset.Repository
	records   extract.CacheRepository
	blobs     blob.Store
	entClient *ent.Client
}

func initStores(ctx context.Context, cfg *config.Config) (*appStores, error) {
	blobs, err := initBlobStore(cfg)
	if err != nil {
		return nil, err
	}

	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initPostgresStores(ctx, dsn, blobs)
	}
	log.Printf("persistence: in-memory (DATABASE_URL not set)")
	return &appStores{
		assets:  asset.NewMemoryRepository(),
		records: extract.NewMemoryCacheRepository(),
		blobs:   blobs,
	}, nil
}

func initPostgresStores(ctx context.Context, dsn string, blobs blob.Store) (*appStores, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Printf("persistence: postgres")

	return &appStores{
		assets:    asset.NewEntRepository(client),
		records:   extract.NewEntCacheRepository(client),
		blobs:     blobs,
		entClient: client,
	}, nil
}

func initBlobStore(cfg *config.Config) (blob.Store, error) {
	var origin blob.Store
	if cfg.Blob.CanUseS3() {
		s3Store, err := blob.NewS3Store(blob.S3Config{
			Endpoint:  cfg.Blob.Endpoint,
			Region:    cfg.Blob.Region,
			AccessKey: cfg.Blob.AccessKey,
			SecretKey: cfg.Blob.SecretKey,
			Bucket:    cfg.Blob.Bucket,
			UseSSL:    cfg.Blob.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize blob s3 store: %w", err)
		}
		log.Printf("blob store: s3 bucket=%s endpoint=%s", cfg.Blob.Bucket, cfg.Blob.Endpoint)
		origin = s3Store
	} else {
		log.Printf("blob store: in-memory fallback (minio config incomplete)")
		origin = blob.NewMemoryStore()
	}

	cacheCfg := blob.DefaultCacheConfig()
	cacheCfg.BlobMaxBytes = cfg.Cache.BlobMB << 20
	return blob.NewCachedStore(origin, cacheCfg), nil
}

func (s *appStores) Close() error {
	if s.entClient != nil {
		return s.entClient.Close()
	}
	return nil
}
