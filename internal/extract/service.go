package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"structify/internal/asset"
	"structify/internal/llm"
)

// AssetSource is the slice of the asset registry the extraction flow
// needs: ownership-checked resolution and payload loading.
type AssetSource interface {
	Resolve(ctx context.Context, ownerID string, id int) (*asset.Asset, error)
	LoadBytes(ctx context.Context, a *asset.Asset) ([]byte, string, error)
}

// ExtractInput is one extraction request.
type ExtractInput struct {
	OwnerID string
	Prompt  string
	Fields  []FieldSpec
	AssetID *int
}

// ExtractOutput carries the validated result and whether it was served
// from the cache without a model call.
type ExtractOutput struct {
	Data      map[string]any
	FromCache bool
}

// Service runs the extraction pipeline: resolve the asset, derive the
// cache key, and either serve a cached result or make exactly one
// gateway call, validate it, and persist it.
type Service struct {
	assets  AssetSource
	gateway llm.Gateway
	cache   *Cache
	log     *slog.Logger
}

func NewService(assets AssetSource, gateway llm.Gateway, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{assets: assets, gateway: gateway, cache: cache, log: logger}
}

// Extract serves one request. Asset resolution runs before the cache
// lookup so authorization failures surface even for cached keys. On a
// hit no schema is built and the gateway is never called; on a miss the
// result is validated and persisted before it is returned.
func (s *Service) Extract(ctx context.Context, in ExtractInput) (*ExtractOutput, error) {
	var (
		attachment  *llm.Attachment
		assetDigest string
	)
	if in.AssetID != nil {
		a, err := s.assets.Resolve(ctx, in.OwnerID, *in.AssetID)
		if err != nil {
			return nil, err
		}
		data, contentType, err := s.assets.LoadBytes(ctx, a)
		if err != nil {
			return nil, err
		}
		attachment = &llm.Attachment{Data: data, MIMEType: contentType}
		// The digest stored at upload time is authoritative; the loaded
		// bytes are never re-hashed here.
		assetDigest = a.ContentDigest
	}

	key, err := KeyFor(in.Prompt, in.Fields, assetDigest)
	if err != nil {
		return nil, err
	}

	rec, err := s.cache.Lookup(ctx, key)
	switch {
	case err == nil:
		data, derr := DecodeResult(rec.Result)
		if derr == nil {
			s.log.Info("extract.served", "key", shortKey(key), "fields", len(in.Fields), "from_cache", true)
			return &ExtractOutput{Data: data, FromCache: true}, nil
		}
		// Unreadable row: treat as a miss and recompute rather than fail
		// the request on a storage artifact.
		s.log.Warn("extract.cache.corrupt", "key", shortKey(key), "record_id", rec.ID, "err", derr)
	case errors.Is(err, ErrCacheMiss):
		// fresh path
	default:
		return nil, fmt.Errorf("cache lookup: %w", err)
	}

	schema, err := BuildSchema(in.Fields)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	raw, err := s.gateway.Complete(ctx, in.Prompt, schema.Vendor, attachment)
	if err != nil {
		s.log.Warn("extract.gateway.failed", "key", shortKey(key), "err", err,
			"duration_ms", time.Since(started).Milliseconds())
		return nil, err
	}
	s.log.Debug("extract.gateway.done", "key", shortKey(key),
		"duration_ms", time.Since(started).Milliseconds())

	data, err := Validate(raw, schema.Fields)
	if err != nil {
		return nil, err
	}
	if verr := schema.CheckReply(raw); verr != nil {
		s.log.Warn("extract.audit.nonconformant", "key", shortKey(key), "err", verr)
	}

	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode raw output: %w", err)
	}
	resultJSON, err := EncodeResult(data)
	if err != nil {
		return nil, err
	}
	if _, err := s.cache.Store(ctx, &Record{
		CacheKey:    key,
		OwnerID:     strings.TrimSpace(in.OwnerID),
		Prompt:      in.Prompt,
		FieldSpecs:  schema.Fields,
		SchemaDoc:   schema.DocJSON,
		AssetDigest: assetDigest,
		RawOutput:   rawJSON,
		Result:      resultJSON,
	}); err != nil {
		return nil, err
	}

	s.log.Info("extract.served", "key", shortKey(key), "fields", len(schema.Fields),
		"from_cache", false, "duration_ms", time.Since(started).Milliseconds())
	return &ExtractOutput{Data: data, FromCache: false}, nil
}
