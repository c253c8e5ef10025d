package blob

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	memcache "structify/internal/cache/memory"
)

type CacheConfig struct {
	BlobTTL        time.Duration
	BlobMaxEntries int
	BlobMaxBytes   int

	URLTTL        time.Duration
	URLMaxEntries int
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		BlobTTL:        5 * time.Minute,
		BlobMaxEntries: 256,
		BlobMaxBytes:   64 * 1024 * 1024, // 64MiB
		URLTTL:         5 * time.Minute,
		URLMaxEntries:  1024,
	}
}

type MetricsSnapshot struct {
	BlobHits       uint64
	BlobMisses     uint64
	URLHits        uint64
	URLMisses      uint64
	OriginReads    uint64
	OriginWrites   uint64
	OriginReadErr  uint64
	OriginWriteErr uint64
}

type metrics struct {
	blobHits       atomic.Uint64
	blobMisses     atomic.Uint64
	urlHits        atomic.Uint64
	urlMisses      atomic.Uint64
	originReads    atomic.Uint64
	originWrites   atomic.Uint64
	originReadErr  atomic.Uint64
	originWriteErr atomic.Uint64
}

func (m *metrics) snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		BlobHits:       m.blobHits.Load(),
		BlobMisses:     m.blobMisses.Load(),
		URLHits:        m.urlHits.Load(),
		URLMisses:      m.urlMisses.Load(),
		OriginReads:    m.originReads.Load(),
		OriginWrites:   m.originWrites.Load(),
		OriginReadErr:  m.originReadErr.Load(),
		OriginWriteErr: m.originWriteErr.Load(),
	}
}

type cachedBlob struct {
	data        []byte
	contentType string
}

// CachedStore fronts an origin Store with an in-memory LRU so repeat
// extractions over the same asset do not re-fetch payload bytes.
// Presigned URLs are cached for less than their expiry window.
type CachedStore struct {
	origin Store

	blobCache *memcache.LRUTTL[string, cachedBlob]
	urlCache  *memcache.LRUTTL[string, string]
	metrics   metrics
}

func NewCachedStore(origin Store, cfg CacheConfig) *CachedStore {
	def := DefaultCacheConfig()
	if cfg.BlobTTL <= 0 {
		cfg.BlobTTL = def.BlobTTL
	}
	if cfg.BlobMaxEntries <= 0 {
		cfg.BlobMaxEntries = def.BlobMaxEntries
	}
	if cfg.BlobMaxBytes <= 0 {
		cfg.BlobMaxBytes = def.BlobMaxBytes
	}
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = def.URLTTL
	}
	if cfg.URLMaxEntries <= 0 {
		cfg.URLMaxEntries = def.URLMaxEntries
	}

	return &CachedStore{
		origin:    origin,
		blobCache: memcache.NewLRUTTL[string, cachedBlob](cfg.BlobMaxEntries, cfg.BlobMaxBytes, cfg.BlobTTL),
		urlCache:  memcache.NewLRUTTL[string, string](cfg.URLMaxEntries, 0, cfg.URLTTL),
	}
}

func (s *CachedStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	s.metrics.originWrites.Add(1)
	if err := s.origin.Put(ctx, key, data, contentType); err != nil {
		s.metrics.originWriteErr.Add(1)
		return err
	}

	key = strings.TrimSpace(key)
	copied := append([]byte(nil), data...)
	s.blobCache.Set(key, cachedBlob{data: copied, contentType: contentType}, len(copied))
	s.urlCache.Delete(key)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	key = strings.TrimSpace(key)
	if blob, ok := s.blobCache.Get(key); ok {
		s.metrics.blobHits.Add(1)
		return append([]byte(nil), blob.data...), blob.contentType, nil
	}
	s.metrics.blobMisses.Add(1)
	s.metrics.originReads.Add(1)

	data, contentType, err := s.origin.Get(ctx, key)
	if err != nil {
		s.metrics.originReadErr.Add(1)
		return nil, "", err
	}
	copied := append([]byte(nil), data...)
	s.blobCache.Set(key, cachedBlob{data: copied, contentType: contentType}, len(copied))
	return append([]byte(nil), copied...), contentType, nil
}

func (s *CachedStore) URL(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if cached, ok := s.urlCache.Get(key); ok {
		s.metrics.urlHits.Add(1)
		return cached, nil
	}
	s.metrics.urlMisses.Add(1)
	s.metrics.originReads.Add(1)

	url, err := s.origin.URL(ctx, key)
	if err != nil {
		s.metrics.originReadErr.Add(1)
		return "", err
	}
	if strings.TrimSpace(url) != "" {
		s.urlCache.Set(key, url, len(url))
	}
	return url, nil
}

func (s *CachedStore) Metrics() MetricsSnapshot {
	if s == nil {
		return MetricsSnapshot{}
	}
	return s.metrics.snapshot()
}
