package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"structify/internal/digest"
)

// keyFields is the canonical form a field list takes inside the cache
// key payload. Order is by name so permutations of the same request
// land on the same key.
type keyField struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// KeyFor derives the cache key for a request. The key covers the
// prompt, the normalized field list and the digest of the attached
// asset (empty string when there is none). It deliberately excludes
// the requesting principal: identical requests share work across
// owners.
func KeyFor(prompt string, fields []FieldSpec, assetDigest string) (string, error) {
	normalized := make([]keyField, 0, len(fields))
	for _, f := range fields {
		normalized = append(normalized, keyField{
			Name: strings.TrimSpace(f.Name),
			Kind: strings.ToLower(strings.TrimSpace(string(f.Kind))),
		})
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].Name < normalized[j].Name })

	payload := map[string]any{
		"prompt":     prompt,
		"fields":     normalized,
		"image_hash": assetDigest,
	}
	key, err := digest.Canonical(payload)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return key, nil
}

const defaultFrontEntries = 1024

// CacheMetrics is a point-in-time counter snapshot.
type CacheMetrics struct {
	Hits   uint64
	Misses uint64
}

// Cache fronts a durable CacheRepository with an in-process LRU so
// repeat lookups for hot keys skip the database. Records are treated
// as immutable once stored; both layers hand out shared pointers.
type Cache struct {
	repo  CacheRepository
	front *lru.Cache[string, *Record]
	log   *slog.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache wires the durable repository behind a front LRU of
// frontEntries records (defaulted when <= 0).
func NewCache(repo CacheRepository, frontEntries int, logger *slog.Logger) (*Cache, error) {
	if repo == nil {
		return nil, errors.New("extract: nil cache repository")
	}
	if frontEntries <= 0 {
		frontEntries = defaultFrontEntries
	}
	front, err := lru.New[string, *Record](frontEntries)
	if err != nil {
		return nil, fmt.Errorf("front cache: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{repo: repo, front: front, log: logger}, nil
}

// Lookup returns the newest record for key, consulting the front LRU
// before the repository. ErrCacheMiss means no principal has stored
// this request yet.
func (c *Cache) Lookup(ctx context.Context, key string) (*Record, error) {
	if rec, ok := c.front.Get(key); ok {
		c.hits.Add(1)
		c.log.Debug("extract.cache.hit", "key", shortKey(key), "layer", "front")
		return rec, nil
	}
	rec, err := c.repo.LatestByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			c.misses.Add(1)
			c.log.Debug("extract.cache.miss", "key", shortKey(key))
		}
		return nil, err
	}
	c.front.Add(key, rec)
	c.hits.Add(1)
	c.log.Debug("extract.cache.hit", "key", shortKey(key), "layer", "durable")
	return rec, nil
}

// Store appends rec to the durable repository and warms the front LRU.
// Concurrent writers may both append rows for the same key; reads
// resolve to the newest row, so the duplicate is harmless.
func (c *Cache) Store(ctx context.Context, rec *Record) (*Record, error) {
	persisted, err := c.repo.Append(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("persist extraction: %w", err)
	}
	c.front.Add(persisted.CacheKey, persisted)
	return persisted, nil
}

// Metrics reports hit and miss counts since construction.
func (c *Cache) Metrics() CacheMetrics {
	return CacheMetrics{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func shortKey(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}
