package extract

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Record is one append-only cache entry: the request metadata that
// produced a validated result, plus the result itself. Rows are never
// updated; the newest row per CacheKey wins.
type Record struct {
	ID          int
	CacheKey    string
	OwnerID     string
	Prompt      string
	FieldSpecs  []FieldSpec
	SchemaDoc   json.RawMessage
	AssetDigest string
	RawOutput   json.RawMessage
	Result      json.RawMessage
	CreatedAt   time.Time
}

// ErrCacheMiss reports no record for a key.
var ErrCacheMiss = errors.New("no cached extraction for key")

// CacheRepository is the durable side of the extraction cache.
// Append never overwrites; LatestByKey orders by creation time with id
// as tiebreak and returns ErrCacheMiss for unknown keys.
type CacheRepository interface {
	Append(ctx context.Context, rec *Record) (*Record, error)
	LatestByKey(ctx context.Context, key string) (*Record, error)
}
