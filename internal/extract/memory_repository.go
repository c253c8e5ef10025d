package extract

import (
	"context"
	"sync"
	"time"
)

// MemoryCacheRepository is an in-memory CacheRepository for tests and
// local runs without a database. It keeps every appended row, like the
// durable table does.
type MemoryCacheRepository struct {
	mu     sync.Mutex
	nextID int
	rows   []*Record
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{}
}

func (r *MemoryCacheRepository) Append(_ context.Context, rec *Record) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *rec
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.rows = append(r.rows, &stored)
	out := stored
	return &out, nil
}

func (r *MemoryCacheRepository) LatestByKey(_ context.Context, key string) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *Record
	for _, row := range r.rows {
		if row.CacheKey != key {
			continue
		}
		if latest == nil || row.CreatedAt.After(latest.CreatedAt) ||
			(row.CreatedAt.Equal(latest.CreatedAt) && row.ID > latest.ID) {
			latest = row
		}
	}
	if latest == nil {
		return nil, ErrCacheMiss
	}
	out := *latest
	return &out, nil
}

// Len reports the number of appended rows.
func (r *MemoryCacheRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
