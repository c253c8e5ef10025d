package asset

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository enforces the same uniqueness semantics as the ent
// repository, for tests and storage-less dev runs.
type MemoryRepository struct {
	mu       sync.Mutex
	nextID   int
	byID     map[int]*Asset
	byDigest map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:     make(map[int]*Asset),
		byDigest: make(map[string]int),
	}
}

func digestKey(ownerID, contentDigest string) string {
	return ownerID + "\x00" + contentDigest
}

func (r *MemoryRepository) Create(_ context.Context, a *Asset) (*Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := digestKey(a.OwnerID, a.ContentDigest)
	if _, exists := r.byDigest[key]; exists {
		return nil, ErrDuplicate
	}

	r.nextID++
	stored := *a
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byID[stored.ID] = &stored
	r.byDigest[key] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) ByID(_ context.Context, id int) (*Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *stored
	return &out, nil
}

func (r *MemoryRepository) ByOwnerAndDigest(_ context.Context, ownerID, contentDigest string) (*Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byDigest[digestKey(ownerID, contentDigest)]
	if !ok {
		return nil, ErrNotFound
	}
	out := *r.byID[id]
	return &out, nil
}
