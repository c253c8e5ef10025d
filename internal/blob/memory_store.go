package blob

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type memObject struct {
	data        []byte
	contentType string
}

// MemoryStore keeps payloads in process memory. Used by tests and by
// dev runs without object storage configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memObject),
	}
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = memObject{
		data:        append([]byte(nil), data...),
		contentType: contentType,
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, string, error) {
	if s == nil {
		return nil, "", fmt.Errorf("store is nil")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, "", fmt.Errorf("key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.data[key]
	if !ok {
		return nil, "", ErrNotFound
	}
	return append([]byte(nil), obj.data...), obj.contentType, nil
}

func (s *MemoryStore) URL(_ context.Context, key string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("store is nil")
	}
	return "memory://" + strings.TrimSpace(key), nil
}
