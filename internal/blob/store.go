package blob

import (
	"context"
	"errors"
)

// Store defines operations for persisting opaque asset payloads.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
	URL(ctx context.Context, key string) (string, error)
}

var ErrNotFound = errors.New("blob not found")
