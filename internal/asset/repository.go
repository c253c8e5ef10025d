package asset

import (
	"context"
	"errors"
)

// ErrDuplicate reports a (owner_id, content_digest) uniqueness
// violation on Create. The caller re-reads and returns the winner.
var ErrDuplicate = errors.New("asset already stored for owner and digest")

// Repository persists Asset records. Implementations must enforce the
// unique (owner_id, content_digest) constraint and surface violations
// as ErrDuplicate; lookups return ErrNotFound for missing rows.
type Repository interface {
	Create(ctx context.Context, a *Asset) (*Asset, error)
	ByID(ctx context.Context, id int) (*Asset, error)
	ByOwnerAndDigest(ctx context.Context, ownerID, contentDigest string) (*Asset, error)
}
