package asset

import (
	"context"
	"fmt"

	"structify/internal/ent"
	entasset "structify/internal/ent/asset"
)

// EntRepository persists assets through the generated ent client. The
// schema's unique (owner_id, content_digest) index backs ErrDuplicate.
type EntRepository struct {
	client *ent.Client
}

func NewEntRepository(client *ent.Client) *EntRepository {
	return &EntRepository{client: client}
}

func (r *EntRepository) Create(ctx context.Context, a *Asset) (*Asset, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("ent client is nil")
	}
	created, err := r.client.Asset.Create().
		SetOwnerID(a.OwnerID).
		SetStorageKey(a.StorageKey).
		SetURL(a.URL).
		SetContentDigest(a.ContentDigest).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return fromEnt(created), nil
}

func (r *EntRepository) ByID(ctx context.Context, id int) (*Asset, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("ent client is nil")
	}
	row, err := r.client.Asset.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromEnt(row), nil
}

func (r *EntRepository) ByOwnerAndDigest(ctx context.Context, ownerID, contentDigest string) (*Asset, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("ent client is nil")
	}
	row, err := r.client.Asset.Query().
		Where(
			entasset.OwnerID(ownerID),
			entasset.ContentDigest(contentDigest),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromEnt(row), nil
}

func fromEnt(row *ent.Asset) *Asset {
	if row == nil {
		return nil
	}
	return &Asset{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		StorageKey:    row.StorageKey,
		URL:           row.URL,
		ContentDigest: row.ContentDigest,
		CreatedAt:     row.CreatedAt,
	}
}
