package asset

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"structify/internal/blob"
	"structify/internal/digest"
)

// StoreInput carries one upload across the boundary: raw bytes plus the
// declared content type and the uploader's identity.
type StoreInput struct {
	OwnerID      string
	Data         []byte
	ContentType  string
	OriginalName string
}

// Registry owns asset records and their payload bytes. Store is
// idempotent per (owner, payload): re-uploading the same bytes returns
// the existing record without writing.
type Registry struct {
	repo  Repository
	blobs blob.Store
	log   *slog.Logger
}

func NewRegistry(repo Repository, blobs blob.Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{repo: repo, blobs: blobs, log: logger}
}

// Store persists a payload for its owner, deduplicating by content
// digest. The second return reports whether an existing asset was
// reused instead of written.
func (r *Registry) Store(ctx context.Context, in StoreInput) (*Asset, bool, error) {
	owner := strings.TrimSpace(in.OwnerID)
	if owner == "" {
		return nil, false, fmt.Errorf("%w: owner id is required", ErrInvalidAsset)
	}
	if len(in.Data) == 0 {
		return nil, false, fmt.Errorf("%w: empty payload", ErrInvalidAsset)
	}
	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, false, fmt.Errorf("%w: content type %q is not an image", ErrInvalidAsset, in.ContentType)
	}

	d := digest.Bytes(in.Data)
	existing, err := r.repo.ByOwnerAndDigest(ctx, owner, d)
	switch {
	case err == nil:
		r.log.Info("asset.store.dedup", "owner", owner, "digest", d[:12])
		return existing, true, nil
	case errors.Is(err, ErrNotFound):
		// novel payload, fall through to write
	default:
		return nil, false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	key := storageKey(owner, d, in.OriginalName)
	if err := r.blobs.Put(ctx, key, in.Data, contentType); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	url, err := r.blobs.URL(ctx, key)
	if err != nil {
		r.log.Warn("asset.store.url_failed", "owner", owner, "err", err)
		url = ""
	}

	created, err := r.repo.Create(ctx, &Asset{
		OwnerID:       owner,
		StorageKey:    key,
		URL:           url,
		ContentDigest: d,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			// Lost the uniqueness race to a concurrent identical upload.
			// Return the winner's record; our blob write is orphaned.
			winner, rerr := r.repo.ByOwnerAndDigest(ctx, owner, d)
			if rerr != nil {
				return nil, false, fmt.Errorf("%w: %w", ErrStorageUnavailable, rerr)
			}
			r.log.Warn("asset.store.race_lost", "owner", owner, "digest", d[:12], "winner_id", winner.ID)
			return winner, true, nil
		}
		return nil, false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	r.log.Info("asset.store.created", "owner", owner, "id", created.ID, "bytes", len(in.Data))
	return created, false, nil
}

// Resolve returns the asset after checking it belongs to ownerID. The
// check runs before any content read.
func (r *Registry) Resolve(ctx context.Context, ownerID string, id int) (*Asset, error) {
	a, err := r.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if a.OwnerID != strings.TrimSpace(ownerID) {
		return nil, ErrForbidden
	}
	return a, nil
}

// LoadBytes fetches the asset's payload from blob storage.
func (r *Registry) LoadBytes(ctx context.Context, a *Asset) ([]byte, string, error) {
	if a == nil || strings.TrimSpace(a.StorageKey) == "" {
		return nil, "", ErrCorruptReference
	}
	data, contentType, err := r.blobs.Get(ctx, a.StorageKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: stored object missing", ErrCorruptReference)
		}
		return nil, "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return data, contentType, nil
}

// Get resolves an asset for its owner and refreshes the retrieval URL.
func (r *Registry) Get(ctx context.Context, ownerID string, id int) (*Asset, error) {
	a, err := r.Resolve(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if url, uerr := r.blobs.URL(ctx, a.StorageKey); uerr == nil && strings.TrimSpace(url) != "" {
		fresh := *a
		fresh.URL = url
		return &fresh, nil
	}
	return a, nil
}

var safeExt = regexp.MustCompile(`^\.[a-zA-Z0-9]{1,8}$`)

// storageKey builds user_{owner}/{digest}_{suffix}{ext}. The random
// suffix keeps keys unique even for equal payloads across owners.
func storageKey(owner, contentDigest, originalName string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(originalName)))
	if !safeExt.MatchString(ext) {
		ext = ""
	}
	u := uuid.New()
	return fmt.Sprintf("user_%s/%s_%s%s", owner, contentDigest, hex.EncodeToString(u[:]), ext)
}
