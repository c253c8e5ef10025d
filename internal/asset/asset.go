// Package asset maps owned binary payloads to deduplicated storage
// records. One owner stores a given payload at most once.
package asset

import (
	"errors"
	"time"
)

// Asset is an immutable stored payload owned by one principal.
type Asset struct {
	ID            int
	OwnerID       string
	StorageKey    string
	URL           string
	ContentDigest string
	CreatedAt     time.Time
}

var (
	// ErrInvalidAsset rejects uploads with empty payloads or
	// non-image content types.
	ErrInvalidAsset = errors.New("invalid asset payload")

	ErrNotFound = errors.New("asset not found")

	// ErrForbidden is returned when the asset exists but belongs to a
	// different owner. The ownership check runs before any content read.
	ErrForbidden = errors.New("asset belongs to a different owner")

	ErrStorageUnavailable = errors.New("asset storage unavailable")

	// ErrCorruptReference marks records whose stored locator no longer
	// resolves to retrievable bytes.
	ErrCorruptReference = errors.New("asset reference cannot be resolved")
)
