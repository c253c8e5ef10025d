// Package digest provides the content hashing used for asset
// deduplication and cache keying.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Bytes returns the lowercase hex SHA-256 digest of payload.
func Bytes(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Canonical digests a JSON-serializable value. The value is rendered to
// RFC 8785 canonical JSON before hashing, so structurally equal values
// hash identically regardless of key order or construction order.
func Canonical(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal for digest: %w", err)
	}
	canon, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}
	return Bytes(canon), nil
}
