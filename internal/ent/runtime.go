// Code generated by ent, DO NOT EDIT.

package ent

import (
	"structify/internal/ent/asset"
	"structify/internal/ent/extractionrecord"
	"structify/internal/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assetFields := schema.Asset{}.Fields()
	_ = assetFields
	// assetDescOwnerID is the schema descriptor for owner_id field.
	assetDescOwnerID := assetFields[1].Descriptor()
	// asset.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	asset.OwnerIDValidator = assetDescOwnerID.Validators[0].(func(string) error)
	// assetDescStorageKey is the schema descriptor for storage_key field.
	assetDescStorageKey := assetFields[2].Descriptor()
	// asset.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	asset.StorageKeyValidator = assetDescStorageKey.Validators[0].(func(string) error)
	// assetDescURL is the schema descriptor for url field.
	assetDescURL := assetFields[3].Descriptor()
	// asset.DefaultURL holds the default value on creation for the url field.
	asset.DefaultURL = assetDescURL.Default.(string)
	// assetDescContentDigest is the schema descriptor for content_digest field.
	assetDescContentDigest := assetFields[4].Descriptor()
	// asset.ContentDigestValidator is a validator for the "content_digest" field. It is called by the builders before save.
	asset.ContentDigestValidator = assetDescContentDigest.Validators[0].(func(string) error)
	// assetDescCreatedAt is the schema descriptor for created_at field.
	assetDescCreatedAt := assetFields[5].Descriptor()
	// asset.DefaultCreatedAt holds the default value on creation for the created_at field.
	asset.DefaultCreatedAt = assetDescCreatedAt.Default.(func() time.Time)
	extractionrecordFields := schema.ExtractionRecord{}.Fields()
	_ = extractionrecordFields
	// extractionrecordDescCacheKey is the schema descriptor for cache_key field.
	extractionrecordDescCacheKey := extractionrecordFields[1].Descriptor()
	// extractionrecord.CacheKeyValidator is a validator for the "cache_key" field. It is called by the builders before save.
	extractionrecord.CacheKeyValidator = extractionrecordDescCacheKey.Validators[0].(func(string) error)
	// extractionrecordDescOwnerID is the schema descriptor for owner_id field.
	extractionrecordDescOwnerID := extractionrecordFields[2].Descriptor()
	// extractionrecord.DefaultOwnerID holds the default value on creation for the owner_id field.
	extractionrecord.DefaultOwnerID = extractionrecordDescOwnerID.Default.(string)
	// extractionrecordDescAssetDigest is the schema descriptor for asset_digest field.
	extractionrecordDescAssetDigest := extractionrecordFields[6].Descriptor()
	// extractionrecord.DefaultAssetDigest holds the default value on creation for the asset_digest field.
	extractionrecord.DefaultAssetDigest = extractionrecordDescAssetDigest.Default.(string)
	// extractionrecordDescCreatedAt is the schema descriptor for created_at field.
	extractionrecordDescCreatedAt := extractionrecordFields[9].Descriptor()
	// extractionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionrecord.DefaultCreatedAt = extractionrecordDescCreatedAt.Default.(func() time.Time)
}
