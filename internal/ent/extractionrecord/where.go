// Code generated by ent, DO NOT EDIT.

package extractionrecord

import (
	"structify/internal/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldID, id))
}

// CacheKey applies equality check predicate on the "cache_key" field. It's identical to CacheKeyEQ.
func CacheKey(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCacheKey, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldOwnerID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldPrompt, v))
}

// AssetDigest applies equality check predicate on the "asset_digest" field. It's identical to AssetDigestEQ.
func AssetDigest(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldAssetDigest, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CacheKeyEQ applies the EQ predicate on the "cache_key" field.
func CacheKeyEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCacheKey, v))
}

// CacheKeyNEQ applies the NEQ predicate on the "cache_key" field.
func CacheKeyNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldCacheKey, v))
}

// CacheKeyIn applies the In predicate on the "cache_key" field.
func CacheKeyIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldCacheKey, vs...))
}

// CacheKeyNotIn applies the NotIn predicate on the "cache_key" field.
func CacheKeyNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldCacheKey, vs...))
}

// CacheKeyGT applies the GT predicate on the "cache_key" field.
func CacheKeyGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldCacheKey, v))
}

// CacheKeyGTE applies the GTE predicate on the "cache_key" field.
func CacheKeyGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldCacheKey, v))
}

// CacheKeyLT applies the LT predicate on the "cache_key" field.
func CacheKeyLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldCacheKey, v))
}

// CacheKeyLTE applies the LTE predicate on the "cache_key" field.
func CacheKeyLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldCacheKey, v))
}

// CacheKeyContains applies the Contains predicate on the "cache_key" field.
func CacheKeyContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldCacheKey, v))
}

// CacheKeyHasPrefix applies the HasPrefix predicate on the "cache_key" field.
func CacheKeyHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldCacheKey, v))
}

// CacheKeyHasSuffix applies the HasSuffix predicate on the "cache_key" field.
func CacheKeyHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldCacheKey, v))
}

// CacheKeyEqualFold applies the EqualFold predicate on the "cache_key" field.
func CacheKeyEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldCacheKey, v))
}

// CacheKeyContainsFold applies the ContainsFold predicate on the "cache_key" field.
func CacheKeyContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldCacheKey, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldOwnerID, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldPrompt, v))
}

// AssetDigestEQ applies the EQ predicate on the "asset_digest" field.
func AssetDigestEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldAssetDigest, v))
}

// AssetDigestNEQ applies the NEQ predicate on the "asset_digest" field.
func AssetDigestNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldAssetDigest, v))
}

// AssetDigestIn applies the In predicate on the "asset_digest" field.
func AssetDigestIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldAssetDigest, vs...))
}

// AssetDigestNotIn applies the NotIn predicate on the "asset_digest" field.
func AssetDigestNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldAssetDigest, vs...))
}

// AssetDigestGT applies the GT predicate on the "asset_digest" field.
func AssetDigestGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldAssetDigest, v))
}

// AssetDigestGTE applies the GTE predicate on the "asset_digest" field.
func AssetDigestGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldAssetDigest, v))
}

// AssetDigestLT applies the LT predicate on the "asset_digest" field.
func AssetDigestLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldAssetDigest, v))
}

// AssetDigestLTE applies the LTE predicate on the "asset_digest" field.
func AssetDigestLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldAssetDigest, v))
}

// AssetDigestContains applies the Contains predicate on the "asset_digest" field.
func AssetDigestContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldAssetDigest, v))
}

// AssetDigestHasPrefix applies the HasPrefix predicate on the "asset_digest" field.
func AssetDigestHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldAssetDigest, v))
}

// AssetDigestHasSuffix applies the HasSuffix predicate on the "asset_digest" field.
func AssetDigestHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldAssetDigest, v))
}

// AssetDigestEqualFold applies the EqualFold predicate on the "asset_digest" field.
func AssetDigestEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldAssetDigest, v))
}

// AssetDigestContainsFold applies the ContainsFold predicate on the "asset_digest" field.
func AssetDigestContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldAssetDigest, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.NotPredicates(p))
}
