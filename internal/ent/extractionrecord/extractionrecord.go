// Code generated by ent, DO NOT EDIT.

package extractionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractionrecord type in the database.
	Label = "extraction_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCacheKey holds the string denoting the cache_key field in the database.
	FieldCacheKey = "cache_key"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldFieldSpecs holds the string denoting the field_specs field in the database.
	FieldFieldSpecs = "field_specs"
	// FieldSchemaDoc holds the string denoting the schema_doc field in the database.
	FieldSchemaDoc = "schema_doc"
	// FieldAssetDigest holds the string denoting the asset_digest field in the database.
	FieldAssetDigest = "asset_digest"
	// FieldRawOutput holds the string denoting the raw_output field in the database.
	FieldRawOutput = "raw_output"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extractionrecord in the database.
	Table = "extraction_records"
)

// Columns holds all SQL columns for extractionrecord fields.
var Columns = []string{
	FieldID,
	FieldCacheKey,
	FieldOwnerID,
	FieldPrompt,
	FieldFieldSpecs,
	FieldSchemaDoc,
	FieldAssetDigest,
	FieldRawOutput,
	FieldResult,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CacheKeyValidator is a validator for the "cache_key" field. It is called by the builders before save.
	CacheKeyValidator func(string) error
	// DefaultOwnerID holds the default value on creation for the "owner_id" field.
	DefaultOwnerID string
	// DefaultAssetDigest holds the default value on creation for the "asset_digest" field.
	DefaultAssetDigest string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCacheKey orders the results by the cache_key field.
func ByCacheKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheKey, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByAssetDigest orders the results by the asset_digest field.
func ByAssetDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssetDigest, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
