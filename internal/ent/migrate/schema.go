// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssetsColumns holds the columns for the "assets" table.
	AssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "url", Type: field.TypeString, Default: ""},
		{Name: "content_digest", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssetsTable holds the schema information for the "assets" table.
	AssetsTable = &schema.Table{
		Name:       "assets",
		Columns:    AssetsColumns,
		PrimaryKey: []*schema.Column{AssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "asset_owner_id_content_digest",
				Unique:  true,
				Columns: []*schema.Column{AssetsColumns[1], AssetsColumns[4]},
			},
			{
				Name:    "asset_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AssetsColumns[1]},
			},
		},
	}
	// ExtractionRecordsColumns holds the columns for the "extraction_records" table.
	ExtractionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cache_key", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString, Default: ""},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "field_specs", Type: field.TypeJSON},
		{Name: "schema_doc", Type: field.TypeJSON},
		{Name: "asset_digest", Type: field.TypeString, Default: ""},
		{Name: "raw_output", Type: field.TypeJSON},
		{Name: "result", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractionRecordsTable holds the schema information for the "extraction_records" table.
	ExtractionRecordsTable = &schema.Table{
		Name:       "extraction_records",
		Columns:    ExtractionRecordsColumns,
		PrimaryKey: []*schema.Column{ExtractionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrecord_cache_key",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRecordsColumns[1]},
			},
			{
				Name:    "extractionrecord_cache_key_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRecordsColumns[1], ExtractionRecordsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssetsTable,
		ExtractionRecordsTable,
	}
)

func init() {
}
