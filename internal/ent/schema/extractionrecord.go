package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractionRecord is one append-only entry of the extraction cache.
// Rows are never updated or deleted; the newest row per cache_key wins.
// cache_key deliberately excludes the requesting principal; owner_id
// is kept for audit only.
type ExtractionRecord struct {
	ent.Schema
}

func (ExtractionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("cache_key").
			NotEmpty().
			Immutable(),
		field.String("owner_id").
			Default("").
			Immutable(),
		field.Text("prompt").
			Immutable(),
		field.JSON("field_specs", json.RawMessage{}).
			Comment("requested fields as [{name, kind}] in request order"),
		field.JSON("schema_doc", json.RawMessage{}).
			Comment("JSON-Schema document the reply was produced against"),
		field.String("asset_digest").
			Default("").
			Immutable(),
		field.JSON("raw_output", json.RawMessage{}).
			Comment("unvalidated vendor reply, retained for audit"),
		field.JSON("result", json.RawMessage{}).
			Comment("validated field map"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExtractionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cache_key"),
		index.Fields("cache_key", "created_at"),
	}
}
