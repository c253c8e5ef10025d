package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Asset records one stored binary payload. The unique
// (owner_id, content_digest) index is what makes duplicate uploads
// idempotent: concurrent writers race on it and the loser re-reads.
type Asset struct {
	ent.Schema
}

func (Asset) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("owner_id").
			NotEmpty().
			Immutable(),
		field.String("storage_key").
			NotEmpty().
			Immutable(),
		field.String("url").
			Default(""),
		field.String("content_digest").
			NotEmpty().
			Immutable().
			Comment("lowercase hex SHA-256 of the raw payload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Asset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "content_digest").Unique(),
		index.Fields("owner_id"),
	}
}
