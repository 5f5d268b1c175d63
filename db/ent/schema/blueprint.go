package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Blueprint struct{ ent.Schema }

func (Blueprint) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "blueprint"},
	}
}

func (Blueprint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("source_path").NotEmpty(),
		// sha256 of the file contents; duplicate uploads resolve to the
		// same blueprint row
		field.String("content_hash").NotEmpty(),
		field.Int("page_count"),
		field.Int64("file_size_bytes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Blueprint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ExtractionJob.Type),
	}
}

func (Blueprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("created_at"),
	}
}
