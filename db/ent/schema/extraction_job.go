package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ExtractionJob struct{ ent.Schema }

func (ExtractionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_job"},
	}
}

func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("blueprint_id", uuid.UUID{}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("zip_code").NotEmpty(),
		field.Time("queued_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Float32("overall_confidence").Optional().Nillable(),
		field.Float("declared_total_sqft").Optional().Nillable(),
		field.Float("extracted_total_sqft").Optional().Nillable(),
		field.Float("total_heating_btuh").Optional().Nillable(),
		field.Float("total_cooling_btuh").Optional().Nillable(),
		field.Float("cooling_tons").Optional().Nillable(),
		field.JSON("extraction_json", json.RawMessage{}).
			Optional(),
		field.JSON("loads_json", json.RawMessage{}).
			Optional(),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("suggested_action").Optional().Nillable(),
	}
}

func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("blueprint", Blueprint.Type).
			Ref("jobs").
			Field("blueprint_id").
			Unique().
			Required(),
	}
}

func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id", "status", "queued_at"),
		index.Fields("status"),
	}
}
