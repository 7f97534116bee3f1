package schema

import (
	"encoding/json"
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/db/ent/schema/utils"
)

var errUnitRange = errors.New("must be between 0 and 1")

type Answer struct{ ent.Schema }

func (Answer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "answers"},
	}
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("answer_script_id", uuid.UUID{}),
		field.UUID("question_id", uuid.UUID{}),
		field.String("extracted_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// immutable once written; re-segmentation supersedes rather than edits
		field.Float("segmentation_confidence").Optional().Nillable().Immutable().
			Validate(func(f float64) error {
				if f < 0 || f > 1 {
					return errUnitRange
				}
				return nil
			}),
		field.String("segmentation_method").Optional().Nillable().
			Validate(utils.EnumValidator(constants.SegmentationMethods...)),
		field.Float("assigned_grade").Optional().Nillable(),
		field.Float("manual_grade").Optional().Nillable(),
		field.Bool("is_overridden").Default(false),
		field.String("override_justification").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("llm_explanation").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Strings("flags").Optional(),
		field.JSON("spatial_location", json.RawMessage{}).Optional(),
		field.Bool("superseded").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("script", AnswerScript.Type).
			Ref("answers").
			Field("answer_script_id").
			Required().
			Unique(),
		edge.From("question", Question.Type).
			Ref("answers").
			Field("question_id").
			Required().
			Unique(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("answer_script_id", "superseded"),
		index.Fields("question_id"),
	}
}
