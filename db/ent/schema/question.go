package schema

import (
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

type Question struct{ ent.Schema }

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "questions"},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("examination_id", uuid.UUID{}),
		field.Int("question_number").Positive(),
		field.String("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("model_answer").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("model_answer_source").
			Default(string(constants.ModelAnswerUploaded)).
			Validate(utils.EnumValidator(constants.ModelAnswerSources...)),
		field.Float("marks").Positive(),
		field.Float("tolerance").Default(0).Min(0),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("examination", Examination.Type).
			Ref("questions").
			Field("examination_id").
			Required().
			Unique(),
		edge.To("answers", Answer.Type),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("examination_id", "question_number").Unique(),
	}
}
