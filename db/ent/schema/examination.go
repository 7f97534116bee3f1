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

type Examination struct{ ent.Schema }

func (Examination) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "examinations"},
	}
}

func (Examination) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("school_id", uuid.UUID{}),
		field.UUID("teacher_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("subject").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Examination) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
		edge.To("scripts", AnswerScript.Type),
	}
}

func (Examination) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("school_id", "teacher_id"),
	}
}
