package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Student struct{ ent.Schema }

func (Student) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "students"},
	}
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("school_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// the machine-readable code printed on scripts (QR payload / barcode)
		field.String("student_code").NotEmpty(),
	}
}

func (Student) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scripts", AnswerScript.Type),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("school_id", "student_code").Unique(),
	}
}
