package schema

import (
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

type AnswerScript struct{ ent.Schema }

func (AnswerScript) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "answer_scripts"},
	}
}

func (AnswerScript) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("examination_id", uuid.UUID{}),
		field.UUID("school_id", uuid.UUID{}),
		field.UUID("teacher_id", uuid.UUID{}),
		field.UUID("student_id", uuid.UUID{}).Optional().Nillable(),
		field.String("image_path").NotEmpty(),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("script_number").Default(1).Positive(),
		field.String("processing_status").
			Default(string(constants.StatusUploaded)).
			Validate(utils.EnumValidator(constants.ProcessingStatuses...)),
		// bumped on re-submission; stage results carrying an older version
		// are discarded on return
		field.Int("version").Default(1).Positive(),
		field.String("identification_method").Optional().Nillable().
			Validate(utils.EnumValidator(constants.IdentificationMethods...)),
		field.String("full_extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("combined_extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("custom_instructions").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("enable_misconduct_detection").Default(false),
		field.Strings("flags").Optional(),
		field.Float("overall_confidence").Optional().Nillable(),
		field.String("predominant_method").Optional().Nillable().
			Validate(utils.EnumValidator(constants.SegmentationMethods...)),
		field.String("confidence_label").Optional().Nillable(),
		field.String("error_reason").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (AnswerScript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("examination", Examination.Type).
			Ref("scripts").
			Field("examination_id").
			Required().
			Unique(),
		edge.From("student", Student.Type).
			Ref("scripts").
			Field("student_id").
			Unique(),
		// ONE script -> MANY answers; deleting a script cascades to them
		edge.To("answers", Answer.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (AnswerScript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("examination_id", "processing_status"),
		index.Fields("student_id"),
		index.Fields("school_id", "teacher_id"),
		index.Fields("examination_id", "content_hash"),
	}
}
