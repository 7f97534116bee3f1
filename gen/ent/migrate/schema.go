// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "extracted_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "segmentation_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "segmentation_method", Type: field.TypeString, Nullable: true},
		{Name: "assigned_grade", Type: field.TypeFloat64, Nullable: true},
		{Name: "manual_grade", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_overridden", Type: field.TypeBool, Default: false},
		{Name: "override_justification", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "llm_explanation", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "spatial_location", Type: field.TypeJSON, Nullable: true},
		{Name: "superseded", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "answer_script_id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeUUID},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_answer_scripts_answers",
				Columns:    []*schema.Column{AnswersColumns[14]},
				RefColumns: []*schema.Column{AnswerScriptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[15]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_answer_script_id_superseded",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[14], AnswersColumns[11]},
			},
			{
				Name:    "answer_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[15]},
			},
		},
	}
	// AnswerScriptsColumns holds the columns for the "answer_scripts" table.
	AnswerScriptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "school_id", Type: field.TypeUUID},
		{Name: "teacher_id", Type: field.TypeUUID},
		{Name: "image_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "script_number", Type: field.TypeInt, Default: 1},
		{Name: "processing_status", Type: field.TypeString, Default: "uploaded"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "identification_method", Type: field.TypeString, Nullable: true},
		{Name: "full_extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "combined_extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "custom_instructions", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "enable_misconduct_detection", Type: field.TypeBool, Default: false},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "predominant_method", Type: field.TypeString, Nullable: true},
		{Name: "confidence_label", Type: field.TypeString, Nullable: true},
		{Name: "error_reason", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "examination_id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeUUID, Nullable: true},
	}
	// AnswerScriptsTable holds the schema information for the "answer_scripts" table.
	AnswerScriptsTable = &schema.Table{
		Name:       "answer_scripts",
		Columns:    AnswerScriptsColumns,
		PrimaryKey: []*schema.Column{AnswerScriptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_scripts_examinations_scripts",
				Columns:    []*schema.Column{AnswerScriptsColumns[20]},
				RefColumns: []*schema.Column{ExaminationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "answer_scripts_students_scripts",
				Columns:    []*schema.Column{AnswerScriptsColumns[21]},
				RefColumns: []*schema.Column{StudentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answerscript_examination_id_processing_status",
				Unique:  false,
				Columns: []*schema.Column{AnswerScriptsColumns[20], AnswerScriptsColumns[6]},
			},
			{
				Name:    "answerscript_student_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerScriptsColumns[21]},
			},
			{
				Name:    "answerscript_school_id_teacher_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerScriptsColumns[1], AnswerScriptsColumns[2]},
			},
			{
				Name:    "answerscript_examination_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{AnswerScriptsColumns[20], AnswerScriptsColumns[4]},
			},
		},
	}
	// ExaminationsColumns holds the columns for the "examinations" table.
	ExaminationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "school_id", Type: field.TypeUUID},
		{Name: "teacher_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExaminationsTable holds the schema information for the "examinations" table.
	ExaminationsTable = &schema.Table{
		Name:       "examinations",
		Columns:    ExaminationsColumns,
		PrimaryKey: []*schema.Column{ExaminationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examination_school_id_teacher_id",
				Unique:  false,
				Columns: []*schema.Column{ExaminationsColumns[1], ExaminationsColumns[2]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_answer", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_answer_source", Type: field.TypeString, Default: "uploaded"},
		{Name: "marks", Type: field.TypeFloat64},
		{Name: "tolerance", Type: field.TypeFloat64, Default: 0},
		{Name: "examination_id", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_examinations_questions",
				Columns:    []*schema.Column{QuestionsColumns[7]},
				RefColumns: []*schema.Column{ExaminationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_examination_id_question_number",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[7], QuestionsColumns[1]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "school_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "student_code", Type: field.TypeString},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "student_school_id_student_code",
				Unique:  true,
				Columns: []*schema.Column{StudentsColumns[1], StudentsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		AnswerScriptsTable,
		ExaminationsTable,
		QuestionsTable,
		StudentsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = AnswerScriptsTable
	AnswersTable.ForeignKeys[1].RefTable = QuestionsTable
	AnswersTable.Annotation = &entsql.Annotation{
		Table: "answers",
	}
	AnswerScriptsTable.ForeignKeys[0].RefTable = ExaminationsTable
	AnswerScriptsTable.ForeignKeys[1].RefTable = StudentsTable
	AnswerScriptsTable.Annotation = &entsql.Annotation{
		Table: "answer_scripts",
	}
	ExaminationsTable.Annotation = &entsql.Annotation{
		Table: "examinations",
	}
	QuestionsTable.ForeignKeys[0].RefTable = ExaminationsTable
	QuestionsTable.Annotation = &entsql.Annotation{
		Table: "questions",
	}
	StudentsTable.Annotation = &entsql.Annotation{
		Table: "students",
	}
}
