// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the answer type in the database.
	Label = "answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnswerScriptID holds the string denoting the answer_script_id field in the database.
	FieldAnswerScriptID = "answer_script_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldSegmentationConfidence holds the string denoting the segmentation_confidence field in the database.
	FieldSegmentationConfidence = "segmentation_confidence"
	// FieldSegmentationMethod holds the string denoting the segmentation_method field in the database.
	FieldSegmentationMethod = "segmentation_method"
	// FieldAssignedGrade holds the string denoting the assigned_grade field in the database.
	FieldAssignedGrade = "assigned_grade"
	// FieldManualGrade holds the string denoting the manual_grade field in the database.
	FieldManualGrade = "manual_grade"
	// FieldIsOverridden holds the string denoting the is_overridden field in the database.
	FieldIsOverridden = "is_overridden"
	// FieldOverrideJustification holds the string denoting the override_justification field in the database.
	FieldOverrideJustification = "override_justification"
	// FieldLlmExplanation holds the string denoting the llm_explanation field in the database.
	FieldLlmExplanation = "llm_explanation"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldSpatialLocation holds the string denoting the spatial_location field in the database.
	FieldSpatialLocation = "spatial_location"
	// FieldSuperseded holds the string denoting the superseded field in the database.
	FieldSuperseded = "superseded"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeScript holds the string denoting the script edge name in mutations.
	EdgeScript = "script"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// Table holds the table name of the answer in the database.
	Table = "answers"
	// ScriptTable is the table that holds the script relation/edge.
	ScriptTable = "answers"
	// ScriptInverseTable is the table name for the AnswerScript entity.
	// It exists in this package in order to avoid circular dependency with the "answerscript" package.
	ScriptInverseTable = "answer_scripts"
	// ScriptColumn is the table column denoting the script relation/edge.
	ScriptColumn = "answer_script_id"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "answers"
	// QuestionInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionInverseTable = "questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
)

// Columns holds all SQL columns for answer fields.
var Columns = []string{
	FieldID,
	FieldAnswerScriptID,
	FieldQuestionID,
	FieldExtractedText,
	FieldSegmentationConfidence,
	FieldSegmentationMethod,
	FieldAssignedGrade,
	FieldManualGrade,
	FieldIsOverridden,
	FieldOverrideJustification,
	FieldLlmExplanation,
	FieldFlags,
	FieldSpatialLocation,
	FieldSuperseded,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SegmentationConfidenceValidator is a validator for the "segmentation_confidence" field. It is called by the builders before save.
	SegmentationConfidenceValidator func(float64) error
	// SegmentationMethodValidator is a validator for the "segmentation_method" field. It is called by the builders before save.
	SegmentationMethodValidator func(string) error
	// DefaultIsOverridden holds the default value on creation for the "is_overridden" field.
	DefaultIsOverridden bool
	// DefaultSuperseded holds the default value on creation for the "superseded" field.
	DefaultSuperseded bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Answer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnswerScriptID orders the results by the answer_script_id field.
func ByAnswerScriptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerScriptID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// BySegmentationConfidence orders the results by the segmentation_confidence field.
func BySegmentationConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentationConfidence, opts...).ToFunc()
}

// BySegmentationMethod orders the results by the segmentation_method field.
func BySegmentationMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentationMethod, opts...).ToFunc()
}

// ByAssignedGrade orders the results by the assigned_grade field.
func ByAssignedGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedGrade, opts...).ToFunc()
}

// ByManualGrade orders the results by the manual_grade field.
func ByManualGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManualGrade, opts...).ToFunc()
}

// ByIsOverridden orders the results by the is_overridden field.
func ByIsOverridden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOverridden, opts...).ToFunc()
}

// ByOverrideJustification orders the results by the override_justification field.
func ByOverrideJustification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverrideJustification, opts...).ToFunc()
}

// ByLlmExplanation orders the results by the llm_explanation field.
func ByLlmExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmExplanation, opts...).ToFunc()
}

// BySuperseded orders the results by the superseded field.
func BySuperseded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuperseded, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByScriptField orders the results by script field.
func ByScriptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScriptStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}
func newScriptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScriptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScriptTable, ScriptColumn),
	)
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
