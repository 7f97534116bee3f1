// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExaminationID holds the string denoting the examination_id field in the database.
	FieldExaminationID = "examination_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldModelAnswer holds the string denoting the model_answer field in the database.
	FieldModelAnswer = "model_answer"
	// FieldModelAnswerSource holds the string denoting the model_answer_source field in the database.
	FieldModelAnswerSource = "model_answer_source"
	// FieldMarks holds the string denoting the marks field in the database.
	FieldMarks = "marks"
	// FieldTolerance holds the string denoting the tolerance field in the database.
	FieldTolerance = "tolerance"
	// EdgeExamination holds the string denoting the examination edge name in mutations.
	EdgeExamination = "examination"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// ExaminationTable is the table that holds the examination relation/edge.
	ExaminationTable = "questions"
	// ExaminationInverseTable is the table name for the Examination entity.
	// It exists in this package in order to avoid circular dependency with the "examination" package.
	ExaminationInverseTable = "examinations"
	// ExaminationColumn is the table column denoting the examination relation/edge.
	ExaminationColumn = "examination_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answers"
	// AnswersInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswersInverseTable = "answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "question_id"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldExaminationID,
	FieldQuestionNumber,
	FieldText,
	FieldModelAnswer,
	FieldModelAnswerSource,
	FieldMarks,
	FieldTolerance,
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
	// QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	QuestionNumberValidator func(int) error
	// DefaultModelAnswerSource holds the default value on creation for the "model_answer_source" field.
	DefaultModelAnswerSource string
	// ModelAnswerSourceValidator is a validator for the "model_answer_source" field. It is called by the builders before save.
	ModelAnswerSourceValidator func(string) error
	// MarksValidator is a validator for the "marks" field. It is called by the builders before save.
	MarksValidator func(float64) error
	// DefaultTolerance holds the default value on creation for the "tolerance" field.
	DefaultTolerance float64
	// ToleranceValidator is a validator for the "tolerance" field. It is called by the builders before save.
	ToleranceValidator func(float64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExaminationID orders the results by the examination_id field.
func ByExaminationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExaminationID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByModelAnswer orders the results by the model_answer field.
func ByModelAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelAnswer, opts...).ToFunc()
}

// ByModelAnswerSource orders the results by the model_answer_source field.
func ByModelAnswerSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelAnswerSource, opts...).ToFunc()
}

// ByMarks orders the results by the marks field.
func ByMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarks, opts...).ToFunc()
}

// ByTolerance orders the results by the tolerance field.
func ByTolerance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTolerance, opts...).ToFunc()
}

// ByExaminationField orders the results by examination field.
func ByExaminationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExaminationStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExaminationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExaminationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExaminationTable, ExaminationColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
