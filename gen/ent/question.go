// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExaminationID holds the value of the "examination_id" field.
	ExaminationID uuid.UUID `json:"examination_id,omitempty"`
	// QuestionNumber holds the value of the "question_number" field.
	QuestionNumber int `json:"question_number,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// ModelAnswer holds the value of the "model_answer" field.
	ModelAnswer string `json:"model_answer,omitempty"`
	// ModelAnswerSource holds the value of the "model_answer_source" field.
	ModelAnswerSource string `json:"model_answer_source,omitempty"`
	// Marks holds the value of the "marks" field.
	Marks float64 `json:"marks,omitempty"`
	// Tolerance holds the value of the "tolerance" field.
	Tolerance float64 `json:"tolerance,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Examination holds the value of the examination edge.
	Examination *Examination `json:"examination,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExaminationOrErr returns the Examination value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) ExaminationOrErr() (*Examination, error) {
	if e.Examination != nil {
		return e.Examination, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: examination.Label}
	}
	return nil, &NotLoadedError{edge: "examination"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldMarks, question.FieldTolerance:
			values[i] = new(sql.NullFloat64)
		case question.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case question.FieldText, question.FieldModelAnswer, question.FieldModelAnswerSource:
			values[i] = new(sql.NullString)
		case question.FieldID, question.FieldExaminationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case question.FieldExaminationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field examination_id", values[i])
			} else if value != nil {
				_m.ExaminationID = *value
			}
		case question.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case question.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case question.FieldModelAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_answer", values[i])
			} else if value.Valid {
				_m.ModelAnswer = value.String
			}
		case question.FieldModelAnswerSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_answer_source", values[i])
			} else if value.Valid {
				_m.ModelAnswerSource = value.String
			}
		case question.FieldMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field marks", values[i])
			} else if value.Valid {
				_m.Marks = value.Float64
			}
		case question.FieldTolerance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tolerance", values[i])
			} else if value.Valid {
				_m.Tolerance = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExamination queries the "examination" edge of the Question entity.
func (_m *Question) QueryExamination() *ExaminationQuery {
	return NewQuestionClient(_m.config).QueryExamination(_m)
}

// QueryAnswers queries the "answers" edge of the Question entity.
func (_m *Question) QueryAnswers() *AnswerQuery {
	return NewQuestionClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("examination_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExaminationID))
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("model_answer=")
	builder.WriteString(_m.ModelAnswer)
	builder.WriteString(", ")
	builder.WriteString("model_answer_source=")
	builder.WriteString(_m.ModelAnswerSource)
	builder.WriteString(", ")
	builder.WriteString("marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Marks))
	builder.WriteString(", ")
	builder.WriteString("tolerance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tolerance))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
