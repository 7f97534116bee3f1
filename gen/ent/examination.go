// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/google/uuid"
)

// Examination is the model entity for the Examination schema.
type Examination struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SchoolID holds the value of the "school_id" field.
	SchoolID uuid.UUID `json:"school_id,omitempty"`
	// TeacherID holds the value of the "teacher_id" field.
	TeacherID uuid.UUID `json:"teacher_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExaminationQuery when eager-loading is set.
	Edges        ExaminationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExaminationEdges holds the relations/edges for other nodes in the graph.
type ExaminationEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// Scripts holds the value of the scripts edge.
	Scripts []*AnswerScript `json:"scripts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e ExaminationEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// ScriptsOrErr returns the Scripts value or an error if the edge
// was not loaded in eager-loading.
func (e ExaminationEdges) ScriptsOrErr() ([]*AnswerScript, error) {
	if e.loadedTypes[1] {
		return e.Scripts, nil
	}
	return nil, &NotLoadedError{edge: "scripts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Examination) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examination.FieldTitle, examination.FieldSubject:
			values[i] = new(sql.NullString)
		case examination.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case examination.FieldID, examination.FieldSchoolID, examination.FieldTeacherID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Examination fields.
func (_m *Examination) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examination.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case examination.FieldSchoolID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field school_id", values[i])
			} else if value != nil {
				_m.SchoolID = *value
			}
		case examination.FieldTeacherID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_id", values[i])
			} else if value != nil {
				_m.TeacherID = *value
			}
		case examination.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case examination.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case examination.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Examination.
// This includes values selected through modifiers, order, etc.
func (_m *Examination) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the Examination entity.
func (_m *Examination) QueryQuestions() *QuestionQuery {
	return NewExaminationClient(_m.config).QueryQuestions(_m)
}

// QueryScripts queries the "scripts" edge of the Examination entity.
func (_m *Examination) QueryScripts() *AnswerScriptQuery {
	return NewExaminationClient(_m.config).QueryScripts(_m)
}

// Update returns a builder for updating this Examination.
// Note that you need to call Examination.Unwrap() before calling this method if this Examination
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Examination) Update() *ExaminationUpdateOne {
	return NewExaminationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Examination entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Examination) Unwrap() *Examination {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Examination is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Examination) String() string {
	var builder strings.Builder
	builder.WriteString("Examination(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("school_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchoolID))
	builder.WriteString(", ")
	builder.WriteString("teacher_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeacherID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Examinations is a parsable slice of Examination.
type Examinations []*Examination
