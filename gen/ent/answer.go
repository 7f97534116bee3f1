// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// Answer is the model entity for the Answer schema.
type Answer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AnswerScriptID holds the value of the "answer_script_id" field.
	AnswerScriptID uuid.UUID `json:"answer_script_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID uuid.UUID `json:"question_id,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText string `json:"extracted_text,omitempty"`
	// SegmentationConfidence holds the value of the "segmentation_confidence" field.
	SegmentationConfidence *float64 `json:"segmentation_confidence,omitempty"`
	// SegmentationMethod holds the value of the "segmentation_method" field.
	SegmentationMethod *string `json:"segmentation_method,omitempty"`
	// AssignedGrade holds the value of the "assigned_grade" field.
	AssignedGrade *float64 `json:"assigned_grade,omitempty"`
	// ManualGrade holds the value of the "manual_grade" field.
	ManualGrade *float64 `json:"manual_grade,omitempty"`
	// IsOverridden holds the value of the "is_overridden" field.
	IsOverridden bool `json:"is_overridden,omitempty"`
	// OverrideJustification holds the value of the "override_justification" field.
	OverrideJustification *string `json:"override_justification,omitempty"`
	// LlmExplanation holds the value of the "llm_explanation" field.
	LlmExplanation *string `json:"llm_explanation,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags []string `json:"flags,omitempty"`
	// SpatialLocation holds the value of the "spatial_location" field.
	SpatialLocation json.RawMessage `json:"spatial_location,omitempty"`
	// Superseded holds the value of the "superseded" field.
	Superseded bool `json:"superseded,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerQuery when eager-loading is set.
	Edges        AnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerEdges holds the relations/edges for other nodes in the graph.
type AnswerEdges struct {
	// Script holds the value of the script edge.
	Script *AnswerScript `json:"script,omitempty"`
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ScriptOrErr returns the Script value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) ScriptOrErr() (*AnswerScript, error) {
	if e.Script != nil {
		return e.Script, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: answerscript.Label}
	}
	return nil, &NotLoadedError{edge: "script"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Answer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answer.FieldFlags, answer.FieldSpatialLocation:
			values[i] = new([]byte)
		case answer.FieldIsOverridden, answer.FieldSuperseded:
			values[i] = new(sql.NullBool)
		case answer.FieldSegmentationConfidence, answer.FieldAssignedGrade, answer.FieldManualGrade:
			values[i] = new(sql.NullFloat64)
		case answer.FieldExtractedText, answer.FieldSegmentationMethod, answer.FieldOverrideJustification, answer.FieldLlmExplanation:
			values[i] = new(sql.NullString)
		case answer.FieldCreatedAt, answer.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case answer.FieldID, answer.FieldAnswerScriptID, answer.FieldQuestionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Answer fields.
func (_m *Answer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case answer.FieldAnswerScriptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field answer_script_id", values[i])
			} else if value != nil {
				_m.AnswerScriptID = *value
			}
		case answer.FieldQuestionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value != nil {
				_m.QuestionID = *value
			}
		case answer.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = value.String
			}
		case answer.FieldSegmentationConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field segmentation_confidence", values[i])
			} else if value.Valid {
				_m.SegmentationConfidence = new(float64)
				*_m.SegmentationConfidence = value.Float64
			}
		case answer.FieldSegmentationMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segmentation_method", values[i])
			} else if value.Valid {
				_m.SegmentationMethod = new(string)
				*_m.SegmentationMethod = value.String
			}
		case answer.FieldAssignedGrade:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_grade", values[i])
			} else if value.Valid {
				_m.AssignedGrade = new(float64)
				*_m.AssignedGrade = value.Float64
			}
		case answer.FieldManualGrade:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field manual_grade", values[i])
			} else if value.Valid {
				_m.ManualGrade = new(float64)
				*_m.ManualGrade = value.Float64
			}
		case answer.FieldIsOverridden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_overridden", values[i])
			} else if value.Valid {
				_m.IsOverridden = value.Bool
			}
		case answer.FieldOverrideJustification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field override_justification", values[i])
			} else if value.Valid {
				_m.OverrideJustification = new(string)
				*_m.OverrideJustification = value.String
			}
		case answer.FieldLlmExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_explanation", values[i])
			} else if value.Valid {
				_m.LlmExplanation = new(string)
				*_m.LlmExplanation = value.String
			}
		case answer.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case answer.FieldSpatialLocation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field spatial_location", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpatialLocation); err != nil {
					return fmt.Errorf("unmarshal field spatial_location: %w", err)
				}
			}
		case answer.FieldSuperseded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field superseded", values[i])
			} else if value.Valid {
				_m.Superseded = value.Bool
			}
		case answer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case answer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Answer.
// This includes values selected through modifiers, order, etc.
func (_m *Answer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScript queries the "script" edge of the Answer entity.
func (_m *Answer) QueryScript() *AnswerScriptQuery {
	return NewAnswerClient(_m.config).QueryScript(_m)
}

// QueryQuestion queries the "question" edge of the Answer entity.
func (_m *Answer) QueryQuestion() *QuestionQuery {
	return NewAnswerClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this Answer.
// Note that you need to call Answer.Unwrap() before calling this method if this Answer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Answer) Update() *AnswerUpdateOne {
	return NewAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Answer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Answer) Unwrap() *Answer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Answer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Answer) String() string {
	var builder strings.Builder
	builder.WriteString("Answer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("answer_script_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerScriptID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("extracted_text=")
	builder.WriteString(_m.ExtractedText)
	builder.WriteString(", ")
	if v := _m.SegmentationConfidence; v != nil {
		builder.WriteString("segmentation_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SegmentationMethod; v != nil {
		builder.WriteString("segmentation_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AssignedGrade; v != nil {
		builder.WriteString("assigned_grade=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ManualGrade; v != nil {
		builder.WriteString("manual_grade=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_overridden=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOverridden))
	builder.WriteString(", ")
	if v := _m.OverrideJustification; v != nil {
		builder.WriteString("override_justification=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmExplanation; v != nil {
		builder.WriteString("llm_explanation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	builder.WriteString("spatial_location=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpatialLocation))
	builder.WriteString(", ")
	builder.WriteString("superseded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Superseded))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Answers is a parsable slice of Answer.
type Answers []*Answer
