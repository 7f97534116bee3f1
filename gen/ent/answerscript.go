// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/google/uuid"
)

// AnswerScript is the model entity for the AnswerScript schema.
type AnswerScript struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExaminationID holds the value of the "examination_id" field.
	ExaminationID uuid.UUID `json:"examination_id,omitempty"`
	// SchoolID holds the value of the "school_id" field.
	SchoolID uuid.UUID `json:"school_id,omitempty"`
	// TeacherID holds the value of the "teacher_id" field.
	TeacherID uuid.UUID `json:"teacher_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID *uuid.UUID `json:"student_id,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// ScriptNumber holds the value of the "script_number" field.
	ScriptNumber int `json:"script_number,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// IdentificationMethod holds the value of the "identification_method" field.
	IdentificationMethod *string `json:"identification_method,omitempty"`
	// FullExtractedText holds the value of the "full_extracted_text" field.
	FullExtractedText *string `json:"full_extracted_text,omitempty"`
	// CombinedExtractedText holds the value of the "combined_extracted_text" field.
	CombinedExtractedText *string `json:"combined_extracted_text,omitempty"`
	// CustomInstructions holds the value of the "custom_instructions" field.
	CustomInstructions *string `json:"custom_instructions,omitempty"`
	// EnableMisconductDetection holds the value of the "enable_misconduct_detection" field.
	EnableMisconductDetection bool `json:"enable_misconduct_detection,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags []string `json:"flags,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence *float64 `json:"overall_confidence,omitempty"`
	// PredominantMethod holds the value of the "predominant_method" field.
	PredominantMethod *string `json:"predominant_method,omitempty"`
	// ConfidenceLabel holds the value of the "confidence_label" field.
	ConfidenceLabel *string `json:"confidence_label,omitempty"`
	// ErrorReason holds the value of the "error_reason" field.
	ErrorReason *string `json:"error_reason,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerScriptQuery when eager-loading is set.
	Edges        AnswerScriptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerScriptEdges holds the relations/edges for other nodes in the graph.
type AnswerScriptEdges struct {
	// Examination holds the value of the examination edge.
	Examination *Examination `json:"examination,omitempty"`
	// Student holds the value of the student edge.
	Student *Student `json:"student,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ExaminationOrErr returns the Examination value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerScriptEdges) ExaminationOrErr() (*Examination, error) {
	if e.Examination != nil {
		return e.Examination, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: examination.Label}
	}
	return nil, &NotLoadedError{edge: "examination"}
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerScriptEdges) StudentOrErr() (*Student, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: student.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e AnswerScriptEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[2] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerScript) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerscript.FieldStudentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case answerscript.FieldContentHash, answerscript.FieldFlags:
			values[i] = new([]byte)
		case answerscript.FieldEnableMisconductDetection:
			values[i] = new(sql.NullBool)
		case answerscript.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case answerscript.FieldScriptNumber, answerscript.FieldVersion:
			values[i] = new(sql.NullInt64)
		case answerscript.FieldImagePath, answerscript.FieldProcessingStatus, answerscript.FieldIdentificationMethod, answerscript.FieldFullExtractedText, answerscript.FieldCombinedExtractedText, answerscript.FieldCustomInstructions, answerscript.FieldPredominantMethod, answerscript.FieldConfidenceLabel, answerscript.FieldErrorReason:
			values[i] = new(sql.NullString)
		case answerscript.FieldUploadedAt, answerscript.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case answerscript.FieldID, answerscript.FieldExaminationID, answerscript.FieldSchoolID, answerscript.FieldTeacherID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerScript fields.
func (_m *AnswerScript) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerscript.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case answerscript.FieldExaminationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field examination_id", values[i])
			} else if value != nil {
				_m.ExaminationID = *value
			}
		case answerscript.FieldSchoolID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field school_id", values[i])
			} else if value != nil {
				_m.SchoolID = *value
			}
		case answerscript.FieldTeacherID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_id", values[i])
			} else if value != nil {
				_m.TeacherID = *value
			}
		case answerscript.FieldStudentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = new(uuid.UUID)
				*_m.StudentID = *value.S.(*uuid.UUID)
			}
		case answerscript.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case answerscript.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case answerscript.FieldScriptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field script_number", values[i])
			} else if value.Valid {
				_m.ScriptNumber = int(value.Int64)
			}
		case answerscript.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case answerscript.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case answerscript.FieldIdentificationMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identification_method", values[i])
			} else if value.Valid {
				_m.IdentificationMethod = new(string)
				*_m.IdentificationMethod = value.String
			}
		case answerscript.FieldFullExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_extracted_text", values[i])
			} else if value.Valid {
				_m.FullExtractedText = new(string)
				*_m.FullExtractedText = value.String
			}
		case answerscript.FieldCombinedExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field combined_extracted_text", values[i])
			} else if value.Valid {
				_m.CombinedExtractedText = new(string)
				*_m.CombinedExtractedText = value.String
			}
		case answerscript.FieldCustomInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_instructions", values[i])
			} else if value.Valid {
				_m.CustomInstructions = new(string)
				*_m.CustomInstructions = value.String
			}
		case answerscript.FieldEnableMisconductDetection:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enable_misconduct_detection", values[i])
			} else if value.Valid {
				_m.EnableMisconductDetection = value.Bool
			}
		case answerscript.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case answerscript.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = new(float64)
				*_m.OverallConfidence = value.Float64
			}
		case answerscript.FieldPredominantMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field predominant_method", values[i])
			} else if value.Valid {
				_m.PredominantMethod = new(string)
				*_m.PredominantMethod = value.String
			}
		case answerscript.FieldConfidenceLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_label", values[i])
			} else if value.Valid {
				_m.ConfidenceLabel = new(string)
				*_m.ConfidenceLabel = value.String
			}
		case answerscript.FieldErrorReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_reason", values[i])
			} else if value.Valid {
				_m.ErrorReason = new(string)
				*_m.ErrorReason = value.String
			}
		case answerscript.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case answerscript.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerScript.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerScript) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExamination queries the "examination" edge of the AnswerScript entity.
func (_m *AnswerScript) QueryExamination() *ExaminationQuery {
	return NewAnswerScriptClient(_m.config).QueryExamination(_m)
}

// QueryStudent queries the "student" edge of the AnswerScript entity.
func (_m *AnswerScript) QueryStudent() *StudentQuery {
	return NewAnswerScriptClient(_m.config).QueryStudent(_m)
}

// QueryAnswers queries the "answers" edge of the AnswerScript entity.
func (_m *AnswerScript) QueryAnswers() *AnswerQuery {
	return NewAnswerScriptClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this AnswerScript.
// Note that you need to call AnswerScript.Unwrap() before calling this method if this AnswerScript
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerScript) Update() *AnswerScriptUpdateOne {
	return NewAnswerScriptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerScript entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerScript) Unwrap() *AnswerScript {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerScript is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerScript) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerScript(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("examination_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExaminationID))
	builder.WriteString(", ")
	builder.WriteString("school_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchoolID))
	builder.WriteString(", ")
	builder.WriteString("teacher_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeacherID))
	builder.WriteString(", ")
	if v := _m.StudentID; v != nil {
		builder.WriteString("student_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("script_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScriptNumber))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.IdentificationMethod; v != nil {
		builder.WriteString("identification_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullExtractedText; v != nil {
		builder.WriteString("full_extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CombinedExtractedText; v != nil {
		builder.WriteString("combined_extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomInstructions; v != nil {
		builder.WriteString("custom_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("enable_misconduct_detection=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnableMisconductDetection))
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	if v := _m.OverallConfidence; v != nil {
		builder.WriteString("overall_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PredominantMethod; v != nil {
		builder.WriteString("predominant_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceLabel; v != nil {
		builder.WriteString("confidence_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorReason; v != nil {
		builder.WriteString("error_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerScripts is a parsable slice of AnswerScript.
type AnswerScripts []*AnswerScript
