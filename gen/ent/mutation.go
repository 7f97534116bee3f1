// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer       = "Answer"
	TypeAnswerScript = "AnswerScript"
	TypeExamination  = "Examination"
	TypeQuestion     = "Question"
	TypeStudent      = "Student"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	extracted_text             *string
	segmentation_confidence    *float64
	addsegmentation_confidence *float64
	segmentation_method        *string
	assigned_grade             *float64
	addassigned_grade          *float64
	manual_grade               *float64
	addmanual_grade            *float64
	is_overridden              *bool
	override_justification     *string
	llm_explanation            *string
	flags                      *[]string
	appendflags                []string
	spatial_location           *json.RawMessage
	appendspatial_location     json.RawMessage
	superseded                 *bool
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	script                     *uuid.UUID
	clearedscript              bool
	question                   *uuid.UUID
	clearedquestion            bool
	done                       bool
	oldValue                   func(context.Context) (*Answer, error)
	predicates                 []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id uuid.UUID) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Answer entities.
func (m *AnswerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnswerScriptID sets the "answer_script_id" field.
func (m *AnswerMutation) SetAnswerScriptID(u uuid.UUID) {
	m.script = &u
}

// AnswerScriptID returns the value of the "answer_script_id" field in the mutation.
func (m *AnswerMutation) AnswerScriptID() (r uuid.UUID, exists bool) {
	v := m.script
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerScriptID returns the old "answer_script_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAnswerScriptID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerScriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerScriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerScriptID: %w", err)
	}
	return oldValue.AnswerScriptID, nil
}

// ResetAnswerScriptID resets all changes to the "answer_script_id" field.
func (m *AnswerMutation) ResetAnswerScriptID() {
	m.script = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerMutation) ResetQuestionID() {
	m.question = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *AnswerMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *AnswerMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldExtractedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *AnswerMutation) ResetExtractedText() {
	m.extracted_text = nil
}

// SetSegmentationConfidence sets the "segmentation_confidence" field.
func (m *AnswerMutation) SetSegmentationConfidence(f float64) {
	m.segmentation_confidence = &f
	m.addsegmentation_confidence = nil
}

// SegmentationConfidence returns the value of the "segmentation_confidence" field in the mutation.
func (m *AnswerMutation) SegmentationConfidence() (r float64, exists bool) {
	v := m.segmentation_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentationConfidence returns the old "segmentation_confidence" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSegmentationConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentationConfidence: %w", err)
	}
	return oldValue.SegmentationConfidence, nil
}

// AddSegmentationConfidence adds f to the "segmentation_confidence" field.
func (m *AnswerMutation) AddSegmentationConfidence(f float64) {
	if m.addsegmentation_confidence != nil {
		*m.addsegmentation_confidence += f
	} else {
		m.addsegmentation_confidence = &f
	}
}

// AddedSegmentationConfidence returns the value that was added to the "segmentation_confidence" field in this mutation.
func (m *AnswerMutation) AddedSegmentationConfidence() (r float64, exists bool) {
	v := m.addsegmentation_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearSegmentationConfidence clears the value of the "segmentation_confidence" field.
func (m *AnswerMutation) ClearSegmentationConfidence() {
	m.segmentation_confidence = nil
	m.addsegmentation_confidence = nil
	m.clearedFields[answer.FieldSegmentationConfidence] = struct{}{}
}

// SegmentationConfidenceCleared returns if the "segmentation_confidence" field was cleared in this mutation.
func (m *AnswerMutation) SegmentationConfidenceCleared() bool {
	_, ok := m.clearedFields[answer.FieldSegmentationConfidence]
	return ok
}

// ResetSegmentationConfidence resets all changes to the "segmentation_confidence" field.
func (m *AnswerMutation) ResetSegmentationConfidence() {
	m.segmentation_confidence = nil
	m.addsegmentation_confidence = nil
	delete(m.clearedFields, answer.FieldSegmentationConfidence)
}

// SetSegmentationMethod sets the "segmentation_method" field.
func (m *AnswerMutation) SetSegmentationMethod(s string) {
	m.segmentation_method = &s
}

// SegmentationMethod returns the value of the "segmentation_method" field in the mutation.
func (m *AnswerMutation) SegmentationMethod() (r string, exists bool) {
	v := m.segmentation_method
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentationMethod returns the old "segmentation_method" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSegmentationMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentationMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentationMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentationMethod: %w", err)
	}
	return oldValue.SegmentationMethod, nil
}

// ClearSegmentationMethod clears the value of the "segmentation_method" field.
func (m *AnswerMutation) ClearSegmentationMethod() {
	m.segmentation_method = nil
	m.clearedFields[answer.FieldSegmentationMethod] = struct{}{}
}

// SegmentationMethodCleared returns if the "segmentation_method" field was cleared in this mutation.
func (m *AnswerMutation) SegmentationMethodCleared() bool {
	_, ok := m.clearedFields[answer.FieldSegmentationMethod]
	return ok
}

// ResetSegmentationMethod resets all changes to the "segmentation_method" field.
func (m *AnswerMutation) ResetSegmentationMethod() {
	m.segmentation_method = nil
	delete(m.clearedFields, answer.FieldSegmentationMethod)
}

// SetAssignedGrade sets the "assigned_grade" field.
func (m *AnswerMutation) SetAssignedGrade(f float64) {
	m.assigned_grade = &f
	m.addassigned_grade = nil
}

// AssignedGrade returns the value of the "assigned_grade" field in the mutation.
func (m *AnswerMutation) AssignedGrade() (r float64, exists bool) {
	v := m.assigned_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedGrade returns the old "assigned_grade" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAssignedGrade(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedGrade: %w", err)
	}
	return oldValue.AssignedGrade, nil
}

// AddAssignedGrade adds f to the "assigned_grade" field.
func (m *AnswerMutation) AddAssignedGrade(f float64) {
	if m.addassigned_grade != nil {
		*m.addassigned_grade += f
	} else {
		m.addassigned_grade = &f
	}
}

// AddedAssignedGrade returns the value that was added to the "assigned_grade" field in this mutation.
func (m *AnswerMutation) AddedAssignedGrade() (r float64, exists bool) {
	v := m.addassigned_grade
	if v == nil {
		return
	}
	return *v, true
}

// ClearAssignedGrade clears the value of the "assigned_grade" field.
func (m *AnswerMutation) ClearAssignedGrade() {
	m.assigned_grade = nil
	m.addassigned_grade = nil
	m.clearedFields[answer.FieldAssignedGrade] = struct{}{}
}

// AssignedGradeCleared returns if the "assigned_grade" field was cleared in this mutation.
func (m *AnswerMutation) AssignedGradeCleared() bool {
	_, ok := m.clearedFields[answer.FieldAssignedGrade]
	return ok
}

// ResetAssignedGrade resets all changes to the "assigned_grade" field.
func (m *AnswerMutation) ResetAssignedGrade() {
	m.assigned_grade = nil
	m.addassigned_grade = nil
	delete(m.clearedFields, answer.FieldAssignedGrade)
}

// SetManualGrade sets the "manual_grade" field.
func (m *AnswerMutation) SetManualGrade(f float64) {
	m.manual_grade = &f
	m.addmanual_grade = nil
}

// ManualGrade returns the value of the "manual_grade" field in the mutation.
func (m *AnswerMutation) ManualGrade() (r float64, exists bool) {
	v := m.manual_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldManualGrade returns the old "manual_grade" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldManualGrade(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManualGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManualGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManualGrade: %w", err)
	}
	return oldValue.ManualGrade, nil
}

// AddManualGrade adds f to the "manual_grade" field.
func (m *AnswerMutation) AddManualGrade(f float64) {
	if m.addmanual_grade != nil {
		*m.addmanual_grade += f
	} else {
		m.addmanual_grade = &f
	}
}

// AddedManualGrade returns the value that was added to the "manual_grade" field in this mutation.
func (m *AnswerMutation) AddedManualGrade() (r float64, exists bool) {
	v := m.addmanual_grade
	if v == nil {
		return
	}
	return *v, true
}

// ClearManualGrade clears the value of the "manual_grade" field.
func (m *AnswerMutation) ClearManualGrade() {
	m.manual_grade = nil
	m.addmanual_grade = nil
	m.clearedFields[answer.FieldManualGrade] = struct{}{}
}

// ManualGradeCleared returns if the "manual_grade" field was cleared in this mutation.
func (m *AnswerMutation) ManualGradeCleared() bool {
	_, ok := m.clearedFields[answer.FieldManualGrade]
	return ok
}

// ResetManualGrade resets all changes to the "manual_grade" field.
func (m *AnswerMutation) ResetManualGrade() {
	m.manual_grade = nil
	m.addmanual_grade = nil
	delete(m.clearedFields, answer.FieldManualGrade)
}

// SetIsOverridden sets the "is_overridden" field.
func (m *AnswerMutation) SetIsOverridden(b bool) {
	m.is_overridden = &b
}

// IsOverridden returns the value of the "is_overridden" field in the mutation.
func (m *AnswerMutation) IsOverridden() (r bool, exists bool) {
	v := m.is_overridden
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOverridden returns the old "is_overridden" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldIsOverridden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOverridden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOverridden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOverridden: %w", err)
	}
	return oldValue.IsOverridden, nil
}

// ResetIsOverridden resets all changes to the "is_overridden" field.
func (m *AnswerMutation) ResetIsOverridden() {
	m.is_overridden = nil
}

// SetOverrideJustification sets the "override_justification" field.
func (m *AnswerMutation) SetOverrideJustification(s string) {
	m.override_justification = &s
}

// OverrideJustification returns the value of the "override_justification" field in the mutation.
func (m *AnswerMutation) OverrideJustification() (r string, exists bool) {
	v := m.override_justification
	if v == nil {
		return
	}
	return *v, true
}

// OldOverrideJustification returns the old "override_justification" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldOverrideJustification(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverrideJustification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverrideJustification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverrideJustification: %w", err)
	}
	return oldValue.OverrideJustification, nil
}

// ClearOverrideJustification clears the value of the "override_justification" field.
func (m *AnswerMutation) ClearOverrideJustification() {
	m.override_justification = nil
	m.clearedFields[answer.FieldOverrideJustification] = struct{}{}
}

// OverrideJustificationCleared returns if the "override_justification" field was cleared in this mutation.
func (m *AnswerMutation) OverrideJustificationCleared() bool {
	_, ok := m.clearedFields[answer.FieldOverrideJustification]
	return ok
}

// ResetOverrideJustification resets all changes to the "override_justification" field.
func (m *AnswerMutation) ResetOverrideJustification() {
	m.override_justification = nil
	delete(m.clearedFields, answer.FieldOverrideJustification)
}

// SetLlmExplanation sets the "llm_explanation" field.
func (m *AnswerMutation) SetLlmExplanation(s string) {
	m.llm_explanation = &s
}

// LlmExplanation returns the value of the "llm_explanation" field in the mutation.
func (m *AnswerMutation) LlmExplanation() (r string, exists bool) {
	v := m.llm_explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmExplanation returns the old "llm_explanation" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldLlmExplanation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmExplanation: %w", err)
	}
	return oldValue.LlmExplanation, nil
}

// ClearLlmExplanation clears the value of the "llm_explanation" field.
func (m *AnswerMutation) ClearLlmExplanation() {
	m.llm_explanation = nil
	m.clearedFields[answer.FieldLlmExplanation] = struct{}{}
}

// LlmExplanationCleared returns if the "llm_explanation" field was cleared in this mutation.
func (m *AnswerMutation) LlmExplanationCleared() bool {
	_, ok := m.clearedFields[answer.FieldLlmExplanation]
	return ok
}

// ResetLlmExplanation resets all changes to the "llm_explanation" field.
func (m *AnswerMutation) ResetLlmExplanation() {
	m.llm_explanation = nil
	delete(m.clearedFields, answer.FieldLlmExplanation)
}

// SetFlags sets the "flags" field.
func (m *AnswerMutation) SetFlags(s []string) {
	m.flags = &s
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *AnswerMutation) Flags() (r []string, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds s to the "flags" field.
func (m *AnswerMutation) AppendFlags(s []string) {
	m.appendflags = append(m.appendflags, s...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *AnswerMutation) AppendedFlags() ([]string, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *AnswerMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[answer.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *AnswerMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[answer.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *AnswerMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, answer.FieldFlags)
}

// SetSpatialLocation sets the "spatial_location" field.
func (m *AnswerMutation) SetSpatialLocation(jm json.RawMessage) {
	m.spatial_location = &jm
	m.appendspatial_location = nil
}

// SpatialLocation returns the value of the "spatial_location" field in the mutation.
func (m *AnswerMutation) SpatialLocation() (r json.RawMessage, exists bool) {
	v := m.spatial_location
	if v == nil {
		return
	}
	return *v, true
}

// OldSpatialLocation returns the old "spatial_location" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSpatialLocation(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpatialLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpatialLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpatialLocation: %w", err)
	}
	return oldValue.SpatialLocation, nil
}

// AppendSpatialLocation adds jm to the "spatial_location" field.
func (m *AnswerMutation) AppendSpatialLocation(jm json.RawMessage) {
	m.appendspatial_location = append(m.appendspatial_location, jm...)
}

// AppendedSpatialLocation returns the list of values that were appended to the "spatial_location" field in this mutation.
func (m *AnswerMutation) AppendedSpatialLocation() (json.RawMessage, bool) {
	if len(m.appendspatial_location) == 0 {
		return nil, false
	}
	return m.appendspatial_location, true
}

// ClearSpatialLocation clears the value of the "spatial_location" field.
func (m *AnswerMutation) ClearSpatialLocation() {
	m.spatial_location = nil
	m.appendspatial_location = nil
	m.clearedFields[answer.FieldSpatialLocation] = struct{}{}
}

// SpatialLocationCleared returns if the "spatial_location" field was cleared in this mutation.
func (m *AnswerMutation) SpatialLocationCleared() bool {
	_, ok := m.clearedFields[answer.FieldSpatialLocation]
	return ok
}

// ResetSpatialLocation resets all changes to the "spatial_location" field.
func (m *AnswerMutation) ResetSpatialLocation() {
	m.spatial_location = nil
	m.appendspatial_location = nil
	delete(m.clearedFields, answer.FieldSpatialLocation)
}

// SetSuperseded sets the "superseded" field.
func (m *AnswerMutation) SetSuperseded(b bool) {
	m.superseded = &b
}

// Superseded returns the value of the "superseded" field in the mutation.
func (m *AnswerMutation) Superseded() (r bool, exists bool) {
	v := m.superseded
	if v == nil {
		return
	}
	return *v, true
}

// OldSuperseded returns the old "superseded" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSuperseded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuperseded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuperseded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuperseded: %w", err)
	}
	return oldValue.Superseded, nil
}

// ResetSuperseded resets all changes to the "superseded" field.
func (m *AnswerMutation) ResetSuperseded() {
	m.superseded = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnswerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnswerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnswerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetScriptID sets the "script" edge to the AnswerScript entity by id.
func (m *AnswerMutation) SetScriptID(id uuid.UUID) {
	m.script = &id
}

// ClearScript clears the "script" edge to the AnswerScript entity.
func (m *AnswerMutation) ClearScript() {
	m.clearedscript = true
	m.clearedFields[answer.FieldAnswerScriptID] = struct{}{}
}

// ScriptCleared reports if the "script" edge to the AnswerScript entity was cleared.
func (m *AnswerMutation) ScriptCleared() bool {
	return m.clearedscript
}

// ScriptID returns the "script" edge ID in the mutation.
func (m *AnswerMutation) ScriptID() (id uuid.UUID, exists bool) {
	if m.script != nil {
		return *m.script, true
	}
	return
}

// ScriptIDs returns the "script" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScriptID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) ScriptIDs() (ids []uuid.UUID) {
	if id := m.script; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScript resets all changes to the "script" edge.
func (m *AnswerMutation) ResetScript() {
	m.script = nil
	m.clearedscript = false
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AnswerMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[answer.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AnswerMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.script != nil {
		fields = append(fields, answer.FieldAnswerScriptID)
	}
	if m.question != nil {
		fields = append(fields, answer.FieldQuestionID)
	}
	if m.extracted_text != nil {
		fields = append(fields, answer.FieldExtractedText)
	}
	if m.segmentation_confidence != nil {
		fields = append(fields, answer.FieldSegmentationConfidence)
	}
	if m.segmentation_method != nil {
		fields = append(fields, answer.FieldSegmentationMethod)
	}
	if m.assigned_grade != nil {
		fields = append(fields, answer.FieldAssignedGrade)
	}
	if m.manual_grade != nil {
		fields = append(fields, answer.FieldManualGrade)
	}
	if m.is_overridden != nil {
		fields = append(fields, answer.FieldIsOverridden)
	}
	if m.override_justification != nil {
		fields = append(fields, answer.FieldOverrideJustification)
	}
	if m.llm_explanation != nil {
		fields = append(fields, answer.FieldLlmExplanation)
	}
	if m.flags != nil {
		fields = append(fields, answer.FieldFlags)
	}
	if m.spatial_location != nil {
		fields = append(fields, answer.FieldSpatialLocation)
	}
	if m.superseded != nil {
		fields = append(fields, answer.FieldSuperseded)
	}
	if m.created_at != nil {
		fields = append(fields, answer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, answer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldAnswerScriptID:
		return m.AnswerScriptID()
	case answer.FieldQuestionID:
		return m.QuestionID()
	case answer.FieldExtractedText:
		return m.ExtractedText()
	case answer.FieldSegmentationConfidence:
		return m.SegmentationConfidence()
	case answer.FieldSegmentationMethod:
		return m.SegmentationMethod()
	case answer.FieldAssignedGrade:
		return m.AssignedGrade()
	case answer.FieldManualGrade:
		return m.ManualGrade()
	case answer.FieldIsOverridden:
		return m.IsOverridden()
	case answer.FieldOverrideJustification:
		return m.OverrideJustification()
	case answer.FieldLlmExplanation:
		return m.LlmExplanation()
	case answer.FieldFlags:
		return m.Flags()
	case answer.FieldSpatialLocation:
		return m.SpatialLocation()
	case answer.FieldSuperseded:
		return m.Superseded()
	case answer.FieldCreatedAt:
		return m.CreatedAt()
	case answer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldAnswerScriptID:
		return m.OldAnswerScriptID(ctx)
	case answer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answer.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case answer.FieldSegmentationConfidence:
		return m.OldSegmentationConfidence(ctx)
	case answer.FieldSegmentationMethod:
		return m.OldSegmentationMethod(ctx)
	case answer.FieldAssignedGrade:
		return m.OldAssignedGrade(ctx)
	case answer.FieldManualGrade:
		return m.OldManualGrade(ctx)
	case answer.FieldIsOverridden:
		return m.OldIsOverridden(ctx)
	case answer.FieldOverrideJustification:
		return m.OldOverrideJustification(ctx)
	case answer.FieldLlmExplanation:
		return m.OldLlmExplanation(ctx)
	case answer.FieldFlags:
		return m.OldFlags(ctx)
	case answer.FieldSpatialLocation:
		return m.OldSpatialLocation(ctx)
	case answer.FieldSuperseded:
		return m.OldSuperseded(ctx)
	case answer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case answer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldAnswerScriptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerScriptID(v)
		return nil
	case answer.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answer.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case answer.FieldSegmentationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentationConfidence(v)
		return nil
	case answer.FieldSegmentationMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentationMethod(v)
		return nil
	case answer.FieldAssignedGrade:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedGrade(v)
		return nil
	case answer.FieldManualGrade:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManualGrade(v)
		return nil
	case answer.FieldIsOverridden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOverridden(v)
		return nil
	case answer.FieldOverrideJustification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverrideJustification(v)
		return nil
	case answer.FieldLlmExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmExplanation(v)
		return nil
	case answer.FieldFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case answer.FieldSpatialLocation:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpatialLocation(v)
		return nil
	case answer.FieldSuperseded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuperseded(v)
		return nil
	case answer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case answer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addsegmentation_confidence != nil {
		fields = append(fields, answer.FieldSegmentationConfidence)
	}
	if m.addassigned_grade != nil {
		fields = append(fields, answer.FieldAssignedGrade)
	}
	if m.addmanual_grade != nil {
		fields = append(fields, answer.FieldManualGrade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldSegmentationConfidence:
		return m.AddedSegmentationConfidence()
	case answer.FieldAssignedGrade:
		return m.AddedAssignedGrade()
	case answer.FieldManualGrade:
		return m.AddedManualGrade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldSegmentationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSegmentationConfidence(v)
		return nil
	case answer.FieldAssignedGrade:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedGrade(v)
		return nil
	case answer.FieldManualGrade:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddManualGrade(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answer.FieldSegmentationConfidence) {
		fields = append(fields, answer.FieldSegmentationConfidence)
	}
	if m.FieldCleared(answer.FieldSegmentationMethod) {
		fields = append(fields, answer.FieldSegmentationMethod)
	}
	if m.FieldCleared(answer.FieldAssignedGrade) {
		fields = append(fields, answer.FieldAssignedGrade)
	}
	if m.FieldCleared(answer.FieldManualGrade) {
		fields = append(fields, answer.FieldManualGrade)
	}
	if m.FieldCleared(answer.FieldOverrideJustification) {
		fields = append(fields, answer.FieldOverrideJustification)
	}
	if m.FieldCleared(answer.FieldLlmExplanation) {
		fields = append(fields, answer.FieldLlmExplanation)
	}
	if m.FieldCleared(answer.FieldFlags) {
		fields = append(fields, answer.FieldFlags)
	}
	if m.FieldCleared(answer.FieldSpatialLocation) {
		fields = append(fields, answer.FieldSpatialLocation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	switch name {
	case answer.FieldSegmentationConfidence:
		m.ClearSegmentationConfidence()
		return nil
	case answer.FieldSegmentationMethod:
		m.ClearSegmentationMethod()
		return nil
	case answer.FieldAssignedGrade:
		m.ClearAssignedGrade()
		return nil
	case answer.FieldManualGrade:
		m.ClearManualGrade()
		return nil
	case answer.FieldOverrideJustification:
		m.ClearOverrideJustification()
		return nil
	case answer.FieldLlmExplanation:
		m.ClearLlmExplanation()
		return nil
	case answer.FieldFlags:
		m.ClearFlags()
		return nil
	case answer.FieldSpatialLocation:
		m.ClearSpatialLocation()
		return nil
	}
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldAnswerScriptID:
		m.ResetAnswerScriptID()
		return nil
	case answer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answer.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case answer.FieldSegmentationConfidence:
		m.ResetSegmentationConfidence()
		return nil
	case answer.FieldSegmentationMethod:
		m.ResetSegmentationMethod()
		return nil
	case answer.FieldAssignedGrade:
		m.ResetAssignedGrade()
		return nil
	case answer.FieldManualGrade:
		m.ResetManualGrade()
		return nil
	case answer.FieldIsOverridden:
		m.ResetIsOverridden()
		return nil
	case answer.FieldOverrideJustification:
		m.ResetOverrideJustification()
		return nil
	case answer.FieldLlmExplanation:
		m.ResetLlmExplanation()
		return nil
	case answer.FieldFlags:
		m.ResetFlags()
		return nil
	case answer.FieldSpatialLocation:
		m.ResetSpatialLocation()
		return nil
	case answer.FieldSuperseded:
		m.ResetSuperseded()
		return nil
	case answer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case answer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.script != nil {
		edges = append(edges, answer.EdgeScript)
	}
	if m.question != nil {
		edges = append(edges, answer.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeScript:
		if id := m.script; id != nil {
			return []ent.Value{*id}
		}
	case answer.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedscript {
		edges = append(edges, answer.EdgeScript)
	}
	if m.clearedquestion {
		edges = append(edges, answer.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeScript:
		return m.clearedscript
	case answer.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeScript:
		m.ClearScript()
		return nil
	case answer.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeScript:
		m.ResetScript()
		return nil
	case answer.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// AnswerScriptMutation represents an operation that mutates the AnswerScript nodes in the graph.
type AnswerScriptMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	school_id                   *uuid.UUID
	teacher_id                  *uuid.UUID
	image_path                  *string
	content_hash                *[]byte
	script_number               *int
	addscript_number            *int
	processing_status           *string
	version                     *int
	addversion                  *int
	identification_method       *string
	full_extracted_text         *string
	combined_extracted_text     *string
	custom_instructions         *string
	enable_misconduct_detection *bool
	flags                       *[]string
	appendflags                 []string
	overall_confidence          *float64
	addoverall_confidence       *float64
	predominant_method          *string
	confidence_label            *string
	error_reason                *string
	uploaded_at                 *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	examination                 *uuid.UUID
	clearedexamination          bool
	student                     *uuid.UUID
	clearedstudent              bool
	answers                     map[uuid.UUID]struct{}
	removedanswers              map[uuid.UUID]struct{}
	clearedanswers              bool
	done                        bool
	oldValue                    func(context.Context) (*AnswerScript, error)
	predicates                  []predicate.AnswerScript
}

var _ ent.Mutation = (*AnswerScriptMutation)(nil)

// answerscriptOption allows management of the mutation configuration using functional options.
type answerscriptOption func(*AnswerScriptMutation)

// newAnswerScriptMutation creates new mutation for the AnswerScript entity.
func newAnswerScriptMutation(c config, op Op, opts ...answerscriptOption) *AnswerScriptMutation {
	m := &AnswerScriptMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerScript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerScriptID sets the ID field of the mutation.
func withAnswerScriptID(id uuid.UUID) answerscriptOption {
	return func(m *AnswerScriptMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerScript
		)
		m.oldValue = func(ctx context.Context) (*AnswerScript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerScript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerScript sets the old AnswerScript of the mutation.
func withAnswerScript(node *AnswerScript) answerscriptOption {
	return func(m *AnswerScriptMutation) {
		m.oldValue = func(context.Context) (*AnswerScript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerScriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerScriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnswerScript entities.
func (m *AnswerScriptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerScriptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerScriptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerScript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExaminationID sets the "examination_id" field.
func (m *AnswerScriptMutation) SetExaminationID(u uuid.UUID) {
	m.examination = &u
}

// ExaminationID returns the value of the "examination_id" field in the mutation.
func (m *AnswerScriptMutation) ExaminationID() (r uuid.UUID, exists bool) {
	v := m.examination
	if v == nil {
		return
	}
	return *v, true
}

// OldExaminationID returns the old "examination_id" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldExaminationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExaminationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExaminationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExaminationID: %w", err)
	}
	return oldValue.ExaminationID, nil
}

// ResetExaminationID resets all changes to the "examination_id" field.
func (m *AnswerScriptMutation) ResetExaminationID() {
	m.examination = nil
}

// SetSchoolID sets the "school_id" field.
func (m *AnswerScriptMutation) SetSchoolID(u uuid.UUID) {
	m.school_id = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *AnswerScriptMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *AnswerScriptMutation) ResetSchoolID() {
	m.school_id = nil
}

// SetTeacherID sets the "teacher_id" field.
func (m *AnswerScriptMutation) SetTeacherID(u uuid.UUID) {
	m.teacher_id = &u
}

// TeacherID returns the value of the "teacher_id" field in the mutation.
func (m *AnswerScriptMutation) TeacherID() (r uuid.UUID, exists bool) {
	v := m.teacher_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeacherID returns the old "teacher_id" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldTeacherID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeacherID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeacherID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeacherID: %w", err)
	}
	return oldValue.TeacherID, nil
}

// ResetTeacherID resets all changes to the "teacher_id" field.
func (m *AnswerScriptMutation) ResetTeacherID() {
	m.teacher_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *AnswerScriptMutation) SetStudentID(u uuid.UUID) {
	m.student = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AnswerScriptMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldStudentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ClearStudentID clears the value of the "student_id" field.
func (m *AnswerScriptMutation) ClearStudentID() {
	m.student = nil
	m.clearedFields[answerscript.FieldStudentID] = struct{}{}
}

// StudentIDCleared returns if the "student_id" field was cleared in this mutation.
func (m *AnswerScriptMutation) StudentIDCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldStudentID]
	return ok
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AnswerScriptMutation) ResetStudentID() {
	m.student = nil
	delete(m.clearedFields, answerscript.FieldStudentID)
}

// SetImagePath sets the "image_path" field.
func (m *AnswerScriptMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *AnswerScriptMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *AnswerScriptMutation) ResetImagePath() {
	m.image_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *AnswerScriptMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *AnswerScriptMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *AnswerScriptMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[answerscript.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *AnswerScriptMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *AnswerScriptMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, answerscript.FieldContentHash)
}

// SetScriptNumber sets the "script_number" field.
func (m *AnswerScriptMutation) SetScriptNumber(i int) {
	m.script_number = &i
	m.addscript_number = nil
}

// ScriptNumber returns the value of the "script_number" field in the mutation.
func (m *AnswerScriptMutation) ScriptNumber() (r int, exists bool) {
	v := m.script_number
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptNumber returns the old "script_number" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldScriptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptNumber: %w", err)
	}
	return oldValue.ScriptNumber, nil
}

// AddScriptNumber adds i to the "script_number" field.
func (m *AnswerScriptMutation) AddScriptNumber(i int) {
	if m.addscript_number != nil {
		*m.addscript_number += i
	} else {
		m.addscript_number = &i
	}
}

// AddedScriptNumber returns the value that was added to the "script_number" field in this mutation.
func (m *AnswerScriptMutation) AddedScriptNumber() (r int, exists bool) {
	v := m.addscript_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetScriptNumber resets all changes to the "script_number" field.
func (m *AnswerScriptMutation) ResetScriptNumber() {
	m.script_number = nil
	m.addscript_number = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *AnswerScriptMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *AnswerScriptMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *AnswerScriptMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetVersion sets the "version" field.
func (m *AnswerScriptMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AnswerScriptMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AnswerScriptMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AnswerScriptMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AnswerScriptMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIdentificationMethod sets the "identification_method" field.
func (m *AnswerScriptMutation) SetIdentificationMethod(s string) {
	m.identification_method = &s
}

// IdentificationMethod returns the value of the "identification_method" field in the mutation.
func (m *AnswerScriptMutation) IdentificationMethod() (r string, exists bool) {
	v := m.identification_method
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentificationMethod returns the old "identification_method" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldIdentificationMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentificationMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentificationMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentificationMethod: %w", err)
	}
	return oldValue.IdentificationMethod, nil
}

// ClearIdentificationMethod clears the value of the "identification_method" field.
func (m *AnswerScriptMutation) ClearIdentificationMethod() {
	m.identification_method = nil
	m.clearedFields[answerscript.FieldIdentificationMethod] = struct{}{}
}

// IdentificationMethodCleared returns if the "identification_method" field was cleared in this mutation.
func (m *AnswerScriptMutation) IdentificationMethodCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldIdentificationMethod]
	return ok
}

// ResetIdentificationMethod resets all changes to the "identification_method" field.
func (m *AnswerScriptMutation) ResetIdentificationMethod() {
	m.identification_method = nil
	delete(m.clearedFields, answerscript.FieldIdentificationMethod)
}

// SetFullExtractedText sets the "full_extracted_text" field.
func (m *AnswerScriptMutation) SetFullExtractedText(s string) {
	m.full_extracted_text = &s
}

// FullExtractedText returns the value of the "full_extracted_text" field in the mutation.
func (m *AnswerScriptMutation) FullExtractedText() (r string, exists bool) {
	v := m.full_extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullExtractedText returns the old "full_extracted_text" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldFullExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullExtractedText: %w", err)
	}
	return oldValue.FullExtractedText, nil
}

// ClearFullExtractedText clears the value of the "full_extracted_text" field.
func (m *AnswerScriptMutation) ClearFullExtractedText() {
	m.full_extracted_text = nil
	m.clearedFields[answerscript.FieldFullExtractedText] = struct{}{}
}

// FullExtractedTextCleared returns if the "full_extracted_text" field was cleared in this mutation.
func (m *AnswerScriptMutation) FullExtractedTextCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldFullExtractedText]
	return ok
}

// ResetFullExtractedText resets all changes to the "full_extracted_text" field.
func (m *AnswerScriptMutation) ResetFullExtractedText() {
	m.full_extracted_text = nil
	delete(m.clearedFields, answerscript.FieldFullExtractedText)
}

// SetCombinedExtractedText sets the "combined_extracted_text" field.
func (m *AnswerScriptMutation) SetCombinedExtractedText(s string) {
	m.combined_extracted_text = &s
}

// CombinedExtractedText returns the value of the "combined_extracted_text" field in the mutation.
func (m *AnswerScriptMutation) CombinedExtractedText() (r string, exists bool) {
	v := m.combined_extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCombinedExtractedText returns the old "combined_extracted_text" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldCombinedExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombinedExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombinedExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombinedExtractedText: %w", err)
	}
	return oldValue.CombinedExtractedText, nil
}

// ClearCombinedExtractedText clears the value of the "combined_extracted_text" field.
func (m *AnswerScriptMutation) ClearCombinedExtractedText() {
	m.combined_extracted_text = nil
	m.clearedFields[answerscript.FieldCombinedExtractedText] = struct{}{}
}

// CombinedExtractedTextCleared returns if the "combined_extracted_text" field was cleared in this mutation.
func (m *AnswerScriptMutation) CombinedExtractedTextCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldCombinedExtractedText]
	return ok
}

// ResetCombinedExtractedText resets all changes to the "combined_extracted_text" field.
func (m *AnswerScriptMutation) ResetCombinedExtractedText() {
	m.combined_extracted_text = nil
	delete(m.clearedFields, answerscript.FieldCombinedExtractedText)
}

// SetCustomInstructions sets the "custom_instructions" field.
func (m *AnswerScriptMutation) SetCustomInstructions(s string) {
	m.custom_instructions = &s
}

// CustomInstructions returns the value of the "custom_instructions" field in the mutation.
func (m *AnswerScriptMutation) CustomInstructions() (r string, exists bool) {
	v := m.custom_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomInstructions returns the old "custom_instructions" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldCustomInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomInstructions: %w", err)
	}
	return oldValue.CustomInstructions, nil
}

// ClearCustomInstructions clears the value of the "custom_instructions" field.
func (m *AnswerScriptMutation) ClearCustomInstructions() {
	m.custom_instructions = nil
	m.clearedFields[answerscript.FieldCustomInstructions] = struct{}{}
}

// CustomInstructionsCleared returns if the "custom_instructions" field was cleared in this mutation.
func (m *AnswerScriptMutation) CustomInstructionsCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldCustomInstructions]
	return ok
}

// ResetCustomInstructions resets all changes to the "custom_instructions" field.
func (m *AnswerScriptMutation) ResetCustomInstructions() {
	m.custom_instructions = nil
	delete(m.clearedFields, answerscript.FieldCustomInstructions)
}

// SetEnableMisconductDetection sets the "enable_misconduct_detection" field.
func (m *AnswerScriptMutation) SetEnableMisconductDetection(b bool) {
	m.enable_misconduct_detection = &b
}

// EnableMisconductDetection returns the value of the "enable_misconduct_detection" field in the mutation.
func (m *AnswerScriptMutation) EnableMisconductDetection() (r bool, exists bool) {
	v := m.enable_misconduct_detection
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableMisconductDetection returns the old "enable_misconduct_detection" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldEnableMisconductDetection(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableMisconductDetection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableMisconductDetection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableMisconductDetection: %w", err)
	}
	return oldValue.EnableMisconductDetection, nil
}

// ResetEnableMisconductDetection resets all changes to the "enable_misconduct_detection" field.
func (m *AnswerScriptMutation) ResetEnableMisconductDetection() {
	m.enable_misconduct_detection = nil
}

// SetFlags sets the "flags" field.
func (m *AnswerScriptMutation) SetFlags(s []string) {
	m.flags = &s
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *AnswerScriptMutation) Flags() (r []string, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds s to the "flags" field.
func (m *AnswerScriptMutation) AppendFlags(s []string) {
	m.appendflags = append(m.appendflags, s...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *AnswerScriptMutation) AppendedFlags() ([]string, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *AnswerScriptMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[answerscript.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *AnswerScriptMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *AnswerScriptMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, answerscript.FieldFlags)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *AnswerScriptMutation) SetOverallConfidence(f float64) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *AnswerScriptMutation) OverallConfidence() (r float64, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldOverallConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *AnswerScriptMutation) AddOverallConfidence(f float64) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *AnswerScriptMutation) AddedOverallConfidence() (r float64, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (m *AnswerScriptMutation) ClearOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	m.clearedFields[answerscript.FieldOverallConfidence] = struct{}{}
}

// OverallConfidenceCleared returns if the "overall_confidence" field was cleared in this mutation.
func (m *AnswerScriptMutation) OverallConfidenceCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldOverallConfidence]
	return ok
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *AnswerScriptMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	delete(m.clearedFields, answerscript.FieldOverallConfidence)
}

// SetPredominantMethod sets the "predominant_method" field.
func (m *AnswerScriptMutation) SetPredominantMethod(s string) {
	m.predominant_method = &s
}

// PredominantMethod returns the value of the "predominant_method" field in the mutation.
func (m *AnswerScriptMutation) PredominantMethod() (r string, exists bool) {
	v := m.predominant_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPredominantMethod returns the old "predominant_method" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldPredominantMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredominantMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredominantMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredominantMethod: %w", err)
	}
	return oldValue.PredominantMethod, nil
}

// ClearPredominantMethod clears the value of the "predominant_method" field.
func (m *AnswerScriptMutation) ClearPredominantMethod() {
	m.predominant_method = nil
	m.clearedFields[answerscript.FieldPredominantMethod] = struct{}{}
}

// PredominantMethodCleared returns if the "predominant_method" field was cleared in this mutation.
func (m *AnswerScriptMutation) PredominantMethodCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldPredominantMethod]
	return ok
}

// ResetPredominantMethod resets all changes to the "predominant_method" field.
func (m *AnswerScriptMutation) ResetPredominantMethod() {
	m.predominant_method = nil
	delete(m.clearedFields, answerscript.FieldPredominantMethod)
}

// SetConfidenceLabel sets the "confidence_label" field.
func (m *AnswerScriptMutation) SetConfidenceLabel(s string) {
	m.confidence_label = &s
}

// ConfidenceLabel returns the value of the "confidence_label" field in the mutation.
func (m *AnswerScriptMutation) ConfidenceLabel() (r string, exists bool) {
	v := m.confidence_label
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLabel returns the old "confidence_label" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldConfidenceLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLabel: %w", err)
	}
	return oldValue.ConfidenceLabel, nil
}

// ClearConfidenceLabel clears the value of the "confidence_label" field.
func (m *AnswerScriptMutation) ClearConfidenceLabel() {
	m.confidence_label = nil
	m.clearedFields[answerscript.FieldConfidenceLabel] = struct{}{}
}

// ConfidenceLabelCleared returns if the "confidence_label" field was cleared in this mutation.
func (m *AnswerScriptMutation) ConfidenceLabelCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldConfidenceLabel]
	return ok
}

// ResetConfidenceLabel resets all changes to the "confidence_label" field.
func (m *AnswerScriptMutation) ResetConfidenceLabel() {
	m.confidence_label = nil
	delete(m.clearedFields, answerscript.FieldConfidenceLabel)
}

// SetErrorReason sets the "error_reason" field.
func (m *AnswerScriptMutation) SetErrorReason(s string) {
	m.error_reason = &s
}

// ErrorReason returns the value of the "error_reason" field in the mutation.
func (m *AnswerScriptMutation) ErrorReason() (r string, exists bool) {
	v := m.error_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorReason returns the old "error_reason" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldErrorReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorReason: %w", err)
	}
	return oldValue.ErrorReason, nil
}

// ClearErrorReason clears the value of the "error_reason" field.
func (m *AnswerScriptMutation) ClearErrorReason() {
	m.error_reason = nil
	m.clearedFields[answerscript.FieldErrorReason] = struct{}{}
}

// ErrorReasonCleared returns if the "error_reason" field was cleared in this mutation.
func (m *AnswerScriptMutation) ErrorReasonCleared() bool {
	_, ok := m.clearedFields[answerscript.FieldErrorReason]
	return ok
}

// ResetErrorReason resets all changes to the "error_reason" field.
func (m *AnswerScriptMutation) ResetErrorReason() {
	m.error_reason = nil
	delete(m.clearedFields, answerscript.FieldErrorReason)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *AnswerScriptMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *AnswerScriptMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *AnswerScriptMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnswerScriptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnswerScriptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnswerScript entity.
// If the AnswerScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerScriptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnswerScriptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearExamination clears the "examination" edge to the Examination entity.
func (m *AnswerScriptMutation) ClearExamination() {
	m.clearedexamination = true
	m.clearedFields[answerscript.FieldExaminationID] = struct{}{}
}

// ExaminationCleared reports if the "examination" edge to the Examination entity was cleared.
func (m *AnswerScriptMutation) ExaminationCleared() bool {
	return m.clearedexamination
}

// ExaminationIDs returns the "examination" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExaminationID instead. It exists only for internal usage by the builders.
func (m *AnswerScriptMutation) ExaminationIDs() (ids []uuid.UUID) {
	if id := m.examination; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExamination resets all changes to the "examination" edge.
func (m *AnswerScriptMutation) ResetExamination() {
	m.examination = nil
	m.clearedexamination = false
}

// ClearStudent clears the "student" edge to the Student entity.
func (m *AnswerScriptMutation) ClearStudent() {
	m.clearedstudent = true
	m.clearedFields[answerscript.FieldStudentID] = struct{}{}
}

// StudentCleared reports if the "student" edge to the Student entity was cleared.
func (m *AnswerScriptMutation) StudentCleared() bool {
	return m.StudentIDCleared() || m.clearedstudent
}

// StudentIDs returns the "student" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudentID instead. It exists only for internal usage by the builders.
func (m *AnswerScriptMutation) StudentIDs() (ids []uuid.UUID) {
	if id := m.student; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudent resets all changes to the "student" edge.
func (m *AnswerScriptMutation) ResetStudent() {
	m.student = nil
	m.clearedstudent = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *AnswerScriptMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *AnswerScriptMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *AnswerScriptMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *AnswerScriptMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *AnswerScriptMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *AnswerScriptMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *AnswerScriptMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the AnswerScriptMutation builder.
func (m *AnswerScriptMutation) Where(ps ...predicate.AnswerScript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerScriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerScriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerScript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerScriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerScriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerScript).
func (m *AnswerScriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerScriptMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.examination != nil {
		fields = append(fields, answerscript.FieldExaminationID)
	}
	if m.school_id != nil {
		fields = append(fields, answerscript.FieldSchoolID)
	}
	if m.teacher_id != nil {
		fields = append(fields, answerscript.FieldTeacherID)
	}
	if m.student != nil {
		fields = append(fields, answerscript.FieldStudentID)
	}
	if m.image_path != nil {
		fields = append(fields, answerscript.FieldImagePath)
	}
	if m.content_hash != nil {
		fields = append(fields, answerscript.FieldContentHash)
	}
	if m.script_number != nil {
		fields = append(fields, answerscript.FieldScriptNumber)
	}
	if m.processing_status != nil {
		fields = append(fields, answerscript.FieldProcessingStatus)
	}
	if m.version != nil {
		fields = append(fields, answerscript.FieldVersion)
	}
	if m.identification_method != nil {
		fields = append(fields, answerscript.FieldIdentificationMethod)
	}
	if m.full_extracted_text != nil {
		fields = append(fields, answerscript.FieldFullExtractedText)
	}
	if m.combined_extracted_text != nil {
		fields = append(fields, answerscript.FieldCombinedExtractedText)
	}
	if m.custom_instructions != nil {
		fields = append(fields, answerscript.FieldCustomInstructions)
	}
	if m.enable_misconduct_detection != nil {
		fields = append(fields, answerscript.FieldEnableMisconductDetection)
	}
	if m.flags != nil {
		fields = append(fields, answerscript.FieldFlags)
	}
	if m.overall_confidence != nil {
		fields = append(fields, answerscript.FieldOverallConfidence)
	}
	if m.predominant_method != nil {
		fields = append(fields, answerscript.FieldPredominantMethod)
	}
	if m.confidence_label != nil {
		fields = append(fields, answerscript.FieldConfidenceLabel)
	}
	if m.error_reason != nil {
		fields = append(fields, answerscript.FieldErrorReason)
	}
	if m.uploaded_at != nil {
		fields = append(fields, answerscript.FieldUploadedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, answerscript.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerScriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerscript.FieldExaminationID:
		return m.ExaminationID()
	case answerscript.FieldSchoolID:
		return m.SchoolID()
	case answerscript.FieldTeacherID:
		return m.TeacherID()
	case answerscript.FieldStudentID:
		return m.StudentID()
	case answerscript.FieldImagePath:
		return m.ImagePath()
	case answerscript.FieldContentHash:
		return m.ContentHash()
	case answerscript.FieldScriptNumber:
		return m.ScriptNumber()
	case answerscript.FieldProcessingStatus:
		return m.ProcessingStatus()
	case answerscript.FieldVersion:
		return m.Version()
	case answerscript.FieldIdentificationMethod:
		return m.IdentificationMethod()
	case answerscript.FieldFullExtractedText:
		return m.FullExtractedText()
	case answerscript.FieldCombinedExtractedText:
		return m.CombinedExtractedText()
	case answerscript.FieldCustomInstructions:
		return m.CustomInstructions()
	case answerscript.FieldEnableMisconductDetection:
		return m.EnableMisconductDetection()
	case answerscript.FieldFlags:
		return m.Flags()
	case answerscript.FieldOverallConfidence:
		return m.OverallConfidence()
	case answerscript.FieldPredominantMethod:
		return m.PredominantMethod()
	case answerscript.FieldConfidenceLabel:
		return m.ConfidenceLabel()
	case answerscript.FieldErrorReason:
		return m.ErrorReason()
	case answerscript.FieldUploadedAt:
		return m.UploadedAt()
	case answerscript.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerScriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerscript.FieldExaminationID:
		return m.OldExaminationID(ctx)
	case answerscript.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case answerscript.FieldTeacherID:
		return m.OldTeacherID(ctx)
	case answerscript.FieldStudentID:
		return m.OldStudentID(ctx)
	case answerscript.FieldImagePath:
		return m.OldImagePath(ctx)
	case answerscript.FieldContentHash:
		return m.OldContentHash(ctx)
	case answerscript.FieldScriptNumber:
		return m.OldScriptNumber(ctx)
	case answerscript.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case answerscript.FieldVersion:
		return m.OldVersion(ctx)
	case answerscript.FieldIdentificationMethod:
		return m.OldIdentificationMethod(ctx)
	case answerscript.FieldFullExtractedText:
		return m.OldFullExtractedText(ctx)
	case answerscript.FieldCombinedExtractedText:
		return m.OldCombinedExtractedText(ctx)
	case answerscript.FieldCustomInstructions:
		return m.OldCustomInstructions(ctx)
	case answerscript.FieldEnableMisconductDetection:
		return m.OldEnableMisconductDetection(ctx)
	case answerscript.FieldFlags:
		return m.OldFlags(ctx)
	case answerscript.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case answerscript.FieldPredominantMethod:
		return m.OldPredominantMethod(ctx)
	case answerscript.FieldConfidenceLabel:
		return m.OldConfidenceLabel(ctx)
	case answerscript.FieldErrorReason:
		return m.OldErrorReason(ctx)
	case answerscript.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case answerscript.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerScript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerScriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerscript.FieldExaminationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExaminationID(v)
		return nil
	case answerscript.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case answerscript.FieldTeacherID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeacherID(v)
		return nil
	case answerscript.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case answerscript.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case answerscript.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case answerscript.FieldScriptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptNumber(v)
		return nil
	case answerscript.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case answerscript.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case answerscript.FieldIdentificationMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentificationMethod(v)
		return nil
	case answerscript.FieldFullExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullExtractedText(v)
		return nil
	case answerscript.FieldCombinedExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombinedExtractedText(v)
		return nil
	case answerscript.FieldCustomInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomInstructions(v)
		return nil
	case answerscript.FieldEnableMisconductDetection:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableMisconductDetection(v)
		return nil
	case answerscript.FieldFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case answerscript.FieldOverallConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case answerscript.FieldPredominantMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredominantMethod(v)
		return nil
	case answerscript.FieldConfidenceLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLabel(v)
		return nil
	case answerscript.FieldErrorReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorReason(v)
		return nil
	case answerscript.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case answerscript.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerScript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerScriptMutation) AddedFields() []string {
	var fields []string
	if m.addscript_number != nil {
		fields = append(fields, answerscript.FieldScriptNumber)
	}
	if m.addversion != nil {
		fields = append(fields, answerscript.FieldVersion)
	}
	if m.addoverall_confidence != nil {
		fields = append(fields, answerscript.FieldOverallConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerScriptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerscript.FieldScriptNumber:
		return m.AddedScriptNumber()
	case answerscript.FieldVersion:
		return m.AddedVersion()
	case answerscript.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerScriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerscript.FieldScriptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScriptNumber(v)
		return nil
	case answerscript.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case answerscript.FieldOverallConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerScript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerScriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerscript.FieldStudentID) {
		fields = append(fields, answerscript.FieldStudentID)
	}
	if m.FieldCleared(answerscript.FieldContentHash) {
		fields = append(fields, answerscript.FieldContentHash)
	}
	if m.FieldCleared(answerscript.FieldIdentificationMethod) {
		fields = append(fields, answerscript.FieldIdentificationMethod)
	}
	if m.FieldCleared(answerscript.FieldFullExtractedText) {
		fields = append(fields, answerscript.FieldFullExtractedText)
	}
	if m.FieldCleared(answerscript.FieldCombinedExtractedText) {
		fields = append(fields, answerscript.FieldCombinedExtractedText)
	}
	if m.FieldCleared(answerscript.FieldCustomInstructions) {
		fields = append(fields, answerscript.FieldCustomInstructions)
	}
	if m.FieldCleared(answerscript.FieldFlags) {
		fields = append(fields, answerscript.FieldFlags)
	}
	if m.FieldCleared(answerscript.FieldOverallConfidence) {
		fields = append(fields, answerscript.FieldOverallConfidence)
	}
	if m.FieldCleared(answerscript.FieldPredominantMethod) {
		fields = append(fields, answerscript.FieldPredominantMethod)
	}
	if m.FieldCleared(answerscript.FieldConfidenceLabel) {
		fields = append(fields, answerscript.FieldConfidenceLabel)
	}
	if m.FieldCleared(answerscript.FieldErrorReason) {
		fields = append(fields, answerscript.FieldErrorReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerScriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerScriptMutation) ClearField(name string) error {
	switch name {
	case answerscript.FieldStudentID:
		m.ClearStudentID()
		return nil
	case answerscript.FieldContentHash:
		m.ClearContentHash()
		return nil
	case answerscript.FieldIdentificationMethod:
		m.ClearIdentificationMethod()
		return nil
	case answerscript.FieldFullExtractedText:
		m.ClearFullExtractedText()
		return nil
	case answerscript.FieldCombinedExtractedText:
		m.ClearCombinedExtractedText()
		return nil
	case answerscript.FieldCustomInstructions:
		m.ClearCustomInstructions()
		return nil
	case answerscript.FieldFlags:
		m.ClearFlags()
		return nil
	case answerscript.FieldOverallConfidence:
		m.ClearOverallConfidence()
		return nil
	case answerscript.FieldPredominantMethod:
		m.ClearPredominantMethod()
		return nil
	case answerscript.FieldConfidenceLabel:
		m.ClearConfidenceLabel()
		return nil
	case answerscript.FieldErrorReason:
		m.ClearErrorReason()
		return nil
	}
	return fmt.Errorf("unknown AnswerScript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerScriptMutation) ResetField(name string) error {
	switch name {
	case answerscript.FieldExaminationID:
		m.ResetExaminationID()
		return nil
	case answerscript.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case answerscript.FieldTeacherID:
		m.ResetTeacherID()
		return nil
	case answerscript.FieldStudentID:
		m.ResetStudentID()
		return nil
	case answerscript.FieldImagePath:
		m.ResetImagePath()
		return nil
	case answerscript.FieldContentHash:
		m.ResetContentHash()
		return nil
	case answerscript.FieldScriptNumber:
		m.ResetScriptNumber()
		return nil
	case answerscript.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case answerscript.FieldVersion:
		m.ResetVersion()
		return nil
	case answerscript.FieldIdentificationMethod:
		m.ResetIdentificationMethod()
		return nil
	case answerscript.FieldFullExtractedText:
		m.ResetFullExtractedText()
		return nil
	case answerscript.FieldCombinedExtractedText:
		m.ResetCombinedExtractedText()
		return nil
	case answerscript.FieldCustomInstructions:
		m.ResetCustomInstructions()
		return nil
	case answerscript.FieldEnableMisconductDetection:
		m.ResetEnableMisconductDetection()
		return nil
	case answerscript.FieldFlags:
		m.ResetFlags()
		return nil
	case answerscript.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case answerscript.FieldPredominantMethod:
		m.ResetPredominantMethod()
		return nil
	case answerscript.FieldConfidenceLabel:
		m.ResetConfidenceLabel()
		return nil
	case answerscript.FieldErrorReason:
		m.ResetErrorReason()
		return nil
	case answerscript.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case answerscript.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnswerScript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerScriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.examination != nil {
		edges = append(edges, answerscript.EdgeExamination)
	}
	if m.student != nil {
		edges = append(edges, answerscript.EdgeStudent)
	}
	if m.answers != nil {
		edges = append(edges, answerscript.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerScriptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answerscript.EdgeExamination:
		if id := m.examination; id != nil {
			return []ent.Value{*id}
		}
	case answerscript.EdgeStudent:
		if id := m.student; id != nil {
			return []ent.Value{*id}
		}
	case answerscript.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerScriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedanswers != nil {
		edges = append(edges, answerscript.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerScriptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case answerscript.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerScriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedexamination {
		edges = append(edges, answerscript.EdgeExamination)
	}
	if m.clearedstudent {
		edges = append(edges, answerscript.EdgeStudent)
	}
	if m.clearedanswers {
		edges = append(edges, answerscript.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerScriptMutation) EdgeCleared(name string) bool {
	switch name {
	case answerscript.EdgeExamination:
		return m.clearedexamination
	case answerscript.EdgeStudent:
		return m.clearedstudent
	case answerscript.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerScriptMutation) ClearEdge(name string) error {
	switch name {
	case answerscript.EdgeExamination:
		m.ClearExamination()
		return nil
	case answerscript.EdgeStudent:
		m.ClearStudent()
		return nil
	}
	return fmt.Errorf("unknown AnswerScript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerScriptMutation) ResetEdge(name string) error {
	switch name {
	case answerscript.EdgeExamination:
		m.ResetExamination()
		return nil
	case answerscript.EdgeStudent:
		m.ResetStudent()
		return nil
	case answerscript.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown AnswerScript edge %s", name)
}

// ExaminationMutation represents an operation that mutates the Examination nodes in the graph.
type ExaminationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	school_id        *uuid.UUID
	teacher_id       *uuid.UUID
	title            *string
	subject          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	questions        map[uuid.UUID]struct{}
	removedquestions map[uuid.UUID]struct{}
	clearedquestions bool
	scripts          map[uuid.UUID]struct{}
	removedscripts   map[uuid.UUID]struct{}
	clearedscripts   bool
	done             bool
	oldValue         func(context.Context) (*Examination, error)
	predicates       []predicate.Examination
}

var _ ent.Mutation = (*ExaminationMutation)(nil)

// examinationOption allows management of the mutation configuration using functional options.
type examinationOption func(*ExaminationMutation)

// newExaminationMutation creates new mutation for the Examination entity.
func newExaminationMutation(c config, op Op, opts ...examinationOption) *ExaminationMutation {
	m := &ExaminationMutation{
		config:        c,
		op:            op,
		typ:           TypeExamination,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExaminationID sets the ID field of the mutation.
func withExaminationID(id uuid.UUID) examinationOption {
	return func(m *ExaminationMutation) {
		var (
			err   error
			once  sync.Once
			value *Examination
		)
		m.oldValue = func(ctx context.Context) (*Examination, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Examination.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamination sets the old Examination of the mutation.
func withExamination(node *Examination) examinationOption {
	return func(m *ExaminationMutation) {
		m.oldValue = func(context.Context) (*Examination, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExaminationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExaminationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Examination entities.
func (m *ExaminationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExaminationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExaminationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Examination.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSchoolID sets the "school_id" field.
func (m *ExaminationMutation) SetSchoolID(u uuid.UUID) {
	m.school_id = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *ExaminationMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the Examination entity.
// If the Examination object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExaminationMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *ExaminationMutation) ResetSchoolID() {
	m.school_id = nil
}

// SetTeacherID sets the "teacher_id" field.
func (m *ExaminationMutation) SetTeacherID(u uuid.UUID) {
	m.teacher_id = &u
}

// TeacherID returns the value of the "teacher_id" field in the mutation.
func (m *ExaminationMutation) TeacherID() (r uuid.UUID, exists bool) {
	v := m.teacher_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTeacherID returns the old "teacher_id" field's value of the Examination entity.
// If the Examination object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExaminationMutation) OldTeacherID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeacherID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeacherID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeacherID: %w", err)
	}
	return oldValue.TeacherID, nil
}

// ResetTeacherID resets all changes to the "teacher_id" field.
func (m *ExaminationMutation) ResetTeacherID() {
	m.teacher_id = nil
}

// SetTitle sets the "title" field.
func (m *ExaminationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExaminationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Examination entity.
// If the Examination object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExaminationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ExaminationMutation) ResetTitle() {
	m.title = nil
}

// SetSubject sets the "subject" field.
func (m *ExaminationMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ExaminationMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Examination entity.
// If the Examination object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExaminationMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *ExaminationMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[examination.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *ExaminationMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[examination.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *ExaminationMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, examination.FieldSubject)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExaminationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExaminationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Examination entity.
// If the Examination object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExaminationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExaminationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *ExaminationMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *ExaminationMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *ExaminationMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *ExaminationMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *ExaminationMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *ExaminationMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *ExaminationMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddScriptIDs adds the "scripts" edge to the AnswerScript entity by ids.
func (m *ExaminationMutation) AddScriptIDs(ids ...uuid.UUID) {
	if m.scripts == nil {
		m.scripts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scripts[ids[i]] = struct{}{}
	}
}

// ClearScripts clears the "scripts" edge to the AnswerScript entity.
func (m *ExaminationMutation) ClearScripts() {
	m.clearedscripts = true
}

// ScriptsCleared reports if the "scripts" edge to the AnswerScript entity was cleared.
func (m *ExaminationMutation) ScriptsCleared() bool {
	return m.clearedscripts
}

// RemoveScriptIDs removes the "scripts" edge to the AnswerScript entity by IDs.
func (m *ExaminationMutation) RemoveScriptIDs(ids ...uuid.UUID) {
	if m.removedscripts == nil {
		m.removedscripts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scripts, ids[i])
		m.removedscripts[ids[i]] = struct{}{}
	}
}

// RemovedScripts returns the removed IDs of the "scripts" edge to the AnswerScript entity.
func (m *ExaminationMutation) RemovedScriptsIDs() (ids []uuid.UUID) {
	for id := range m.removedscripts {
		ids = append(ids, id)
	}
	return
}

// ScriptsIDs returns the "scripts" edge IDs in the mutation.
func (m *ExaminationMutation) ScriptsIDs() (ids []uuid.UUID) {
	for id := range m.scripts {
		ids = append(ids, id)
	}
	return
}

// ResetScripts resets all changes to the "scripts" edge.
func (m *ExaminationMutation) ResetScripts() {
	m.scripts = nil
	m.clearedscripts = false
	m.removedscripts = nil
}

// Where appends a list predicates to the ExaminationMutation builder.
func (m *ExaminationMutation) Where(ps ...predicate.Examination) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExaminationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExaminationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Examination, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExaminationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExaminationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Examination).
func (m *ExaminationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExaminationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.school_id != nil {
		fields = append(fields, examination.FieldSchoolID)
	}
	if m.teacher_id != nil {
		fields = append(fields, examination.FieldTeacherID)
	}
	if m.title != nil {
		fields = append(fields, examination.FieldTitle)
	}
	if m.subject != nil {
		fields = append(fields, examination.FieldSubject)
	}
	if m.created_at != nil {
		fields = append(fields, examination.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExaminationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examination.FieldSchoolID:
		return m.SchoolID()
	case examination.FieldTeacherID:
		return m.TeacherID()
	case examination.FieldTitle:
		return m.Title()
	case examination.FieldSubject:
		return m.Subject()
	case examination.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExaminationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examination.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case examination.FieldTeacherID:
		return m.OldTeacherID(ctx)
	case examination.FieldTitle:
		return m.OldTitle(ctx)
	case examination.FieldSubject:
		return m.OldSubject(ctx)
	case examination.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Examination field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExaminationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examination.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case examination.FieldTeacherID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeacherID(v)
		return nil
	case examination.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case examination.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case examination.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Examination field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExaminationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExaminationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExaminationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Examination numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExaminationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(examination.FieldSubject) {
		fields = append(fields, examination.FieldSubject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExaminationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExaminationMutation) ClearField(name string) error {
	switch name {
	case examination.FieldSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown Examination nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExaminationMutation) ResetField(name string) error {
	switch name {
	case examination.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case examination.FieldTeacherID:
		m.ResetTeacherID()
		return nil
	case examination.FieldTitle:
		m.ResetTitle()
		return nil
	case examination.FieldSubject:
		m.ResetSubject()
		return nil
	case examination.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Examination field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExaminationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.questions != nil {
		edges = append(edges, examination.EdgeQuestions)
	}
	if m.scripts != nil {
		edges = append(edges, examination.EdgeScripts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExaminationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case examination.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case examination.EdgeScripts:
		ids := make([]ent.Value, 0, len(m.scripts))
		for id := range m.scripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExaminationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, examination.EdgeQuestions)
	}
	if m.removedscripts != nil {
		edges = append(edges, examination.EdgeScripts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExaminationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case examination.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case examination.EdgeScripts:
		ids := make([]ent.Value, 0, len(m.removedscripts))
		for id := range m.removedscripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExaminationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquestions {
		edges = append(edges, examination.EdgeQuestions)
	}
	if m.clearedscripts {
		edges = append(edges, examination.EdgeScripts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExaminationMutation) EdgeCleared(name string) bool {
	switch name {
	case examination.EdgeQuestions:
		return m.clearedquestions
	case examination.EdgeScripts:
		return m.clearedscripts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExaminationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Examination unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExaminationMutation) ResetEdge(name string) error {
	switch name {
	case examination.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case examination.EdgeScripts:
		m.ResetScripts()
		return nil
	}
	return fmt.Errorf("unknown Examination edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	question_number     *int
	addquestion_number  *int
	text                *string
	model_answer        *string
	model_answer_source *string
	marks               *float64
	addmarks            *float64
	tolerance           *float64
	addtolerance        *float64
	clearedFields       map[string]struct{}
	examination         *uuid.UUID
	clearedexamination  bool
	answers             map[uuid.UUID]struct{}
	removedanswers      map[uuid.UUID]struct{}
	clearedanswers      bool
	done                bool
	oldValue            func(context.Context) (*Question, error)
	predicates          []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExaminationID sets the "examination_id" field.
func (m *QuestionMutation) SetExaminationID(u uuid.UUID) {
	m.examination = &u
}

// ExaminationID returns the value of the "examination_id" field in the mutation.
func (m *QuestionMutation) ExaminationID() (r uuid.UUID, exists bool) {
	v := m.examination
	if v == nil {
		return
	}
	return *v, true
}

// OldExaminationID returns the old "examination_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExaminationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExaminationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExaminationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExaminationID: %w", err)
	}
	return oldValue.ExaminationID, nil
}

// ResetExaminationID resets all changes to the "examination_id" field.
func (m *QuestionMutation) ResetExaminationID() {
	m.examination = nil
}

// SetQuestionNumber sets the "question_number" field.
func (m *QuestionMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *QuestionMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *QuestionMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *QuestionMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *QuestionMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetModelAnswer sets the "model_answer" field.
func (m *QuestionMutation) SetModelAnswer(s string) {
	m.model_answer = &s
}

// ModelAnswer returns the value of the "model_answer" field in the mutation.
func (m *QuestionMutation) ModelAnswer() (r string, exists bool) {
	v := m.model_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldModelAnswer returns the old "model_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldModelAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelAnswer: %w", err)
	}
	return oldValue.ModelAnswer, nil
}

// ResetModelAnswer resets all changes to the "model_answer" field.
func (m *QuestionMutation) ResetModelAnswer() {
	m.model_answer = nil
}

// SetModelAnswerSource sets the "model_answer_source" field.
func (m *QuestionMutation) SetModelAnswerSource(s string) {
	m.model_answer_source = &s
}

// ModelAnswerSource returns the value of the "model_answer_source" field in the mutation.
func (m *QuestionMutation) ModelAnswerSource() (r string, exists bool) {
	v := m.model_answer_source
	if v == nil {
		return
	}
	return *v, true
}

// OldModelAnswerSource returns the old "model_answer_source" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldModelAnswerSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelAnswerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelAnswerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelAnswerSource: %w", err)
	}
	return oldValue.ModelAnswerSource, nil
}

// ResetModelAnswerSource resets all changes to the "model_answer_source" field.
func (m *QuestionMutation) ResetModelAnswerSource() {
	m.model_answer_source = nil
}

// SetMarks sets the "marks" field.
func (m *QuestionMutation) SetMarks(f float64) {
	m.marks = &f
	m.addmarks = nil
}

// Marks returns the value of the "marks" field in the mutation.
func (m *QuestionMutation) Marks() (r float64, exists bool) {
	v := m.marks
	if v == nil {
		return
	}
	return *v, true
}

// OldMarks returns the old "marks" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldMarks(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarks: %w", err)
	}
	return oldValue.Marks, nil
}

// AddMarks adds f to the "marks" field.
func (m *QuestionMutation) AddMarks(f float64) {
	if m.addmarks != nil {
		*m.addmarks += f
	} else {
		m.addmarks = &f
	}
}

// AddedMarks returns the value that was added to the "marks" field in this mutation.
func (m *QuestionMutation) AddedMarks() (r float64, exists bool) {
	v := m.addmarks
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarks resets all changes to the "marks" field.
func (m *QuestionMutation) ResetMarks() {
	m.marks = nil
	m.addmarks = nil
}

// SetTolerance sets the "tolerance" field.
func (m *QuestionMutation) SetTolerance(f float64) {
	m.tolerance = &f
	m.addtolerance = nil
}

// Tolerance returns the value of the "tolerance" field in the mutation.
func (m *QuestionMutation) Tolerance() (r float64, exists bool) {
	v := m.tolerance
	if v == nil {
		return
	}
	return *v, true
}

// OldTolerance returns the old "tolerance" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTolerance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTolerance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTolerance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTolerance: %w", err)
	}
	return oldValue.Tolerance, nil
}

// AddTolerance adds f to the "tolerance" field.
func (m *QuestionMutation) AddTolerance(f float64) {
	if m.addtolerance != nil {
		*m.addtolerance += f
	} else {
		m.addtolerance = &f
	}
}

// AddedTolerance returns the value that was added to the "tolerance" field in this mutation.
func (m *QuestionMutation) AddedTolerance() (r float64, exists bool) {
	v := m.addtolerance
	if v == nil {
		return
	}
	return *v, true
}

// ResetTolerance resets all changes to the "tolerance" field.
func (m *QuestionMutation) ResetTolerance() {
	m.tolerance = nil
	m.addtolerance = nil
}

// ClearExamination clears the "examination" edge to the Examination entity.
func (m *QuestionMutation) ClearExamination() {
	m.clearedexamination = true
	m.clearedFields[question.FieldExaminationID] = struct{}{}
}

// ExaminationCleared reports if the "examination" edge to the Examination entity was cleared.
func (m *QuestionMutation) ExaminationCleared() bool {
	return m.clearedexamination
}

// ExaminationIDs returns the "examination" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExaminationID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) ExaminationIDs() (ids []uuid.UUID) {
	if id := m.examination; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExamination resets all changes to the "examination" edge.
func (m *QuestionMutation) ResetExamination() {
	m.examination = nil
	m.clearedexamination = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *QuestionMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *QuestionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *QuestionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *QuestionMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *QuestionMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *QuestionMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *QuestionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.examination != nil {
		fields = append(fields, question.FieldExaminationID)
	}
	if m.question_number != nil {
		fields = append(fields, question.FieldQuestionNumber)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.model_answer != nil {
		fields = append(fields, question.FieldModelAnswer)
	}
	if m.model_answer_source != nil {
		fields = append(fields, question.FieldModelAnswerSource)
	}
	if m.marks != nil {
		fields = append(fields, question.FieldMarks)
	}
	if m.tolerance != nil {
		fields = append(fields, question.FieldTolerance)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldExaminationID:
		return m.ExaminationID()
	case question.FieldQuestionNumber:
		return m.QuestionNumber()
	case question.FieldText:
		return m.Text()
	case question.FieldModelAnswer:
		return m.ModelAnswer()
	case question.FieldModelAnswerSource:
		return m.ModelAnswerSource()
	case question.FieldMarks:
		return m.Marks()
	case question.FieldTolerance:
		return m.Tolerance()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldExaminationID:
		return m.OldExaminationID(ctx)
	case question.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldModelAnswer:
		return m.OldModelAnswer(ctx)
	case question.FieldModelAnswerSource:
		return m.OldModelAnswerSource(ctx)
	case question.FieldMarks:
		return m.OldMarks(ctx)
	case question.FieldTolerance:
		return m.OldTolerance(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldExaminationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExaminationID(v)
		return nil
	case question.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldModelAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelAnswer(v)
		return nil
	case question.FieldModelAnswerSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelAnswerSource(v)
		return nil
	case question.FieldMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarks(v)
		return nil
	case question.FieldTolerance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTolerance(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_number != nil {
		fields = append(fields, question.FieldQuestionNumber)
	}
	if m.addmarks != nil {
		fields = append(fields, question.FieldMarks)
	}
	if m.addtolerance != nil {
		fields = append(fields, question.FieldTolerance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	case question.FieldMarks:
		return m.AddedMarks()
	case question.FieldTolerance:
		return m.AddedTolerance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	case question.FieldMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarks(v)
		return nil
	case question.FieldTolerance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTolerance(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldExaminationID:
		m.ResetExaminationID()
		return nil
	case question.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldModelAnswer:
		m.ResetModelAnswer()
		return nil
	case question.FieldModelAnswerSource:
		m.ResetModelAnswerSource()
		return nil
	case question.FieldMarks:
		m.ResetMarks()
		return nil
	case question.FieldTolerance:
		m.ResetTolerance()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.examination != nil {
		edges = append(edges, question.EdgeExamination)
	}
	if m.answers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeExamination:
		if id := m.examination; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanswers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexamination {
		edges = append(edges, question.EdgeExamination)
	}
	if m.clearedanswers {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeExamination:
		return m.clearedexamination
	case question.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeExamination:
		m.ClearExamination()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeExamination:
		m.ResetExamination()
		return nil
	case question.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// StudentMutation represents an operation that mutates the Student nodes in the graph.
type StudentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	school_id      *uuid.UUID
	name           *string
	student_code   *string
	clearedFields  map[string]struct{}
	scripts        map[uuid.UUID]struct{}
	removedscripts map[uuid.UUID]struct{}
	clearedscripts bool
	done           bool
	oldValue       func(context.Context) (*Student, error)
	predicates     []predicate.Student
}

var _ ent.Mutation = (*StudentMutation)(nil)

// studentOption allows management of the mutation configuration using functional options.
type studentOption func(*StudentMutation)

// newStudentMutation creates new mutation for the Student entity.
func newStudentMutation(c config, op Op, opts ...studentOption) *StudentMutation {
	m := &StudentMutation{
		config:        c,
		op:            op,
		typ:           TypeStudent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentID sets the ID field of the mutation.
func withStudentID(id uuid.UUID) studentOption {
	return func(m *StudentMutation) {
		var (
			err   error
			once  sync.Once
			value *Student
		)
		m.oldValue = func(ctx context.Context) (*Student, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Student.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudent sets the old Student of the mutation.
func withStudent(node *Student) studentOption {
	return func(m *StudentMutation) {
		m.oldValue = func(context.Context) (*Student, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Student entities.
func (m *StudentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Student.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSchoolID sets the "school_id" field.
func (m *StudentMutation) SetSchoolID(u uuid.UUID) {
	m.school_id = &u
}

// SchoolID returns the value of the "school_id" field in the mutation.
func (m *StudentMutation) SchoolID() (r uuid.UUID, exists bool) {
	v := m.school_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolID returns the old "school_id" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldSchoolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolID: %w", err)
	}
	return oldValue.SchoolID, nil
}

// ResetSchoolID resets all changes to the "school_id" field.
func (m *StudentMutation) ResetSchoolID() {
	m.school_id = nil
}

// SetName sets the "name" field.
func (m *StudentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StudentMutation) ResetName() {
	m.name = nil
}

// SetStudentCode sets the "student_code" field.
func (m *StudentMutation) SetStudentCode(s string) {
	m.student_code = &s
}

// StudentCode returns the value of the "student_code" field in the mutation.
func (m *StudentMutation) StudentCode() (r string, exists bool) {
	v := m.student_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentCode returns the old "student_code" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldStudentCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentCode: %w", err)
	}
	return oldValue.StudentCode, nil
}

// ResetStudentCode resets all changes to the "student_code" field.
func (m *StudentMutation) ResetStudentCode() {
	m.student_code = nil
}

// AddScriptIDs adds the "scripts" edge to the AnswerScript entity by ids.
func (m *StudentMutation) AddScriptIDs(ids ...uuid.UUID) {
	if m.scripts == nil {
		m.scripts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scripts[ids[i]] = struct{}{}
	}
}

// ClearScripts clears the "scripts" edge to the AnswerScript entity.
func (m *StudentMutation) ClearScripts() {
	m.clearedscripts = true
}

// ScriptsCleared reports if the "scripts" edge to the AnswerScript entity was cleared.
func (m *StudentMutation) ScriptsCleared() bool {
	return m.clearedscripts
}

// RemoveScriptIDs removes the "scripts" edge to the AnswerScript entity by IDs.
func (m *StudentMutation) RemoveScriptIDs(ids ...uuid.UUID) {
	if m.removedscripts == nil {
		m.removedscripts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scripts, ids[i])
		m.removedscripts[ids[i]] = struct{}{}
	}
}

// RemovedScripts returns the removed IDs of the "scripts" edge to the AnswerScript entity.
func (m *StudentMutation) RemovedScriptsIDs() (ids []uuid.UUID) {
	for id := range m.removedscripts {
		ids = append(ids, id)
	}
	return
}

// ScriptsIDs returns the "scripts" edge IDs in the mutation.
func (m *StudentMutation) ScriptsIDs() (ids []uuid.UUID) {
	for id := range m.scripts {
		ids = append(ids, id)
	}
	return
}

// ResetScripts resets all changes to the "scripts" edge.
func (m *StudentMutation) ResetScripts() {
	m.scripts = nil
	m.clearedscripts = false
	m.removedscripts = nil
}

// Where appends a list predicates to the StudentMutation builder.
func (m *StudentMutation) Where(ps ...predicate.Student) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Student, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Student).
func (m *StudentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.school_id != nil {
		fields = append(fields, student.FieldSchoolID)
	}
	if m.name != nil {
		fields = append(fields, student.FieldName)
	}
	if m.student_code != nil {
		fields = append(fields, student.FieldStudentCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case student.FieldSchoolID:
		return m.SchoolID()
	case student.FieldName:
		return m.Name()
	case student.FieldStudentCode:
		return m.StudentCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case student.FieldSchoolID:
		return m.OldSchoolID(ctx)
	case student.FieldName:
		return m.OldName(ctx)
	case student.FieldStudentCode:
		return m.OldStudentCode(ctx)
	}
	return nil, fmt.Errorf("unknown Student field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case student.FieldSchoolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolID(v)
		return nil
	case student.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case student.FieldStudentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentCode(v)
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Student numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Student nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentMutation) ResetField(name string) error {
	switch name {
	case student.FieldSchoolID:
		m.ResetSchoolID()
		return nil
	case student.FieldName:
		m.ResetName()
		return nil
	case student.FieldStudentCode:
		m.ResetStudentCode()
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scripts != nil {
		edges = append(edges, student.EdgeScripts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case student.EdgeScripts:
		ids := make([]ent.Value, 0, len(m.scripts))
		for id := range m.scripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedscripts != nil {
		edges = append(edges, student.EdgeScripts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case student.EdgeScripts:
		ids := make([]ent.Value, 0, len(m.removedscripts))
		for id := range m.removedscripts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscripts {
		edges = append(edges, student.EdgeScripts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentMutation) EdgeCleared(name string) bool {
	switch name {
	case student.EdgeScripts:
		return m.clearedscripts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Student unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentMutation) ResetEdge(name string) error {
	switch name {
	case student.EdgeScripts:
		m.ResetScripts()
		return nil
	}
	return fmt.Errorf("unknown Student edge %s", name)
}
