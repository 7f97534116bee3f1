// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnswerScriptID sets the "answer_script_id" field.
func (_u *AnswerUpdate) SetAnswerScriptID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetAnswerScriptID(v)
	return _u
}

// SetNillableAnswerScriptID sets the "answer_script_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAnswerScriptID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetAnswerScriptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdate) SetQuestionID(v uuid.UUID) *AnswerUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionID(v *uuid.UUID) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *AnswerUpdate) SetExtractedText(v string) *AnswerUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableExtractedText(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetSegmentationMethod sets the "segmentation_method" field.
func (_u *AnswerUpdate) SetSegmentationMethod(v string) *AnswerUpdate {
	_u.mutation.SetSegmentationMethod(v)
	return _u
}

// SetNillableSegmentationMethod sets the "segmentation_method" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSegmentationMethod(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetSegmentationMethod(*v)
	}
	return _u
}

// ClearSegmentationMethod clears the value of the "segmentation_method" field.
func (_u *AnswerUpdate) ClearSegmentationMethod() *AnswerUpdate {
	_u.mutation.ClearSegmentationMethod()
	return _u
}

// SetAssignedGrade sets the "assigned_grade" field.
func (_u *AnswerUpdate) SetAssignedGrade(v float64) *AnswerUpdate {
	_u.mutation.ResetAssignedGrade()
	_u.mutation.SetAssignedGrade(v)
	return _u
}

// SetNillableAssignedGrade sets the "assigned_grade" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAssignedGrade(v *float64) *AnswerUpdate {
	if v != nil {
		_u.SetAssignedGrade(*v)
	}
	return _u
}

// AddAssignedGrade adds value to the "assigned_grade" field.
func (_u *AnswerUpdate) AddAssignedGrade(v float64) *AnswerUpdate {
	_u.mutation.AddAssignedGrade(v)
	return _u
}

// ClearAssignedGrade clears the value of the "assigned_grade" field.
func (_u *AnswerUpdate) ClearAssignedGrade() *AnswerUpdate {
	_u.mutation.ClearAssignedGrade()
	return _u
}

// SetManualGrade sets the "manual_grade" field.
func (_u *AnswerUpdate) SetManualGrade(v float64) *AnswerUpdate {
	_u.mutation.ResetManualGrade()
	_u.mutation.SetManualGrade(v)
	return _u
}

// SetNillableManualGrade sets the "manual_grade" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableManualGrade(v *float64) *AnswerUpdate {
	if v != nil {
		_u.SetManualGrade(*v)
	}
	return _u
}

// AddManualGrade adds value to the "manual_grade" field.
func (_u *AnswerUpdate) AddManualGrade(v float64) *AnswerUpdate {
	_u.mutation.AddManualGrade(v)
	return _u
}

// ClearManualGrade clears the value of the "manual_grade" field.
func (_u *AnswerUpdate) ClearManualGrade() *AnswerUpdate {
	_u.mutation.ClearManualGrade()
	return _u
}

// SetIsOverridden sets the "is_overridden" field.
func (_u *AnswerUpdate) SetIsOverridden(v bool) *AnswerUpdate {
	_u.mutation.SetIsOverridden(v)
	return _u
}

// SetNillableIsOverridden sets the "is_overridden" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableIsOverridden(v *bool) *AnswerUpdate {
	if v != nil {
		_u.SetIsOverridden(*v)
	}
	return _u
}

// SetOverrideJustification sets the "override_justification" field.
func (_u *AnswerUpdate) SetOverrideJustification(v string) *AnswerUpdate {
	_u.mutation.SetOverrideJustification(v)
	return _u
}

// SetNillableOverrideJustification sets the "override_justification" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableOverrideJustification(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetOverrideJustification(*v)
	}
	return _u
}

// ClearOverrideJustification clears the value of the "override_justification" field.
func (_u *AnswerUpdate) ClearOverrideJustification() *AnswerUpdate {
	_u.mutation.ClearOverrideJustification()
	return _u
}

// SetLlmExplanation sets the "llm_explanation" field.
func (_u *AnswerUpdate) SetLlmExplanation(v string) *AnswerUpdate {
	_u.mutation.SetLlmExplanation(v)
	return _u
}

// SetNillableLlmExplanation sets the "llm_explanation" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableLlmExplanation(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetLlmExplanation(*v)
	}
	return _u
}

// ClearLlmExplanation clears the value of the "llm_explanation" field.
func (_u *AnswerUpdate) ClearLlmExplanation() *AnswerUpdate {
	_u.mutation.ClearLlmExplanation()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *AnswerUpdate) SetFlags(v []string) *AnswerUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *AnswerUpdate) AppendFlags(v []string) *AnswerUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *AnswerUpdate) ClearFlags() *AnswerUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetSpatialLocation sets the "spatial_location" field.
func (_u *AnswerUpdate) SetSpatialLocation(v json.RawMessage) *AnswerUpdate {
	_u.mutation.SetSpatialLocation(v)
	return _u
}

// AppendSpatialLocation appends value to the "spatial_location" field.
func (_u *AnswerUpdate) AppendSpatialLocation(v json.RawMessage) *AnswerUpdate {
	_u.mutation.AppendSpatialLocation(v)
	return _u
}

// ClearSpatialLocation clears the value of the "spatial_location" field.
func (_u *AnswerUpdate) ClearSpatialLocation() *AnswerUpdate {
	_u.mutation.ClearSpatialLocation()
	return _u
}

// SetSuperseded sets the "superseded" field.
func (_u *AnswerUpdate) SetSuperseded(v bool) *AnswerUpdate {
	_u.mutation.SetSuperseded(v)
	return _u
}

// SetNillableSuperseded sets the "superseded" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSuperseded(v *bool) *AnswerUpdate {
	if v != nil {
		_u.SetSuperseded(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnswerUpdate) SetUpdatedAt(v time.Time) *AnswerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScriptID sets the "script" edge to the AnswerScript entity by ID.
func (_u *AnswerUpdate) SetScriptID(id uuid.UUID) *AnswerUpdate {
	_u.mutation.SetScriptID(id)
	return _u
}

// SetScript sets the "script" edge to the AnswerScript entity.
func (_u *AnswerUpdate) SetScript(v *AnswerScript) *AnswerUpdate {
	return _u.SetScriptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdate) SetQuestion(v *Question) *AnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearScript clears the "script" edge to the AnswerScript entity.
func (_u *AnswerUpdate) ClearScript() *AnswerUpdate {
	_u.mutation.ClearScript()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdate) ClearQuestion() *AnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnswerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := answer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.SegmentationMethod(); ok {
		if err := answer.SegmentationMethodValidator(v); err != nil {
			return &ValidationError{Name: "segmentation_method", err: fmt.Errorf(`ent: validator failed for field "Answer.segmentation_method": %w`, err)}
		}
	}
	if _u.mutation.ScriptCleared() && len(_u.mutation.ScriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.script"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(answer.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.SegmentationConfidenceCleared() {
		_spec.ClearField(answer.FieldSegmentationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SegmentationMethod(); ok {
		_spec.SetField(answer.FieldSegmentationMethod, field.TypeString, value)
	}
	if _u.mutation.SegmentationMethodCleared() {
		_spec.ClearField(answer.FieldSegmentationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedGrade(); ok {
		_spec.SetField(answer.FieldAssignedGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAssignedGrade(); ok {
		_spec.AddField(answer.FieldAssignedGrade, field.TypeFloat64, value)
	}
	if _u.mutation.AssignedGradeCleared() {
		_spec.ClearField(answer.FieldAssignedGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ManualGrade(); ok {
		_spec.SetField(answer.FieldManualGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedManualGrade(); ok {
		_spec.AddField(answer.FieldManualGrade, field.TypeFloat64, value)
	}
	if _u.mutation.ManualGradeCleared() {
		_spec.ClearField(answer.FieldManualGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOverridden(); ok {
		_spec.SetField(answer.FieldIsOverridden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OverrideJustification(); ok {
		_spec.SetField(answer.FieldOverrideJustification, field.TypeString, value)
	}
	if _u.mutation.OverrideJustificationCleared() {
		_spec.ClearField(answer.FieldOverrideJustification, field.TypeString)
	}
	if value, ok := _u.mutation.LlmExplanation(); ok {
		_spec.SetField(answer.FieldLlmExplanation, field.TypeString, value)
	}
	if _u.mutation.LlmExplanationCleared() {
		_spec.ClearField(answer.FieldLlmExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(answer.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(answer.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpatialLocation(); ok {
		_spec.SetField(answer.FieldSpatialLocation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpatialLocation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldSpatialLocation, value)
		})
	}
	if _u.mutation.SpatialLocationCleared() {
		_spec.ClearField(answer.FieldSpatialLocation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Superseded(); ok {
		_spec.SetField(answer.FieldSuperseded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScriptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.ScriptTable,
			Columns: []string{answer.ScriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.ScriptTable,
			Columns: []string{answer.ScriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetAnswerScriptID sets the "answer_script_id" field.
func (_u *AnswerUpdateOne) SetAnswerScriptID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetAnswerScriptID(v)
	return _u
}

// SetNillableAnswerScriptID sets the "answer_script_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAnswerScriptID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetAnswerScriptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdateOne) SetQuestionID(v uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionID(v *uuid.UUID) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *AnswerUpdateOne) SetExtractedText(v string) *AnswerUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableExtractedText(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetSegmentationMethod sets the "segmentation_method" field.
func (_u *AnswerUpdateOne) SetSegmentationMethod(v string) *AnswerUpdateOne {
	_u.mutation.SetSegmentationMethod(v)
	return _u
}

// SetNillableSegmentationMethod sets the "segmentation_method" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSegmentationMethod(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetSegmentationMethod(*v)
	}
	return _u
}

// ClearSegmentationMethod clears the value of the "segmentation_method" field.
func (_u *AnswerUpdateOne) ClearSegmentationMethod() *AnswerUpdateOne {
	_u.mutation.ClearSegmentationMethod()
	return _u
}

// SetAssignedGrade sets the "assigned_grade" field.
func (_u *AnswerUpdateOne) SetAssignedGrade(v float64) *AnswerUpdateOne {
	_u.mutation.ResetAssignedGrade()
	_u.mutation.SetAssignedGrade(v)
	return _u
}

// SetNillableAssignedGrade sets the "assigned_grade" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAssignedGrade(v *float64) *AnswerUpdateOne {
	if v != nil {
		_u.SetAssignedGrade(*v)
	}
	return _u
}

// AddAssignedGrade adds value to the "assigned_grade" field.
func (_u *AnswerUpdateOne) AddAssignedGrade(v float64) *AnswerUpdateOne {
	_u.mutation.AddAssignedGrade(v)
	return _u
}

// ClearAssignedGrade clears the value of the "assigned_grade" field.
func (_u *AnswerUpdateOne) ClearAssignedGrade() *AnswerUpdateOne {
	_u.mutation.ClearAssignedGrade()
	return _u
}

// SetManualGrade sets the "manual_grade" field.
func (_u *AnswerUpdateOne) SetManualGrade(v float64) *AnswerUpdateOne {
	_u.mutation.ResetManualGrade()
	_u.mutation.SetManualGrade(v)
	return _u
}

// SetNillableManualGrade sets the "manual_grade" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableManualGrade(v *float64) *AnswerUpdateOne {
	if v != nil {
		_u.SetManualGrade(*v)
	}
	return _u
}

// AddManualGrade adds value to the "manual_grade" field.
func (_u *AnswerUpdateOne) AddManualGrade(v float64) *AnswerUpdateOne {
	_u.mutation.AddManualGrade(v)
	return _u
}

// ClearManualGrade clears the value of the "manual_grade" field.
func (_u *AnswerUpdateOne) ClearManualGrade() *AnswerUpdateOne {
	_u.mutation.ClearManualGrade()
	return _u
}

// SetIsOverridden sets the "is_overridden" field.
func (_u *AnswerUpdateOne) SetIsOverridden(v bool) *AnswerUpdateOne {
	_u.mutation.SetIsOverridden(v)
	return _u
}

// SetNillableIsOverridden sets the "is_overridden" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableIsOverridden(v *bool) *AnswerUpdateOne {
	if v != nil {
		_u.SetIsOverridden(*v)
	}
	return _u
}

// SetOverrideJustification sets the "override_justification" field.
func (_u *AnswerUpdateOne) SetOverrideJustification(v string) *AnswerUpdateOne {
	_u.mutation.SetOverrideJustification(v)
	return _u
}

// SetNillableOverrideJustification sets the "override_justification" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableOverrideJustification(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetOverrideJustification(*v)
	}
	return _u
}

// ClearOverrideJustification clears the value of the "override_justification" field.
func (_u *AnswerUpdateOne) ClearOverrideJustification() *AnswerUpdateOne {
	_u.mutation.ClearOverrideJustification()
	return _u
}

// SetLlmExplanation sets the "llm_explanation" field.
func (_u *AnswerUpdateOne) SetLlmExplanation(v string) *AnswerUpdateOne {
	_u.mutation.SetLlmExplanation(v)
	return _u
}

// SetNillableLlmExplanation sets the "llm_explanation" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableLlmExplanation(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetLlmExplanation(*v)
	}
	return _u
}

// ClearLlmExplanation clears the value of the "llm_explanation" field.
func (_u *AnswerUpdateOne) ClearLlmExplanation() *AnswerUpdateOne {
	_u.mutation.ClearLlmExplanation()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *AnswerUpdateOne) SetFlags(v []string) *AnswerUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *AnswerUpdateOne) AppendFlags(v []string) *AnswerUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *AnswerUpdateOne) ClearFlags() *AnswerUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetSpatialLocation sets the "spatial_location" field.
func (_u *AnswerUpdateOne) SetSpatialLocation(v json.RawMessage) *AnswerUpdateOne {
	_u.mutation.SetSpatialLocation(v)
	return _u
}

// AppendSpatialLocation appends value to the "spatial_location" field.
func (_u *AnswerUpdateOne) AppendSpatialLocation(v json.RawMessage) *AnswerUpdateOne {
	_u.mutation.AppendSpatialLocation(v)
	return _u
}

// ClearSpatialLocation clears the value of the "spatial_location" field.
func (_u *AnswerUpdateOne) ClearSpatialLocation() *AnswerUpdateOne {
	_u.mutation.ClearSpatialLocation()
	return _u
}

// SetSuperseded sets the "superseded" field.
func (_u *AnswerUpdateOne) SetSuperseded(v bool) *AnswerUpdateOne {
	_u.mutation.SetSuperseded(v)
	return _u
}

// SetNillableSuperseded sets the "superseded" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSuperseded(v *bool) *AnswerUpdateOne {
	if v != nil {
		_u.SetSuperseded(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnswerUpdateOne) SetUpdatedAt(v time.Time) *AnswerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetScriptID sets the "script" edge to the AnswerScript entity by ID.
func (_u *AnswerUpdateOne) SetScriptID(id uuid.UUID) *AnswerUpdateOne {
	_u.mutation.SetScriptID(id)
	return _u
}

// SetScript sets the "script" edge to the AnswerScript entity.
func (_u *AnswerUpdateOne) SetScript(v *AnswerScript) *AnswerUpdateOne {
	return _u.SetScriptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) SetQuestion(v *Question) *AnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearScript clears the "script" edge to the AnswerScript entity.
func (_u *AnswerUpdateOne) ClearScript() *AnswerUpdateOne {
	_u.mutation.ClearScript()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) ClearQuestion() *AnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnswerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := answer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.SegmentationMethod(); ok {
		if err := answer.SegmentationMethodValidator(v); err != nil {
			return &ValidationError{Name: "segmentation_method", err: fmt.Errorf(`ent: validator failed for field "Answer.segmentation_method": %w`, err)}
		}
	}
	if _u.mutation.ScriptCleared() && len(_u.mutation.ScriptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.script"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(answer.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.SegmentationConfidenceCleared() {
		_spec.ClearField(answer.FieldSegmentationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SegmentationMethod(); ok {
		_spec.SetField(answer.FieldSegmentationMethod, field.TypeString, value)
	}
	if _u.mutation.SegmentationMethodCleared() {
		_spec.ClearField(answer.FieldSegmentationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedGrade(); ok {
		_spec.SetField(answer.FieldAssignedGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAssignedGrade(); ok {
		_spec.AddField(answer.FieldAssignedGrade, field.TypeFloat64, value)
	}
	if _u.mutation.AssignedGradeCleared() {
		_spec.ClearField(answer.FieldAssignedGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ManualGrade(); ok {
		_spec.SetField(answer.FieldManualGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedManualGrade(); ok {
		_spec.AddField(answer.FieldManualGrade, field.TypeFloat64, value)
	}
	if _u.mutation.ManualGradeCleared() {
		_spec.ClearField(answer.FieldManualGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsOverridden(); ok {
		_spec.SetField(answer.FieldIsOverridden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OverrideJustification(); ok {
		_spec.SetField(answer.FieldOverrideJustification, field.TypeString, value)
	}
	if _u.mutation.OverrideJustificationCleared() {
		_spec.ClearField(answer.FieldOverrideJustification, field.TypeString)
	}
	if value, ok := _u.mutation.LlmExplanation(); ok {
		_spec.SetField(answer.FieldLlmExplanation, field.TypeString, value)
	}
	if _u.mutation.LlmExplanationCleared() {
		_spec.ClearField(answer.FieldLlmExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(answer.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(answer.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpatialLocation(); ok {
		_spec.SetField(answer.FieldSpatialLocation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpatialLocation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answer.FieldSpatialLocation, value)
		})
	}
	if _u.mutation.SpatialLocationCleared() {
		_spec.ClearField(answer.FieldSpatialLocation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Superseded(); ok {
		_spec.SetField(answer.FieldSuperseded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScriptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.ScriptTable,
			Columns: []string{answer.ScriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.ScriptTable,
			Columns: []string{answer.ScriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
