// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetAnswerScriptID sets the "answer_script_id" field.
func (_c *AnswerCreate) SetAnswerScriptID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetAnswerScriptID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerCreate) SetQuestionID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *AnswerCreate) SetExtractedText(v string) *AnswerCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetSegmentationConfidence sets the "segmentation_confidence" field.
func (_c *AnswerCreate) SetSegmentationConfidence(v float64) *AnswerCreate {
	_c.mutation.SetSegmentationConfidence(v)
	return _c
}

// SetNillableSegmentationConfidence sets the "segmentation_confidence" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableSegmentationConfidence(v *float64) *AnswerCreate {
	if v != nil {
		_c.SetSegmentationConfidence(*v)
	}
	return _c
}

// SetSegmentationMethod sets the "segmentation_method" field.
func (_c *AnswerCreate) SetSegmentationMethod(v string) *AnswerCreate {
	_c.mutation.SetSegmentationMethod(v)
	return _c
}

// SetNillableSegmentationMethod sets the "segmentation_method" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableSegmentationMethod(v *string) *AnswerCreate {
	if v != nil {
		_c.SetSegmentationMethod(*v)
	}
	return _c
}

// SetAssignedGrade sets the "assigned_grade" field.
func (_c *AnswerCreate) SetAssignedGrade(v float64) *AnswerCreate {
	_c.mutation.SetAssignedGrade(v)
	return _c
}

// SetNillableAssignedGrade sets the "assigned_grade" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableAssignedGrade(v *float64) *AnswerCreate {
	if v != nil {
		_c.SetAssignedGrade(*v)
	}
	return _c
}

// SetManualGrade sets the "manual_grade" field.
func (_c *AnswerCreate) SetManualGrade(v float64) *AnswerCreate {
	_c.mutation.SetManualGrade(v)
	return _c
}

// SetNillableManualGrade sets the "manual_grade" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableManualGrade(v *float64) *AnswerCreate {
	if v != nil {
		_c.SetManualGrade(*v)
	}
	return _c
}

// SetIsOverridden sets the "is_overridden" field.
func (_c *AnswerCreate) SetIsOverridden(v bool) *AnswerCreate {
	_c.mutation.SetIsOverridden(v)
	return _c
}

// SetNillableIsOverridden sets the "is_overridden" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableIsOverridden(v *bool) *AnswerCreate {
	if v != nil {
		_c.SetIsOverridden(*v)
	}
	return _c
}

// SetOverrideJustification sets the "override_justification" field.
func (_c *AnswerCreate) SetOverrideJustification(v string) *AnswerCreate {
	_c.mutation.SetOverrideJustification(v)
	return _c
}

// SetNillableOverrideJustification sets the "override_justification" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableOverrideJustification(v *string) *AnswerCreate {
	if v != nil {
		_c.SetOverrideJustification(*v)
	}
	return _c
}

// SetLlmExplanation sets the "llm_explanation" field.
func (_c *AnswerCreate) SetLlmExplanation(v string) *AnswerCreate {
	_c.mutation.SetLlmExplanation(v)
	return _c
}

// SetNillableLlmExplanation sets the "llm_explanation" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableLlmExplanation(v *string) *AnswerCreate {
	if v != nil {
		_c.SetLlmExplanation(*v)
	}
	return _c
}

// SetFlags sets the "flags" field.
func (_c *AnswerCreate) SetFlags(v []string) *AnswerCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetSpatialLocation sets the "spatial_location" field.
func (_c *AnswerCreate) SetSpatialLocation(v json.RawMessage) *AnswerCreate {
	_c.mutation.SetSpatialLocation(v)
	return _c
}

// SetSuperseded sets the "superseded" field.
func (_c *AnswerCreate) SetSuperseded(v bool) *AnswerCreate {
	_c.mutation.SetSuperseded(v)
	return _c
}

// SetNillableSuperseded sets the "superseded" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableSuperseded(v *bool) *AnswerCreate {
	if v != nil {
		_c.SetSuperseded(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerCreate) SetCreatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCreatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnswerCreate) SetUpdatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableUpdatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnswerCreate) SetID(v uuid.UUID) *AnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableID(v *uuid.UUID) *AnswerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetScriptID sets the "script" edge to the AnswerScript entity by ID.
func (_c *AnswerCreate) SetScriptID(id uuid.UUID) *AnswerCreate {
	_c.mutation.SetScriptID(id)
	return _c
}

// SetScript sets the "script" edge to the AnswerScript entity.
func (_c *AnswerCreate) SetScript(v *AnswerScript) *AnswerCreate {
	return _c.SetScriptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *AnswerCreate) SetQuestion(v *Question) *AnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.IsOverridden(); !ok {
		v := answer.DefaultIsOverridden
		_c.mutation.SetIsOverridden(v)
	}
	if _, ok := _c.mutation.Superseded(); !ok {
		v := answer.DefaultSuperseded
		_c.mutation.SetSuperseded(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := answer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := answer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.AnswerScriptID(); !ok {
		return &ValidationError{Name: "answer_script_id", err: errors.New(`ent: missing required field "Answer.answer_script_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Answer.question_id"`)}
	}
	if _, ok := _c.mutation.ExtractedText(); !ok {
		return &ValidationError{Name: "extracted_text", err: errors.New(`ent: missing required field "Answer.extracted_text"`)}
	}
	if v, ok := _c.mutation.SegmentationConfidence(); ok {
		if err := answer.SegmentationConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "segmentation_confidence", err: fmt.Errorf(`ent: validator failed for field "Answer.segmentation_confidence": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SegmentationMethod(); ok {
		if err := answer.SegmentationMethodValidator(v); err != nil {
			return &ValidationError{Name: "segmentation_method", err: fmt.Errorf(`ent: validator failed for field "Answer.segmentation_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOverridden(); !ok {
		return &ValidationError{Name: "is_overridden", err: errors.New(`ent: missing required field "Answer.is_overridden"`)}
	}
	if _, ok := _c.mutation.Superseded(); !ok {
		return &ValidationError{Name: "superseded", err: errors.New(`ent: missing required field "Answer.superseded"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Answer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Answer.updated_at"`)}
	}
	if len(_c.mutation.ScriptIDs()) == 0 {
		return &ValidationError{Name: "script", err: errors.New(`ent: missing required edge "Answer.script"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "Answer.question"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(answer.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = value
	}
	if value, ok := _c.mutation.SegmentationConfidence(); ok {
		_spec.SetField(answer.FieldSegmentationConfidence, field.TypeFloat64, value)
		_node.SegmentationConfidence = &value
	}
	if value, ok := _c.mutation.SegmentationMethod(); ok {
		_spec.SetField(answer.FieldSegmentationMethod, field.TypeString, value)
		_node.SegmentationMethod = &value
	}
	if value, ok := _c.mutation.AssignedGrade(); ok {
		_spec.SetField(answer.FieldAssignedGrade, field.TypeFloat64, value)
		_node.AssignedGrade = &value
	}
	if value, ok := _c.mutation.ManualGrade(); ok {
		_spec.SetField(answer.FieldManualGrade, field.TypeFloat64, value)
		_node.ManualGrade = &value
	}
	if value, ok := _c.mutation.IsOverridden(); ok {
		_spec.SetField(answer.FieldIsOverridden, field.TypeBool, value)
		_node.IsOverridden = value
	}
	if value, ok := _c.mutation.OverrideJustification(); ok {
		_spec.SetField(answer.FieldOverrideJustification, field.TypeString, value)
		_node.OverrideJustification = &value
	}
	if value, ok := _c.mutation.LlmExplanation(); ok {
		_spec.SetField(answer.FieldLlmExplanation, field.TypeString, value)
		_node.LlmExplanation = &value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(answer.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.SpatialLocation(); ok {
		_spec.SetField(answer.FieldSpatialLocation, field.TypeJSON, value)
		_node.SpatialLocation = value
	}
	if value, ok := _c.mutation.Superseded(); ok {
		_spec.SetField(answer.FieldSuperseded, field.TypeBool, value)
		_node.Superseded = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(answer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ScriptIDs(); len(nodes) > 0 {
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
		_node.AnswerScriptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
