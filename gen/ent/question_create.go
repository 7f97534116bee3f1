// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetExaminationID sets the "examination_id" field.
func (_c *QuestionCreate) SetExaminationID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetExaminationID(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *QuestionCreate) SetQuestionNumber(v int) *QuestionCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetModelAnswer sets the "model_answer" field.
func (_c *QuestionCreate) SetModelAnswer(v string) *QuestionCreate {
	_c.mutation.SetModelAnswer(v)
	return _c
}

// SetModelAnswerSource sets the "model_answer_source" field.
func (_c *QuestionCreate) SetModelAnswerSource(v string) *QuestionCreate {
	_c.mutation.SetModelAnswerSource(v)
	return _c
}

// SetNillableModelAnswerSource sets the "model_answer_source" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableModelAnswerSource(v *string) *QuestionCreate {
	if v != nil {
		_c.SetModelAnswerSource(*v)
	}
	return _c
}

// SetMarks sets the "marks" field.
func (_c *QuestionCreate) SetMarks(v float64) *QuestionCreate {
	_c.mutation.SetMarks(v)
	return _c
}

// SetTolerance sets the "tolerance" field.
func (_c *QuestionCreate) SetTolerance(v float64) *QuestionCreate {
	_c.mutation.SetTolerance(v)
	return _c
}

// SetNillableTolerance sets the "tolerance" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTolerance(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetTolerance(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExamination sets the "examination" edge to the Examination entity.
func (_c *QuestionCreate) SetExamination(v *Examination) *QuestionCreate {
	return _c.SetExaminationID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *QuestionCreate) AddAnswerIDs(ids ...uuid.UUID) *QuestionCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *QuestionCreate) AddAnswers(v ...*Answer) *QuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.ModelAnswerSource(); !ok {
		v := question.DefaultModelAnswerSource
		_c.mutation.SetModelAnswerSource(v)
	}
	if _, ok := _c.mutation.Tolerance(); !ok {
		v := question.DefaultTolerance
		_c.mutation.SetTolerance(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := question.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.ExaminationID(); !ok {
		return &ValidationError{Name: "examination_id", err: errors.New(`ent: missing required field "Question.examination_id"`)}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "Question.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := question.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "Question.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if _, ok := _c.mutation.ModelAnswer(); !ok {
		return &ValidationError{Name: "model_answer", err: errors.New(`ent: missing required field "Question.model_answer"`)}
	}
	if _, ok := _c.mutation.ModelAnswerSource(); !ok {
		return &ValidationError{Name: "model_answer_source", err: errors.New(`ent: missing required field "Question.model_answer_source"`)}
	}
	if v, ok := _c.mutation.ModelAnswerSource(); ok {
		if err := question.ModelAnswerSourceValidator(v); err != nil {
			return &ValidationError{Name: "model_answer_source", err: fmt.Errorf(`ent: validator failed for field "Question.model_answer_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Marks(); !ok {
		return &ValidationError{Name: "marks", err: errors.New(`ent: missing required field "Question.marks"`)}
	}
	if v, ok := _c.mutation.Marks(); ok {
		if err := question.MarksValidator(v); err != nil {
			return &ValidationError{Name: "marks", err: fmt.Errorf(`ent: validator failed for field "Question.marks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tolerance(); !ok {
		return &ValidationError{Name: "tolerance", err: errors.New(`ent: missing required field "Question.tolerance"`)}
	}
	if v, ok := _c.mutation.Tolerance(); ok {
		if err := question.ToleranceValidator(v); err != nil {
			return &ValidationError{Name: "tolerance", err: fmt.Errorf(`ent: validator failed for field "Question.tolerance": %w`, err)}
		}
	}
	if len(_c.mutation.ExaminationIDs()) == 0 {
		return &ValidationError{Name: "examination", err: errors.New(`ent: missing required edge "Question.examination"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(question.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ModelAnswer(); ok {
		_spec.SetField(question.FieldModelAnswer, field.TypeString, value)
		_node.ModelAnswer = value
	}
	if value, ok := _c.mutation.ModelAnswerSource(); ok {
		_spec.SetField(question.FieldModelAnswerSource, field.TypeString, value)
		_node.ModelAnswerSource = value
	}
	if value, ok := _c.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeFloat64, value)
		_node.Marks = value
	}
	if value, ok := _c.mutation.Tolerance(); ok {
		_spec.SetField(question.FieldTolerance, field.TypeFloat64, value)
		_node.Tolerance = value
	}
	if nodes := _c.mutation.ExaminationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.ExaminationTable,
			Columns: []string{question.ExaminationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examination.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExaminationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.AnswersTable,
			Columns: []string{question.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
