// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// ExaminationCreate is the builder for creating a Examination entity.
type ExaminationCreate struct {
	config
	mutation *ExaminationMutation
	hooks    []Hook
}

// SetSchoolID sets the "school_id" field.
func (_c *ExaminationCreate) SetSchoolID(v uuid.UUID) *ExaminationCreate {
	_c.mutation.SetSchoolID(v)
	return _c
}

// SetTeacherID sets the "teacher_id" field.
func (_c *ExaminationCreate) SetTeacherID(v uuid.UUID) *ExaminationCreate {
	_c.mutation.SetTeacherID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ExaminationCreate) SetTitle(v string) *ExaminationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ExaminationCreate) SetSubject(v string) *ExaminationCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ExaminationCreate) SetNillableSubject(v *string) *ExaminationCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExaminationCreate) SetCreatedAt(v time.Time) *ExaminationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExaminationCreate) SetNillableCreatedAt(v *time.Time) *ExaminationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExaminationCreate) SetID(v uuid.UUID) *ExaminationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExaminationCreate) SetNillableID(v *uuid.UUID) *ExaminationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *ExaminationCreate) AddQuestionIDs(ids ...uuid.UUID) *ExaminationCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *ExaminationCreate) AddQuestions(v ...*Question) *ExaminationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddScriptIDs adds the "scripts" edge to the AnswerScript entity by IDs.
func (_c *ExaminationCreate) AddScriptIDs(ids ...uuid.UUID) *ExaminationCreate {
	_c.mutation.AddScriptIDs(ids...)
	return _c
}

// AddScripts adds the "scripts" edges to the AnswerScript entity.
func (_c *ExaminationCreate) AddScripts(v ...*AnswerScript) *ExaminationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScriptIDs(ids...)
}

// Mutation returns the ExaminationMutation object of the builder.
func (_c *ExaminationCreate) Mutation() *ExaminationMutation {
	return _c.mutation
}

// Save creates the Examination in the database.
func (_c *ExaminationCreate) Save(ctx context.Context) (*Examination, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExaminationCreate) SaveX(ctx context.Context) *Examination {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExaminationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExaminationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExaminationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := examination.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := examination.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExaminationCreate) check() error {
	if _, ok := _c.mutation.SchoolID(); !ok {
		return &ValidationError{Name: "school_id", err: errors.New(`ent: missing required field "Examination.school_id"`)}
	}
	if _, ok := _c.mutation.TeacherID(); !ok {
		return &ValidationError{Name: "teacher_id", err: errors.New(`ent: missing required field "Examination.teacher_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Examination.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := examination.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Examination.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Examination.created_at"`)}
	}
	return nil
}

func (_c *ExaminationCreate) sqlSave(ctx context.Context) (*Examination, error) {
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

func (_c *ExaminationCreate) createSpec() (*Examination, *sqlgraph.CreateSpec) {
	var (
		_node = &Examination{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examination.Table, sqlgraph.NewFieldSpec(examination.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SchoolID(); ok {
		_spec.SetField(examination.FieldSchoolID, field.TypeUUID, value)
		_node.SchoolID = value
	}
	if value, ok := _c.mutation.TeacherID(); ok {
		_spec.SetField(examination.FieldTeacherID, field.TypeUUID, value)
		_node.TeacherID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(examination.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(examination.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(examination.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examination.QuestionsTable,
			Columns: []string{examination.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examination.ScriptsTable,
			Columns: []string{examination.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExaminationCreateBulk is the builder for creating many Examination entities in bulk.
type ExaminationCreateBulk struct {
	config
	err      error
	builders []*ExaminationCreate
}

// Save creates the Examination entities in the database.
func (_c *ExaminationCreateBulk) Save(ctx context.Context) ([]*Examination, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Examination, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExaminationMutation)
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
func (_c *ExaminationCreateBulk) SaveX(ctx context.Context) []*Examination {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExaminationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExaminationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
