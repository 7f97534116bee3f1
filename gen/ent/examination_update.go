// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// ExaminationUpdate is the builder for updating Examination entities.
type ExaminationUpdate struct {
	config
	hooks    []Hook
	mutation *ExaminationMutation
}

// Where appends a list predicates to the ExaminationUpdate builder.
func (_u *ExaminationUpdate) Where(ps ...predicate.Examination) *ExaminationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *ExaminationUpdate) SetSchoolID(v uuid.UUID) *ExaminationUpdate {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *ExaminationUpdate) SetNillableSchoolID(v *uuid.UUID) *ExaminationUpdate {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *ExaminationUpdate) SetTeacherID(v uuid.UUID) *ExaminationUpdate {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *ExaminationUpdate) SetNillableTeacherID(v *uuid.UUID) *ExaminationUpdate {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExaminationUpdate) SetTitle(v string) *ExaminationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExaminationUpdate) SetNillableTitle(v *string) *ExaminationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ExaminationUpdate) SetSubject(v string) *ExaminationUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ExaminationUpdate) SetNillableSubject(v *string) *ExaminationUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ExaminationUpdate) ClearSubject() *ExaminationUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *ExaminationUpdate) AddQuestionIDs(ids ...uuid.UUID) *ExaminationUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *ExaminationUpdate) AddQuestions(v ...*Question) *ExaminationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddScriptIDs adds the "scripts" edge to the AnswerScript entity by IDs.
func (_u *ExaminationUpdate) AddScriptIDs(ids ...uuid.UUID) *ExaminationUpdate {
	_u.mutation.AddScriptIDs(ids...)
	return _u
}

// AddScripts adds the "scripts" edges to the AnswerScript entity.
func (_u *ExaminationUpdate) AddScripts(v ...*AnswerScript) *ExaminationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScriptIDs(ids...)
}

// Mutation returns the ExaminationMutation object of the builder.
func (_u *ExaminationUpdate) Mutation() *ExaminationMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *ExaminationUpdate) ClearQuestions() *ExaminationUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *ExaminationUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *ExaminationUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *ExaminationUpdate) RemoveQuestions(v ...*Question) *ExaminationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearScripts clears all "scripts" edges to the AnswerScript entity.
func (_u *ExaminationUpdate) ClearScripts() *ExaminationUpdate {
	_u.mutation.ClearScripts()
	return _u
}

// RemoveScriptIDs removes the "scripts" edge to AnswerScript entities by IDs.
func (_u *ExaminationUpdate) RemoveScriptIDs(ids ...uuid.UUID) *ExaminationUpdate {
	_u.mutation.RemoveScriptIDs(ids...)
	return _u
}

// RemoveScripts removes "scripts" edges to AnswerScript entities.
func (_u *ExaminationUpdate) RemoveScripts(v ...*AnswerScript) *ExaminationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScriptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExaminationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExaminationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExaminationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExaminationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExaminationUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := examination.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Examination.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ExaminationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examination.Table, examination.Columns, sqlgraph.NewFieldSpec(examination.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SchoolID(); ok {
		_spec.SetField(examination.FieldSchoolID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(examination.FieldTeacherID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(examination.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(examination.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(examination.FieldSubject, field.TypeString)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScriptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScriptsIDs(); len(nodes) > 0 && !_u.mutation.ScriptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScriptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examination.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExaminationUpdateOne is the builder for updating a single Examination entity.
type ExaminationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExaminationMutation
}

// SetSchoolID sets the "school_id" field.
func (_u *ExaminationUpdateOne) SetSchoolID(v uuid.UUID) *ExaminationUpdateOne {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *ExaminationUpdateOne) SetNillableSchoolID(v *uuid.UUID) *ExaminationUpdateOne {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *ExaminationUpdateOne) SetTeacherID(v uuid.UUID) *ExaminationUpdateOne {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *ExaminationUpdateOne) SetNillableTeacherID(v *uuid.UUID) *ExaminationUpdateOne {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExaminationUpdateOne) SetTitle(v string) *ExaminationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExaminationUpdateOne) SetNillableTitle(v *string) *ExaminationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ExaminationUpdateOne) SetSubject(v string) *ExaminationUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ExaminationUpdateOne) SetNillableSubject(v *string) *ExaminationUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ExaminationUpdateOne) ClearSubject() *ExaminationUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *ExaminationUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *ExaminationUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *ExaminationUpdateOne) AddQuestions(v ...*Question) *ExaminationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddScriptIDs adds the "scripts" edge to the AnswerScript entity by IDs.
func (_u *ExaminationUpdateOne) AddScriptIDs(ids ...uuid.UUID) *ExaminationUpdateOne {
	_u.mutation.AddScriptIDs(ids...)
	return _u
}

// AddScripts adds the "scripts" edges to the AnswerScript entity.
func (_u *ExaminationUpdateOne) AddScripts(v ...*AnswerScript) *ExaminationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScriptIDs(ids...)
}

// Mutation returns the ExaminationMutation object of the builder.
func (_u *ExaminationUpdateOne) Mutation() *ExaminationMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *ExaminationUpdateOne) ClearQuestions() *ExaminationUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *ExaminationUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *ExaminationUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *ExaminationUpdateOne) RemoveQuestions(v ...*Question) *ExaminationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearScripts clears all "scripts" edges to the AnswerScript entity.
func (_u *ExaminationUpdateOne) ClearScripts() *ExaminationUpdateOne {
	_u.mutation.ClearScripts()
	return _u
}

// RemoveScriptIDs removes the "scripts" edge to AnswerScript entities by IDs.
func (_u *ExaminationUpdateOne) RemoveScriptIDs(ids ...uuid.UUID) *ExaminationUpdateOne {
	_u.mutation.RemoveScriptIDs(ids...)
	return _u
}

// RemoveScripts removes "scripts" edges to AnswerScript entities.
func (_u *ExaminationUpdateOne) RemoveScripts(v ...*AnswerScript) *ExaminationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScriptIDs(ids...)
}

// Where appends a list predicates to the ExaminationUpdate builder.
func (_u *ExaminationUpdateOne) Where(ps ...predicate.Examination) *ExaminationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExaminationUpdateOne) Select(field string, fields ...string) *ExaminationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Examination entity.
func (_u *ExaminationUpdateOne) Save(ctx context.Context) (*Examination, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExaminationUpdateOne) SaveX(ctx context.Context) *Examination {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExaminationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExaminationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExaminationUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := examination.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Examination.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ExaminationUpdateOne) sqlSave(ctx context.Context) (_node *Examination, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examination.Table, examination.Columns, sqlgraph.NewFieldSpec(examination.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Examination.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examination.FieldID)
		for _, f := range fields {
			if !examination.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examination.FieldID {
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
	if value, ok := _u.mutation.SchoolID(); ok {
		_spec.SetField(examination.FieldSchoolID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(examination.FieldTeacherID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(examination.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(examination.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(examination.FieldSubject, field.TypeString)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScriptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScriptsIDs(); len(nodes) > 0 && !_u.mutation.ScriptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScriptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Examination{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examination.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
