// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/google/uuid"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExaminationID sets the "examination_id" field.
func (_u *QuestionUpdate) SetExaminationID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetExaminationID(v)
	return _u
}

// SetNillableExaminationID sets the "examination_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExaminationID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetExaminationID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *QuestionUpdate) SetQuestionNumber(v int) *QuestionUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionNumber(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *QuestionUpdate) AddQuestionNumber(v int) *QuestionUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetModelAnswer sets the "model_answer" field.
func (_u *QuestionUpdate) SetModelAnswer(v string) *QuestionUpdate {
	_u.mutation.SetModelAnswer(v)
	return _u
}

// SetNillableModelAnswer sets the "model_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableModelAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetModelAnswer(*v)
	}
	return _u
}

// SetModelAnswerSource sets the "model_answer_source" field.
func (_u *QuestionUpdate) SetModelAnswerSource(v string) *QuestionUpdate {
	_u.mutation.SetModelAnswerSource(v)
	return _u
}

// SetNillableModelAnswerSource sets the "model_answer_source" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableModelAnswerSource(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetModelAnswerSource(*v)
	}
	return _u
}

// SetMarks sets the "marks" field.
func (_u *QuestionUpdate) SetMarks(v float64) *QuestionUpdate {
	_u.mutation.ResetMarks()
	_u.mutation.SetMarks(v)
	return _u
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableMarks(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetMarks(*v)
	}
	return _u
}

// AddMarks adds value to the "marks" field.
func (_u *QuestionUpdate) AddMarks(v float64) *QuestionUpdate {
	_u.mutation.AddMarks(v)
	return _u
}

// SetTolerance sets the "tolerance" field.
func (_u *QuestionUpdate) SetTolerance(v float64) *QuestionUpdate {
	_u.mutation.ResetTolerance()
	_u.mutation.SetTolerance(v)
	return _u
}

// SetNillableTolerance sets the "tolerance" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTolerance(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetTolerance(*v)
	}
	return _u
}

// AddTolerance adds value to the "tolerance" field.
func (_u *QuestionUpdate) AddTolerance(v float64) *QuestionUpdate {
	_u.mutation.AddTolerance(v)
	return _u
}

// SetExamination sets the "examination" edge to the Examination entity.
func (_u *QuestionUpdate) SetExamination(v *Examination) *QuestionUpdate {
	return _u.SetExaminationID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *QuestionUpdate) AddAnswerIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *QuestionUpdate) AddAnswers(v ...*Answer) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearExamination clears the "examination" edge to the Examination entity.
func (_u *QuestionUpdate) ClearExamination() *QuestionUpdate {
	_u.mutation.ClearExamination()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *QuestionUpdate) ClearAnswers() *QuestionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *QuestionUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *QuestionUpdate) RemoveAnswers(v ...*Answer) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := question.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "Question.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelAnswerSource(); ok {
		if err := question.ModelAnswerSourceValidator(v); err != nil {
			return &ValidationError{Name: "model_answer_source", err: fmt.Errorf(`ent: validator failed for field "Question.model_answer_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Marks(); ok {
		if err := question.MarksValidator(v); err != nil {
			return &ValidationError{Name: "marks", err: fmt.Errorf(`ent: validator failed for field "Question.marks": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tolerance(); ok {
		if err := question.ToleranceValidator(v); err != nil {
			return &ValidationError{Name: "tolerance", err: fmt.Errorf(`ent: validator failed for field "Question.tolerance": %w`, err)}
		}
	}
	if _u.mutation.ExaminationCleared() && len(_u.mutation.ExaminationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.examination"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(question.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(question.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelAnswer(); ok {
		_spec.SetField(question.FieldModelAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelAnswerSource(); ok {
		_spec.SetField(question.FieldModelAnswerSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarks(); ok {
		_spec.AddField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tolerance(); ok {
		_spec.SetField(question.FieldTolerance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTolerance(); ok {
		_spec.AddField(question.FieldTolerance, field.TypeFloat64, value)
	}
	if _u.mutation.ExaminationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExaminationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetExaminationID sets the "examination_id" field.
func (_u *QuestionUpdateOne) SetExaminationID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetExaminationID(v)
	return _u
}

// SetNillableExaminationID sets the "examination_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExaminationID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetExaminationID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *QuestionUpdateOne) SetQuestionNumber(v int) *QuestionUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionNumber(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *QuestionUpdateOne) AddQuestionNumber(v int) *QuestionUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetModelAnswer sets the "model_answer" field.
func (_u *QuestionUpdateOne) SetModelAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetModelAnswer(v)
	return _u
}

// SetNillableModelAnswer sets the "model_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableModelAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetModelAnswer(*v)
	}
	return _u
}

// SetModelAnswerSource sets the "model_answer_source" field.
func (_u *QuestionUpdateOne) SetModelAnswerSource(v string) *QuestionUpdateOne {
	_u.mutation.SetModelAnswerSource(v)
	return _u
}

// SetNillableModelAnswerSource sets the "model_answer_source" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableModelAnswerSource(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetModelAnswerSource(*v)
	}
	return _u
}

// SetMarks sets the "marks" field.
func (_u *QuestionUpdateOne) SetMarks(v float64) *QuestionUpdateOne {
	_u.mutation.ResetMarks()
	_u.mutation.SetMarks(v)
	return _u
}

// SetNillableMarks sets the "marks" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableMarks(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetMarks(*v)
	}
	return _u
}

// AddMarks adds value to the "marks" field.
func (_u *QuestionUpdateOne) AddMarks(v float64) *QuestionUpdateOne {
	_u.mutation.AddMarks(v)
	return _u
}

// SetTolerance sets the "tolerance" field.
func (_u *QuestionUpdateOne) SetTolerance(v float64) *QuestionUpdateOne {
	_u.mutation.ResetTolerance()
	_u.mutation.SetTolerance(v)
	return _u
}

// SetNillableTolerance sets the "tolerance" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTolerance(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetTolerance(*v)
	}
	return _u
}

// AddTolerance adds value to the "tolerance" field.
func (_u *QuestionUpdateOne) AddTolerance(v float64) *QuestionUpdateOne {
	_u.mutation.AddTolerance(v)
	return _u
}

// SetExamination sets the "examination" edge to the Examination entity.
func (_u *QuestionUpdateOne) SetExamination(v *Examination) *QuestionUpdateOne {
	return _u.SetExaminationID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *QuestionUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *QuestionUpdateOne) AddAnswers(v ...*Answer) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearExamination clears the "examination" edge to the Examination entity.
func (_u *QuestionUpdateOne) ClearExamination() *QuestionUpdateOne {
	_u.mutation.ClearExamination()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *QuestionUpdateOne) ClearAnswers() *QuestionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *QuestionUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *QuestionUpdateOne) RemoveAnswers(v ...*Answer) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := question.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "Question.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelAnswerSource(); ok {
		if err := question.ModelAnswerSourceValidator(v); err != nil {
			return &ValidationError{Name: "model_answer_source", err: fmt.Errorf(`ent: validator failed for field "Question.model_answer_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Marks(); ok {
		if err := question.MarksValidator(v); err != nil {
			return &ValidationError{Name: "marks", err: fmt.Errorf(`ent: validator failed for field "Question.marks": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tolerance(); ok {
		if err := question.ToleranceValidator(v); err != nil {
			return &ValidationError{Name: "tolerance", err: fmt.Errorf(`ent: validator failed for field "Question.tolerance": %w`, err)}
		}
	}
	if _u.mutation.ExaminationCleared() && len(_u.mutation.ExaminationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.examination"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(question.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(question.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelAnswer(); ok {
		_spec.SetField(question.FieldModelAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelAnswerSource(); ok {
		_spec.SetField(question.FieldModelAnswerSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Marks(); ok {
		_spec.SetField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarks(); ok {
		_spec.AddField(question.FieldMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tolerance(); ok {
		_spec.SetField(question.FieldTolerance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTolerance(); ok {
		_spec.AddField(question.FieldTolerance, field.TypeFloat64, value)
	}
	if _u.mutation.ExaminationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExaminationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
