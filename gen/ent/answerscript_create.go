// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/google/uuid"
)

// AnswerScriptCreate is the builder for creating a AnswerScript entity.
type AnswerScriptCreate struct {
	config
	mutation *AnswerScriptMutation
	hooks    []Hook
}

// SetExaminationID sets the "examination_id" field.
func (_c *AnswerScriptCreate) SetExaminationID(v uuid.UUID) *AnswerScriptCreate {
	_c.mutation.SetExaminationID(v)
	return _c
}

// SetSchoolID sets the "school_id" field.
func (_c *AnswerScriptCreate) SetSchoolID(v uuid.UUID) *AnswerScriptCreate {
	_c.mutation.SetSchoolID(v)
	return _c
}

// SetTeacherID sets the "teacher_id" field.
func (_c *AnswerScriptCreate) SetTeacherID(v uuid.UUID) *AnswerScriptCreate {
	_c.mutation.SetTeacherID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AnswerScriptCreate) SetStudentID(v uuid.UUID) *AnswerScriptCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableStudentID(v *uuid.UUID) *AnswerScriptCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *AnswerScriptCreate) SetImagePath(v string) *AnswerScriptCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *AnswerScriptCreate) SetContentHash(v []byte) *AnswerScriptCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetScriptNumber sets the "script_number" field.
func (_c *AnswerScriptCreate) SetScriptNumber(v int) *AnswerScriptCreate {
	_c.mutation.SetScriptNumber(v)
	return _c
}

// SetNillableScriptNumber sets the "script_number" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableScriptNumber(v *int) *AnswerScriptCreate {
	if v != nil {
		_c.SetScriptNumber(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *AnswerScriptCreate) SetProcessingStatus(v string) *AnswerScriptCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableProcessingStatus(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AnswerScriptCreate) SetVersion(v int) *AnswerScriptCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableVersion(v *int) *AnswerScriptCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIdentificationMethod sets the "identification_method" field.
func (_c *AnswerScriptCreate) SetIdentificationMethod(v string) *AnswerScriptCreate {
	_c.mutation.SetIdentificationMethod(v)
	return _c
}

// SetNillableIdentificationMethod sets the "identification_method" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableIdentificationMethod(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetIdentificationMethod(*v)
	}
	return _c
}

// SetFullExtractedText sets the "full_extracted_text" field.
func (_c *AnswerScriptCreate) SetFullExtractedText(v string) *AnswerScriptCreate {
	_c.mutation.SetFullExtractedText(v)
	return _c
}

// SetNillableFullExtractedText sets the "full_extracted_text" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableFullExtractedText(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetFullExtractedText(*v)
	}
	return _c
}

// SetCombinedExtractedText sets the "combined_extracted_text" field.
func (_c *AnswerScriptCreate) SetCombinedExtractedText(v string) *AnswerScriptCreate {
	_c.mutation.SetCombinedExtractedText(v)
	return _c
}

// SetNillableCombinedExtractedText sets the "combined_extracted_text" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableCombinedExtractedText(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetCombinedExtractedText(*v)
	}
	return _c
}

// SetCustomInstructions sets the "custom_instructions" field.
func (_c *AnswerScriptCreate) SetCustomInstructions(v string) *AnswerScriptCreate {
	_c.mutation.SetCustomInstructions(v)
	return _c
}

// SetNillableCustomInstructions sets the "custom_instructions" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableCustomInstructions(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetCustomInstructions(*v)
	}
	return _c
}

// SetEnableMisconductDetection sets the "enable_misconduct_detection" field.
func (_c *AnswerScriptCreate) SetEnableMisconductDetection(v bool) *AnswerScriptCreate {
	_c.mutation.SetEnableMisconductDetection(v)
	return _c
}

// SetNillableEnableMisconductDetection sets the "enable_misconduct_detection" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableEnableMisconductDetection(v *bool) *AnswerScriptCreate {
	if v != nil {
		_c.SetEnableMisconductDetection(*v)
	}
	return _c
}

// SetFlags sets the "flags" field.
func (_c *AnswerScriptCreate) SetFlags(v []string) *AnswerScriptCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *AnswerScriptCreate) SetOverallConfidence(v float64) *AnswerScriptCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableOverallConfidence(v *float64) *AnswerScriptCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetPredominantMethod sets the "predominant_method" field.
func (_c *AnswerScriptCreate) SetPredominantMethod(v string) *AnswerScriptCreate {
	_c.mutation.SetPredominantMethod(v)
	return _c
}

// SetNillablePredominantMethod sets the "predominant_method" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillablePredominantMethod(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetPredominantMethod(*v)
	}
	return _c
}

// SetConfidenceLabel sets the "confidence_label" field.
func (_c *AnswerScriptCreate) SetConfidenceLabel(v string) *AnswerScriptCreate {
	_c.mutation.SetConfidenceLabel(v)
	return _c
}

// SetNillableConfidenceLabel sets the "confidence_label" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableConfidenceLabel(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetConfidenceLabel(*v)
	}
	return _c
}

// SetErrorReason sets the "error_reason" field.
func (_c *AnswerScriptCreate) SetErrorReason(v string) *AnswerScriptCreate {
	_c.mutation.SetErrorReason(v)
	return _c
}

// SetNillableErrorReason sets the "error_reason" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableErrorReason(v *string) *AnswerScriptCreate {
	if v != nil {
		_c.SetErrorReason(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *AnswerScriptCreate) SetUploadedAt(v time.Time) *AnswerScriptCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableUploadedAt(v *time.Time) *AnswerScriptCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnswerScriptCreate) SetUpdatedAt(v time.Time) *AnswerScriptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableUpdatedAt(v *time.Time) *AnswerScriptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnswerScriptCreate) SetID(v uuid.UUID) *AnswerScriptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnswerScriptCreate) SetNillableID(v *uuid.UUID) *AnswerScriptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExamination sets the "examination" edge to the Examination entity.
func (_c *AnswerScriptCreate) SetExamination(v *Examination) *AnswerScriptCreate {
	return _c.SetExaminationID(v.ID)
}

// SetStudent sets the "student" edge to the Student entity.
func (_c *AnswerScriptCreate) SetStudent(v *Student) *AnswerScriptCreate {
	return _c.SetStudentID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *AnswerScriptCreate) AddAnswerIDs(ids ...uuid.UUID) *AnswerScriptCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *AnswerScriptCreate) AddAnswers(v ...*Answer) *AnswerScriptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the AnswerScriptMutation object of the builder.
func (_c *AnswerScriptCreate) Mutation() *AnswerScriptMutation {
	return _c.mutation
}

// Save creates the AnswerScript in the database.
func (_c *AnswerScriptCreate) Save(ctx context.Context) (*AnswerScript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerScriptCreate) SaveX(ctx context.Context) *AnswerScript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerScriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerScriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerScriptCreate) defaults() {
	if _, ok := _c.mutation.ScriptNumber(); !ok {
		v := answerscript.DefaultScriptNumber
		_c.mutation.SetScriptNumber(v)
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := answerscript.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := answerscript.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.EnableMisconductDetection(); !ok {
		v := answerscript.DefaultEnableMisconductDetection
		_c.mutation.SetEnableMisconductDetection(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := answerscript.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := answerscript.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := answerscript.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerScriptCreate) check() error {
	if _, ok := _c.mutation.ExaminationID(); !ok {
		return &ValidationError{Name: "examination_id", err: errors.New(`ent: missing required field "AnswerScript.examination_id"`)}
	}
	if _, ok := _c.mutation.SchoolID(); !ok {
		return &ValidationError{Name: "school_id", err: errors.New(`ent: missing required field "AnswerScript.school_id"`)}
	}
	if _, ok := _c.mutation.TeacherID(); !ok {
		return &ValidationError{Name: "teacher_id", err: errors.New(`ent: missing required field "AnswerScript.teacher_id"`)}
	}
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "AnswerScript.image_path"`)}
	}
	if v, ok := _c.mutation.ImagePath(); ok {
		if err := answerscript.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.image_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScriptNumber(); !ok {
		return &ValidationError{Name: "script_number", err: errors.New(`ent: missing required field "AnswerScript.script_number"`)}
	}
	if v, ok := _c.mutation.ScriptNumber(); ok {
		if err := answerscript.ScriptNumberValidator(v); err != nil {
			return &ValidationError{Name: "script_number", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.script_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "AnswerScript.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := answerscript.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AnswerScript.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := answerscript.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.version": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IdentificationMethod(); ok {
		if err := answerscript.IdentificationMethodValidator(v); err != nil {
			return &ValidationError{Name: "identification_method", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.identification_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnableMisconductDetection(); !ok {
		return &ValidationError{Name: "enable_misconduct_detection", err: errors.New(`ent: missing required field "AnswerScript.enable_misconduct_detection"`)}
	}
	if v, ok := _c.mutation.PredominantMethod(); ok {
		if err := answerscript.PredominantMethodValidator(v); err != nil {
			return &ValidationError{Name: "predominant_method", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.predominant_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "AnswerScript.uploaded_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnswerScript.updated_at"`)}
	}
	if len(_c.mutation.ExaminationIDs()) == 0 {
		return &ValidationError{Name: "examination", err: errors.New(`ent: missing required edge "AnswerScript.examination"`)}
	}
	return nil
}

func (_c *AnswerScriptCreate) sqlSave(ctx context.Context) (*AnswerScript, error) {
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

func (_c *AnswerScriptCreate) createSpec() (*AnswerScript, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerScript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerscript.Table, sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SchoolID(); ok {
		_spec.SetField(answerscript.FieldSchoolID, field.TypeUUID, value)
		_node.SchoolID = value
	}
	if value, ok := _c.mutation.TeacherID(); ok {
		_spec.SetField(answerscript.FieldTeacherID, field.TypeUUID, value)
		_node.TeacherID = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(answerscript.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(answerscript.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ScriptNumber(); ok {
		_spec.SetField(answerscript.FieldScriptNumber, field.TypeInt, value)
		_node.ScriptNumber = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(answerscript.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(answerscript.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IdentificationMethod(); ok {
		_spec.SetField(answerscript.FieldIdentificationMethod, field.TypeString, value)
		_node.IdentificationMethod = &value
	}
	if value, ok := _c.mutation.FullExtractedText(); ok {
		_spec.SetField(answerscript.FieldFullExtractedText, field.TypeString, value)
		_node.FullExtractedText = &value
	}
	if value, ok := _c.mutation.CombinedExtractedText(); ok {
		_spec.SetField(answerscript.FieldCombinedExtractedText, field.TypeString, value)
		_node.CombinedExtractedText = &value
	}
	if value, ok := _c.mutation.CustomInstructions(); ok {
		_spec.SetField(answerscript.FieldCustomInstructions, field.TypeString, value)
		_node.CustomInstructions = &value
	}
	if value, ok := _c.mutation.EnableMisconductDetection(); ok {
		_spec.SetField(answerscript.FieldEnableMisconductDetection, field.TypeBool, value)
		_node.EnableMisconductDetection = value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(answerscript.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(answerscript.FieldOverallConfidence, field.TypeFloat64, value)
		_node.OverallConfidence = &value
	}
	if value, ok := _c.mutation.PredominantMethod(); ok {
		_spec.SetField(answerscript.FieldPredominantMethod, field.TypeString, value)
		_node.PredominantMethod = &value
	}
	if value, ok := _c.mutation.ConfidenceLabel(); ok {
		_spec.SetField(answerscript.FieldConfidenceLabel, field.TypeString, value)
		_node.ConfidenceLabel = &value
	}
	if value, ok := _c.mutation.ErrorReason(); ok {
		_spec.SetField(answerscript.FieldErrorReason, field.TypeString, value)
		_node.ErrorReason = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(answerscript.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(answerscript.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExaminationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerscript.ExaminationTable,
			Columns: []string{answerscript.ExaminationColumn},
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
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerscript.StudentTable,
			Columns: []string{answerscript.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StudentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   answerscript.AnswersTable,
			Columns: []string{answerscript.AnswersColumn},
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

// AnswerScriptCreateBulk is the builder for creating many AnswerScript entities in bulk.
type AnswerScriptCreateBulk struct {
	config
	err      error
	builders []*AnswerScriptCreate
}

// Save creates the AnswerScript entities in the database.
func (_c *AnswerScriptCreateBulk) Save(ctx context.Context) ([]*AnswerScript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerScript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerScriptMutation)
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
func (_c *AnswerScriptCreateBulk) SaveX(ctx context.Context) []*AnswerScript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerScriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerScriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
