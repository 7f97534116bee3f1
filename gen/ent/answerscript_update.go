// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/google/uuid"
)

// AnswerScriptUpdate is the builder for updating AnswerScript entities.
type AnswerScriptUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerScriptMutation
}

// Where appends a list predicates to the AnswerScriptUpdate builder.
func (_u *AnswerScriptUpdate) Where(ps ...predicate.AnswerScript) *AnswerScriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExaminationID sets the "examination_id" field.
func (_u *AnswerScriptUpdate) SetExaminationID(v uuid.UUID) *AnswerScriptUpdate {
	_u.mutation.SetExaminationID(v)
	return _u
}

// SetNillableExaminationID sets the "examination_id" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableExaminationID(v *uuid.UUID) *AnswerScriptUpdate {
	if v != nil {
		_u.SetExaminationID(*v)
	}
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *AnswerScriptUpdate) SetSchoolID(v uuid.UUID) *AnswerScriptUpdate {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableSchoolID(v *uuid.UUID) *AnswerScriptUpdate {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *AnswerScriptUpdate) SetTeacherID(v uuid.UUID) *AnswerScriptUpdate {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableTeacherID(v *uuid.UUID) *AnswerScriptUpdate {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerScriptUpdate) SetStudentID(v uuid.UUID) *AnswerScriptUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableStudentID(v *uuid.UUID) *AnswerScriptUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// ClearStudentID clears the value of the "student_id" field.
func (_u *AnswerScriptUpdate) ClearStudentID() *AnswerScriptUpdate {
	_u.mutation.ClearStudentID()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *AnswerScriptUpdate) SetImagePath(v string) *AnswerScriptUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableImagePath(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *AnswerScriptUpdate) SetContentHash(v []byte) *AnswerScriptUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *AnswerScriptUpdate) ClearContentHash() *AnswerScriptUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetScriptNumber sets the "script_number" field.
func (_u *AnswerScriptUpdate) SetScriptNumber(v int) *AnswerScriptUpdate {
	_u.mutation.ResetScriptNumber()
	_u.mutation.SetScriptNumber(v)
	return _u
}

// SetNillableScriptNumber sets the "script_number" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableScriptNumber(v *int) *AnswerScriptUpdate {
	if v != nil {
		_u.SetScriptNumber(*v)
	}
	return _u
}

// AddScriptNumber adds value to the "script_number" field.
func (_u *AnswerScriptUpdate) AddScriptNumber(v int) *AnswerScriptUpdate {
	_u.mutation.AddScriptNumber(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *AnswerScriptUpdate) SetProcessingStatus(v string) *AnswerScriptUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableProcessingStatus(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AnswerScriptUpdate) SetVersion(v int) *AnswerScriptUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableVersion(v *int) *AnswerScriptUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AnswerScriptUpdate) AddVersion(v int) *AnswerScriptUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIdentificationMethod sets the "identification_method" field.
func (_u *AnswerScriptUpdate) SetIdentificationMethod(v string) *AnswerScriptUpdate {
	_u.mutation.SetIdentificationMethod(v)
	return _u
}

// SetNillableIdentificationMethod sets the "identification_method" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableIdentificationMethod(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetIdentificationMethod(*v)
	}
	return _u
}

// ClearIdentificationMethod clears the value of the "identification_method" field.
func (_u *AnswerScriptUpdate) ClearIdentificationMethod() *AnswerScriptUpdate {
	_u.mutation.ClearIdentificationMethod()
	return _u
}

// SetFullExtractedText sets the "full_extracted_text" field.
func (_u *AnswerScriptUpdate) SetFullExtractedText(v string) *AnswerScriptUpdate {
	_u.mutation.SetFullExtractedText(v)
	return _u
}

// SetNillableFullExtractedText sets the "full_extracted_text" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableFullExtractedText(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetFullExtractedText(*v)
	}
	return _u
}

// ClearFullExtractedText clears the value of the "full_extracted_text" field.
func (_u *AnswerScriptUpdate) ClearFullExtractedText() *AnswerScriptUpdate {
	_u.mutation.ClearFullExtractedText()
	return _u
}

// SetCombinedExtractedText sets the "combined_extracted_text" field.
func (_u *AnswerScriptUpdate) SetCombinedExtractedText(v string) *AnswerScriptUpdate {
	_u.mutation.SetCombinedExtractedText(v)
	return _u
}

// SetNillableCombinedExtractedText sets the "combined_extracted_text" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableCombinedExtractedText(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetCombinedExtractedText(*v)
	}
	return _u
}

// ClearCombinedExtractedText clears the value of the "combined_extracted_text" field.
func (_u *AnswerScriptUpdate) ClearCombinedExtractedText() *AnswerScriptUpdate {
	_u.mutation.ClearCombinedExtractedText()
	return _u
}

// SetCustomInstructions sets the "custom_instructions" field.
func (_u *AnswerScriptUpdate) SetCustomInstructions(v string) *AnswerScriptUpdate {
	_u.mutation.SetCustomInstructions(v)
	return _u
}

// SetNillableCustomInstructions sets the "custom_instructions" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableCustomInstructions(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetCustomInstructions(*v)
	}
	return _u
}

// ClearCustomInstructions clears the value of the "custom_instructions" field.
func (_u *AnswerScriptUpdate) ClearCustomInstructions() *AnswerScriptUpdate {
	_u.mutation.ClearCustomInstructions()
	return _u
}

// SetEnableMisconductDetection sets the "enable_misconduct_detection" field.
func (_u *AnswerScriptUpdate) SetEnableMisconductDetection(v bool) *AnswerScriptUpdate {
	_u.mutation.SetEnableMisconductDetection(v)
	return _u
}

// SetNillableEnableMisconductDetection sets the "enable_misconduct_detection" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableEnableMisconductDetection(v *bool) *AnswerScriptUpdate {
	if v != nil {
		_u.SetEnableMisconductDetection(*v)
	}
	return _u
}

// SetFlags sets the "flags" field.
func (_u *AnswerScriptUpdate) SetFlags(v []string) *AnswerScriptUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *AnswerScriptUpdate) AppendFlags(v []string) *AnswerScriptUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *AnswerScriptUpdate) ClearFlags() *AnswerScriptUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *AnswerScriptUpdate) SetOverallConfidence(v float64) *AnswerScriptUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableOverallConfidence(v *float64) *AnswerScriptUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *AnswerScriptUpdate) AddOverallConfidence(v float64) *AnswerScriptUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *AnswerScriptUpdate) ClearOverallConfidence() *AnswerScriptUpdate {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetPredominantMethod sets the "predominant_method" field.
func (_u *AnswerScriptUpdate) SetPredominantMethod(v string) *AnswerScriptUpdate {
	_u.mutation.SetPredominantMethod(v)
	return _u
}

// SetNillablePredominantMethod sets the "predominant_method" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillablePredominantMethod(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetPredominantMethod(*v)
	}
	return _u
}

// ClearPredominantMethod clears the value of the "predominant_method" field.
func (_u *AnswerScriptUpdate) ClearPredominantMethod() *AnswerScriptUpdate {
	_u.mutation.ClearPredominantMethod()
	return _u
}

// SetConfidenceLabel sets the "confidence_label" field.
func (_u *AnswerScriptUpdate) SetConfidenceLabel(v string) *AnswerScriptUpdate {
	_u.mutation.SetConfidenceLabel(v)
	return _u
}

// SetNillableConfidenceLabel sets the "confidence_label" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableConfidenceLabel(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetConfidenceLabel(*v)
	}
	return _u
}

// ClearConfidenceLabel clears the value of the "confidence_label" field.
func (_u *AnswerScriptUpdate) ClearConfidenceLabel() *AnswerScriptUpdate {
	_u.mutation.ClearConfidenceLabel()
	return _u
}

// SetErrorReason sets the "error_reason" field.
func (_u *AnswerScriptUpdate) SetErrorReason(v string) *AnswerScriptUpdate {
	_u.mutation.SetErrorReason(v)
	return _u
}

// SetNillableErrorReason sets the "error_reason" field if the given value is not nil.
func (_u *AnswerScriptUpdate) SetNillableErrorReason(v *string) *AnswerScriptUpdate {
	if v != nil {
		_u.SetErrorReason(*v)
	}
	return _u
}

// ClearErrorReason clears the value of the "error_reason" field.
func (_u *AnswerScriptUpdate) ClearErrorReason() *AnswerScriptUpdate {
	_u.mutation.ClearErrorReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnswerScriptUpdate) SetUpdatedAt(v time.Time) *AnswerScriptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExamination sets the "examination" edge to the Examination entity.
func (_u *AnswerScriptUpdate) SetExamination(v *Examination) *AnswerScriptUpdate {
	return _u.SetExaminationID(v.ID)
}

// SetStudent sets the "student" edge to the Student entity.
func (_u *AnswerScriptUpdate) SetStudent(v *Student) *AnswerScriptUpdate {
	return _u.SetStudentID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AnswerScriptUpdate) AddAnswerIDs(ids ...uuid.UUID) *AnswerScriptUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AnswerScriptUpdate) AddAnswers(v ...*Answer) *AnswerScriptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AnswerScriptMutation object of the builder.
func (_u *AnswerScriptUpdate) Mutation() *AnswerScriptMutation {
	return _u.mutation
}

// ClearExamination clears the "examination" edge to the Examination entity.
func (_u *AnswerScriptUpdate) ClearExamination() *AnswerScriptUpdate {
	_u.mutation.ClearExamination()
	return _u
}

// ClearStudent clears the "student" edge to the Student entity.
func (_u *AnswerScriptUpdate) ClearStudent() *AnswerScriptUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AnswerScriptUpdate) ClearAnswers() *AnswerScriptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AnswerScriptUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *AnswerScriptUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AnswerScriptUpdate) RemoveAnswers(v ...*Answer) *AnswerScriptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerScriptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerScriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerScriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerScriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnswerScriptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := answerscript.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerScriptUpdate) check() error {
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := answerscript.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.image_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScriptNumber(); ok {
		if err := answerscript.ScriptNumberValidator(v); err != nil {
			return &ValidationError{Name: "script_number", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.script_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := answerscript.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := answerscript.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdentificationMethod(); ok {
		if err := answerscript.IdentificationMethodValidator(v); err != nil {
			return &ValidationError{Name: "identification_method", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.identification_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredominantMethod(); ok {
		if err := answerscript.PredominantMethodValidator(v); err != nil {
			return &ValidationError{Name: "predominant_method", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.predominant_method": %w`, err)}
		}
	}
	if _u.mutation.ExaminationCleared() && len(_u.mutation.ExaminationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerScript.examination"`)
	}
	return nil
}

func (_u *AnswerScriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerscript.Table, answerscript.Columns, sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SchoolID(); ok {
		_spec.SetField(answerscript.FieldSchoolID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(answerscript.FieldTeacherID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(answerscript.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(answerscript.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(answerscript.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.ScriptNumber(); ok {
		_spec.SetField(answerscript.FieldScriptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScriptNumber(); ok {
		_spec.AddField(answerscript.FieldScriptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(answerscript.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(answerscript.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(answerscript.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentificationMethod(); ok {
		_spec.SetField(answerscript.FieldIdentificationMethod, field.TypeString, value)
	}
	if _u.mutation.IdentificationMethodCleared() {
		_spec.ClearField(answerscript.FieldIdentificationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.FullExtractedText(); ok {
		_spec.SetField(answerscript.FieldFullExtractedText, field.TypeString, value)
	}
	if _u.mutation.FullExtractedTextCleared() {
		_spec.ClearField(answerscript.FieldFullExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.CombinedExtractedText(); ok {
		_spec.SetField(answerscript.FieldCombinedExtractedText, field.TypeString, value)
	}
	if _u.mutation.CombinedExtractedTextCleared() {
		_spec.ClearField(answerscript.FieldCombinedExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.CustomInstructions(); ok {
		_spec.SetField(answerscript.FieldCustomInstructions, field.TypeString, value)
	}
	if _u.mutation.CustomInstructionsCleared() {
		_spec.ClearField(answerscript.FieldCustomInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.EnableMisconductDetection(); ok {
		_spec.SetField(answerscript.FieldEnableMisconductDetection, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(answerscript.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerscript.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(answerscript.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(answerscript.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(answerscript.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(answerscript.FieldOverallConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PredominantMethod(); ok {
		_spec.SetField(answerscript.FieldPredominantMethod, field.TypeString, value)
	}
	if _u.mutation.PredominantMethodCleared() {
		_spec.ClearField(answerscript.FieldPredominantMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceLabel(); ok {
		_spec.SetField(answerscript.FieldConfidenceLabel, field.TypeString, value)
	}
	if _u.mutation.ConfidenceLabelCleared() {
		_spec.ClearField(answerscript.FieldConfidenceLabel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorReason(); ok {
		_spec.SetField(answerscript.FieldErrorReason, field.TypeString, value)
	}
	if _u.mutation.ErrorReasonCleared() {
		_spec.ClearField(answerscript.FieldErrorReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(answerscript.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExaminationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExaminationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerscript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerScriptUpdateOne is the builder for updating a single AnswerScript entity.
type AnswerScriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerScriptMutation
}

// SetExaminationID sets the "examination_id" field.
func (_u *AnswerScriptUpdateOne) SetExaminationID(v uuid.UUID) *AnswerScriptUpdateOne {
	_u.mutation.SetExaminationID(v)
	return _u
}

// SetNillableExaminationID sets the "examination_id" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableExaminationID(v *uuid.UUID) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetExaminationID(*v)
	}
	return _u
}

// SetSchoolID sets the "school_id" field.
func (_u *AnswerScriptUpdateOne) SetSchoolID(v uuid.UUID) *AnswerScriptUpdateOne {
	_u.mutation.SetSchoolID(v)
	return _u
}

// SetNillableSchoolID sets the "school_id" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableSchoolID(v *uuid.UUID) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetSchoolID(*v)
	}
	return _u
}

// SetTeacherID sets the "teacher_id" field.
func (_u *AnswerScriptUpdateOne) SetTeacherID(v uuid.UUID) *AnswerScriptUpdateOne {
	_u.mutation.SetTeacherID(v)
	return _u
}

// SetNillableTeacherID sets the "teacher_id" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableTeacherID(v *uuid.UUID) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetTeacherID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerScriptUpdateOne) SetStudentID(v uuid.UUID) *AnswerScriptUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableStudentID(v *uuid.UUID) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// ClearStudentID clears the value of the "student_id" field.
func (_u *AnswerScriptUpdateOne) ClearStudentID() *AnswerScriptUpdateOne {
	_u.mutation.ClearStudentID()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *AnswerScriptUpdateOne) SetImagePath(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableImagePath(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *AnswerScriptUpdateOne) SetContentHash(v []byte) *AnswerScriptUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *AnswerScriptUpdateOne) ClearContentHash() *AnswerScriptUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetScriptNumber sets the "script_number" field.
func (_u *AnswerScriptUpdateOne) SetScriptNumber(v int) *AnswerScriptUpdateOne {
	_u.mutation.ResetScriptNumber()
	_u.mutation.SetScriptNumber(v)
	return _u
}

// SetNillableScriptNumber sets the "script_number" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableScriptNumber(v *int) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetScriptNumber(*v)
	}
	return _u
}

// AddScriptNumber adds value to the "script_number" field.
func (_u *AnswerScriptUpdateOne) AddScriptNumber(v int) *AnswerScriptUpdateOne {
	_u.mutation.AddScriptNumber(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *AnswerScriptUpdateOne) SetProcessingStatus(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableProcessingStatus(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *AnswerScriptUpdateOne) SetVersion(v int) *AnswerScriptUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableVersion(v *int) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AnswerScriptUpdateOne) AddVersion(v int) *AnswerScriptUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIdentificationMethod sets the "identification_method" field.
func (_u *AnswerScriptUpdateOne) SetIdentificationMethod(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetIdentificationMethod(v)
	return _u
}

// SetNillableIdentificationMethod sets the "identification_method" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableIdentificationMethod(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetIdentificationMethod(*v)
	}
	return _u
}

// ClearIdentificationMethod clears the value of the "identification_method" field.
func (_u *AnswerScriptUpdateOne) ClearIdentificationMethod() *AnswerScriptUpdateOne {
	_u.mutation.ClearIdentificationMethod()
	return _u
}

// SetFullExtractedText sets the "full_extracted_text" field.
func (_u *AnswerScriptUpdateOne) SetFullExtractedText(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetFullExtractedText(v)
	return _u
}

// SetNillableFullExtractedText sets the "full_extracted_text" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableFullExtractedText(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetFullExtractedText(*v)
	}
	return _u
}

// ClearFullExtractedText clears the value of the "full_extracted_text" field.
func (_u *AnswerScriptUpdateOne) ClearFullExtractedText() *AnswerScriptUpdateOne {
	_u.mutation.ClearFullExtractedText()
	return _u
}

// SetCombinedExtractedText sets the "combined_extracted_text" field.
func (_u *AnswerScriptUpdateOne) SetCombinedExtractedText(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetCombinedExtractedText(v)
	return _u
}

// SetNillableCombinedExtractedText sets the "combined_extracted_text" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableCombinedExtractedText(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetCombinedExtractedText(*v)
	}
	return _u
}

// ClearCombinedExtractedText clears the value of the "combined_extracted_text" field.
func (_u *AnswerScriptUpdateOne) ClearCombinedExtractedText() *AnswerScriptUpdateOne {
	_u.mutation.ClearCombinedExtractedText()
	return _u
}

// SetCustomInstructions sets the "custom_instructions" field.
func (_u *AnswerScriptUpdateOne) SetCustomInstructions(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetCustomInstructions(v)
	return _u
}

// SetNillableCustomInstructions sets the "custom_instructions" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableCustomInstructions(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetCustomInstructions(*v)
	}
	return _u
}

// ClearCustomInstructions clears the value of the "custom_instructions" field.
func (_u *AnswerScriptUpdateOne) ClearCustomInstructions() *AnswerScriptUpdateOne {
	_u.mutation.ClearCustomInstructions()
	return _u
}

// SetEnableMisconductDetection sets the "enable_misconduct_detection" field.
func (_u *AnswerScriptUpdateOne) SetEnableMisconductDetection(v bool) *AnswerScriptUpdateOne {
	_u.mutation.SetEnableMisconductDetection(v)
	return _u
}

// SetNillableEnableMisconductDetection sets the "enable_misconduct_detection" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableEnableMisconductDetection(v *bool) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetEnableMisconductDetection(*v)
	}
	return _u
}

// SetFlags sets the "flags" field.
func (_u *AnswerScriptUpdateOne) SetFlags(v []string) *AnswerScriptUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *AnswerScriptUpdateOne) AppendFlags(v []string) *AnswerScriptUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *AnswerScriptUpdateOne) ClearFlags() *AnswerScriptUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *AnswerScriptUpdateOne) SetOverallConfidence(v float64) *AnswerScriptUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableOverallConfidence(v *float64) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *AnswerScriptUpdateOne) AddOverallConfidence(v float64) *AnswerScriptUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *AnswerScriptUpdateOne) ClearOverallConfidence() *AnswerScriptUpdateOne {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetPredominantMethod sets the "predominant_method" field.
func (_u *AnswerScriptUpdateOne) SetPredominantMethod(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetPredominantMethod(v)
	return _u
}

// SetNillablePredominantMethod sets the "predominant_method" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillablePredominantMethod(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetPredominantMethod(*v)
	}
	return _u
}

// ClearPredominantMethod clears the value of the "predominant_method" field.
func (_u *AnswerScriptUpdateOne) ClearPredominantMethod() *AnswerScriptUpdateOne {
	_u.mutation.ClearPredominantMethod()
	return _u
}

// SetConfidenceLabel sets the "confidence_label" field.
func (_u *AnswerScriptUpdateOne) SetConfidenceLabel(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetConfidenceLabel(v)
	return _u
}

// SetNillableConfidenceLabel sets the "confidence_label" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableConfidenceLabel(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetConfidenceLabel(*v)
	}
	return _u
}

// ClearConfidenceLabel clears the value of the "confidence_label" field.
func (_u *AnswerScriptUpdateOne) ClearConfidenceLabel() *AnswerScriptUpdateOne {
	_u.mutation.ClearConfidenceLabel()
	return _u
}

// SetErrorReason sets the "error_reason" field.
func (_u *AnswerScriptUpdateOne) SetErrorReason(v string) *AnswerScriptUpdateOne {
	_u.mutation.SetErrorReason(v)
	return _u
}

// SetNillableErrorReason sets the "error_reason" field if the given value is not nil.
func (_u *AnswerScriptUpdateOne) SetNillableErrorReason(v *string) *AnswerScriptUpdateOne {
	if v != nil {
		_u.SetErrorReason(*v)
	}
	return _u
}

// ClearErrorReason clears the value of the "error_reason" field.
func (_u *AnswerScriptUpdateOne) ClearErrorReason() *AnswerScriptUpdateOne {
	_u.mutation.ClearErrorReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnswerScriptUpdateOne) SetUpdatedAt(v time.Time) *AnswerScriptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExamination sets the "examination" edge to the Examination entity.
func (_u *AnswerScriptUpdateOne) SetExamination(v *Examination) *AnswerScriptUpdateOne {
	return _u.SetExaminationID(v.ID)
}

// SetStudent sets the "student" edge to the Student entity.
func (_u *AnswerScriptUpdateOne) SetStudent(v *Student) *AnswerScriptUpdateOne {
	return _u.SetStudentID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AnswerScriptUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *AnswerScriptUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AnswerScriptUpdateOne) AddAnswers(v ...*Answer) *AnswerScriptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AnswerScriptMutation object of the builder.
func (_u *AnswerScriptUpdateOne) Mutation() *AnswerScriptMutation {
	return _u.mutation
}

// ClearExamination clears the "examination" edge to the Examination entity.
func (_u *AnswerScriptUpdateOne) ClearExamination() *AnswerScriptUpdateOne {
	_u.mutation.ClearExamination()
	return _u
}

// ClearStudent clears the "student" edge to the Student entity.
func (_u *AnswerScriptUpdateOne) ClearStudent() *AnswerScriptUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AnswerScriptUpdateOne) ClearAnswers() *AnswerScriptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AnswerScriptUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *AnswerScriptUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AnswerScriptUpdateOne) RemoveAnswers(v ...*Answer) *AnswerScriptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the AnswerScriptUpdate builder.
func (_u *AnswerScriptUpdateOne) Where(ps ...predicate.AnswerScript) *AnswerScriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerScriptUpdateOne) Select(field string, fields ...string) *AnswerScriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerScript entity.
func (_u *AnswerScriptUpdateOne) Save(ctx context.Context) (*AnswerScript, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerScriptUpdateOne) SaveX(ctx context.Context) *AnswerScript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerScriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerScriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnswerScriptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := answerscript.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerScriptUpdateOne) check() error {
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := answerscript.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.image_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScriptNumber(); ok {
		if err := answerscript.ScriptNumberValidator(v); err != nil {
			return &ValidationError{Name: "script_number", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.script_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := answerscript.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := answerscript.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdentificationMethod(); ok {
		if err := answerscript.IdentificationMethodValidator(v); err != nil {
			return &ValidationError{Name: "identification_method", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.identification_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredominantMethod(); ok {
		if err := answerscript.PredominantMethodValidator(v); err != nil {
			return &ValidationError{Name: "predominant_method", err: fmt.Errorf(`ent: validator failed for field "AnswerScript.predominant_method": %w`, err)}
		}
	}
	if _u.mutation.ExaminationCleared() && len(_u.mutation.ExaminationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerScript.examination"`)
	}
	return nil
}

func (_u *AnswerScriptUpdateOne) sqlSave(ctx context.Context) (_node *AnswerScript, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerscript.Table, answerscript.Columns, sqlgraph.NewFieldSpec(answerscript.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerScript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerscript.FieldID)
		for _, f := range fields {
			if !answerscript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerscript.FieldID {
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
		_spec.SetField(answerscript.FieldSchoolID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TeacherID(); ok {
		_spec.SetField(answerscript.FieldTeacherID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(answerscript.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(answerscript.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(answerscript.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.ScriptNumber(); ok {
		_spec.SetField(answerscript.FieldScriptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScriptNumber(); ok {
		_spec.AddField(answerscript.FieldScriptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(answerscript.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(answerscript.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(answerscript.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdentificationMethod(); ok {
		_spec.SetField(answerscript.FieldIdentificationMethod, field.TypeString, value)
	}
	if _u.mutation.IdentificationMethodCleared() {
		_spec.ClearField(answerscript.FieldIdentificationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.FullExtractedText(); ok {
		_spec.SetField(answerscript.FieldFullExtractedText, field.TypeString, value)
	}
	if _u.mutation.FullExtractedTextCleared() {
		_spec.ClearField(answerscript.FieldFullExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.CombinedExtractedText(); ok {
		_spec.SetField(answerscript.FieldCombinedExtractedText, field.TypeString, value)
	}
	if _u.mutation.CombinedExtractedTextCleared() {
		_spec.ClearField(answerscript.FieldCombinedExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.CustomInstructions(); ok {
		_spec.SetField(answerscript.FieldCustomInstructions, field.TypeString, value)
	}
	if _u.mutation.CustomInstructionsCleared() {
		_spec.ClearField(answerscript.FieldCustomInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.EnableMisconductDetection(); ok {
		_spec.SetField(answerscript.FieldEnableMisconductDetection, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(answerscript.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerscript.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(answerscript.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(answerscript.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(answerscript.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(answerscript.FieldOverallConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PredominantMethod(); ok {
		_spec.SetField(answerscript.FieldPredominantMethod, field.TypeString, value)
	}
	if _u.mutation.PredominantMethodCleared() {
		_spec.ClearField(answerscript.FieldPredominantMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceLabel(); ok {
		_spec.SetField(answerscript.FieldConfidenceLabel, field.TypeString, value)
	}
	if _u.mutation.ConfidenceLabelCleared() {
		_spec.ClearField(answerscript.FieldConfidenceLabel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorReason(); ok {
		_spec.SetField(answerscript.FieldErrorReason, field.TypeString, value)
	}
	if _u.mutation.ErrorReasonCleared() {
		_spec.ClearField(answerscript.FieldErrorReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(answerscript.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExaminationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExaminationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnswerScript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerscript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
