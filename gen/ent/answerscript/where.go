// Code generated by ent, DO NOT EDIT.

package answerscript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldID, id))
}

// ExaminationID applies equality check predicate on the "examination_id" field. It's identical to ExaminationIDEQ.
func ExaminationID(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldExaminationID, v))
}

// SchoolID applies equality check predicate on the "school_id" field. It's identical to SchoolIDEQ.
func SchoolID(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldSchoolID, v))
}

// TeacherID applies equality check predicate on the "teacher_id" field. It's identical to TeacherIDEQ.
func TeacherID(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldTeacherID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldStudentID, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldImagePath, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldContentHash, v))
}

// ScriptNumber applies equality check predicate on the "script_number" field. It's identical to ScriptNumberEQ.
func ScriptNumber(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldScriptNumber, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldProcessingStatus, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldVersion, v))
}

// IdentificationMethod applies equality check predicate on the "identification_method" field. It's identical to IdentificationMethodEQ.
func IdentificationMethod(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldIdentificationMethod, v))
}

// FullExtractedText applies equality check predicate on the "full_extracted_text" field. It's identical to FullExtractedTextEQ.
func FullExtractedText(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldFullExtractedText, v))
}

// CombinedExtractedText applies equality check predicate on the "combined_extracted_text" field. It's identical to CombinedExtractedTextEQ.
func CombinedExtractedText(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldCombinedExtractedText, v))
}

// CustomInstructions applies equality check predicate on the "custom_instructions" field. It's identical to CustomInstructionsEQ.
func CustomInstructions(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldCustomInstructions, v))
}

// EnableMisconductDetection applies equality check predicate on the "enable_misconduct_detection" field. It's identical to EnableMisconductDetectionEQ.
func EnableMisconductDetection(v bool) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldEnableMisconductDetection, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldOverallConfidence, v))
}

// PredominantMethod applies equality check predicate on the "predominant_method" field. It's identical to PredominantMethodEQ.
func PredominantMethod(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldPredominantMethod, v))
}

// ConfidenceLabel applies equality check predicate on the "confidence_label" field. It's identical to ConfidenceLabelEQ.
func ConfidenceLabel(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldConfidenceLabel, v))
}

// ErrorReason applies equality check predicate on the "error_reason" field. It's identical to ErrorReasonEQ.
func ErrorReason(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldErrorReason, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldUploadedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExaminationIDEQ applies the EQ predicate on the "examination_id" field.
func ExaminationIDEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldExaminationID, v))
}

// ExaminationIDNEQ applies the NEQ predicate on the "examination_id" field.
func ExaminationIDNEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldExaminationID, v))
}

// ExaminationIDIn applies the In predicate on the "examination_id" field.
func ExaminationIDIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldExaminationID, vs...))
}

// ExaminationIDNotIn applies the NotIn predicate on the "examination_id" field.
func ExaminationIDNotIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldExaminationID, vs...))
}

// SchoolIDEQ applies the EQ predicate on the "school_id" field.
func SchoolIDEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldSchoolID, v))
}

// SchoolIDNEQ applies the NEQ predicate on the "school_id" field.
func SchoolIDNEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldSchoolID, v))
}

// SchoolIDIn applies the In predicate on the "school_id" field.
func SchoolIDIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldSchoolID, vs...))
}

// SchoolIDNotIn applies the NotIn predicate on the "school_id" field.
func SchoolIDNotIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldSchoolID, vs...))
}

// SchoolIDGT applies the GT predicate on the "school_id" field.
func SchoolIDGT(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldSchoolID, v))
}

// SchoolIDGTE applies the GTE predicate on the "school_id" field.
func SchoolIDGTE(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldSchoolID, v))
}

// SchoolIDLT applies the LT predicate on the "school_id" field.
func SchoolIDLT(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldSchoolID, v))
}

// SchoolIDLTE applies the LTE predicate on the "school_id" field.
func SchoolIDLTE(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldSchoolID, v))
}

// TeacherIDEQ applies the EQ predicate on the "teacher_id" field.
func TeacherIDEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldTeacherID, v))
}

// TeacherIDNEQ applies the NEQ predicate on the "teacher_id" field.
func TeacherIDNEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldTeacherID, v))
}

// TeacherIDIn applies the In predicate on the "teacher_id" field.
func TeacherIDIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldTeacherID, vs...))
}

// TeacherIDNotIn applies the NotIn predicate on the "teacher_id" field.
func TeacherIDNotIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldTeacherID, vs...))
}

// TeacherIDGT applies the GT predicate on the "teacher_id" field.
func TeacherIDGT(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldTeacherID, v))
}

// TeacherIDGTE applies the GTE predicate on the "teacher_id" field.
func TeacherIDGTE(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldTeacherID, v))
}

// TeacherIDLT applies the LT predicate on the "teacher_id" field.
func TeacherIDLT(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldTeacherID, v))
}

// TeacherIDLTE applies the LTE predicate on the "teacher_id" field.
func TeacherIDLTE(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldTeacherID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDIsNil applies the IsNil predicate on the "student_id" field.
func StudentIDIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldStudentID))
}

// StudentIDNotNil applies the NotNil predicate on the "student_id" field.
func StudentIDNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldStudentID))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldImagePath, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldContentHash))
}

// ScriptNumberEQ applies the EQ predicate on the "script_number" field.
func ScriptNumberEQ(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldScriptNumber, v))
}

// ScriptNumberNEQ applies the NEQ predicate on the "script_number" field.
func ScriptNumberNEQ(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldScriptNumber, v))
}

// ScriptNumberIn applies the In predicate on the "script_number" field.
func ScriptNumberIn(vs ...int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldScriptNumber, vs...))
}

// ScriptNumberNotIn applies the NotIn predicate on the "script_number" field.
func ScriptNumberNotIn(vs ...int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldScriptNumber, vs...))
}

// ScriptNumberGT applies the GT predicate on the "script_number" field.
func ScriptNumberGT(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldScriptNumber, v))
}

// ScriptNumberGTE applies the GTE predicate on the "script_number" field.
func ScriptNumberGTE(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldScriptNumber, v))
}

// ScriptNumberLT applies the LT predicate on the "script_number" field.
func ScriptNumberLT(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldScriptNumber, v))
}

// ScriptNumberLTE applies the LTE predicate on the "script_number" field.
func ScriptNumberLTE(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldScriptNumber, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldVersion, v))
}

// IdentificationMethodEQ applies the EQ predicate on the "identification_method" field.
func IdentificationMethodEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldIdentificationMethod, v))
}

// IdentificationMethodNEQ applies the NEQ predicate on the "identification_method" field.
func IdentificationMethodNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldIdentificationMethod, v))
}

// IdentificationMethodIn applies the In predicate on the "identification_method" field.
func IdentificationMethodIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldIdentificationMethod, vs...))
}

// IdentificationMethodNotIn applies the NotIn predicate on the "identification_method" field.
func IdentificationMethodNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldIdentificationMethod, vs...))
}

// IdentificationMethodGT applies the GT predicate on the "identification_method" field.
func IdentificationMethodGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldIdentificationMethod, v))
}

// IdentificationMethodGTE applies the GTE predicate on the "identification_method" field.
func IdentificationMethodGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldIdentificationMethod, v))
}

// IdentificationMethodLT applies the LT predicate on the "identification_method" field.
func IdentificationMethodLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldIdentificationMethod, v))
}

// IdentificationMethodLTE applies the LTE predicate on the "identification_method" field.
func IdentificationMethodLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldIdentificationMethod, v))
}

// IdentificationMethodContains applies the Contains predicate on the "identification_method" field.
func IdentificationMethodContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldIdentificationMethod, v))
}

// IdentificationMethodHasPrefix applies the HasPrefix predicate on the "identification_method" field.
func IdentificationMethodHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldIdentificationMethod, v))
}

// IdentificationMethodHasSuffix applies the HasSuffix predicate on the "identification_method" field.
func IdentificationMethodHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldIdentificationMethod, v))
}

// IdentificationMethodIsNil applies the IsNil predicate on the "identification_method" field.
func IdentificationMethodIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldIdentificationMethod))
}

// IdentificationMethodNotNil applies the NotNil predicate on the "identification_method" field.
func IdentificationMethodNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldIdentificationMethod))
}

// IdentificationMethodEqualFold applies the EqualFold predicate on the "identification_method" field.
func IdentificationMethodEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldIdentificationMethod, v))
}

// IdentificationMethodContainsFold applies the ContainsFold predicate on the "identification_method" field.
func IdentificationMethodContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldIdentificationMethod, v))
}

// FullExtractedTextEQ applies the EQ predicate on the "full_extracted_text" field.
func FullExtractedTextEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldFullExtractedText, v))
}

// FullExtractedTextNEQ applies the NEQ predicate on the "full_extracted_text" field.
func FullExtractedTextNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldFullExtractedText, v))
}

// FullExtractedTextIn applies the In predicate on the "full_extracted_text" field.
func FullExtractedTextIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldFullExtractedText, vs...))
}

// FullExtractedTextNotIn applies the NotIn predicate on the "full_extracted_text" field.
func FullExtractedTextNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldFullExtractedText, vs...))
}

// FullExtractedTextGT applies the GT predicate on the "full_extracted_text" field.
func FullExtractedTextGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldFullExtractedText, v))
}

// FullExtractedTextGTE applies the GTE predicate on the "full_extracted_text" field.
func FullExtractedTextGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldFullExtractedText, v))
}

// FullExtractedTextLT applies the LT predicate on the "full_extracted_text" field.
func FullExtractedTextLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldFullExtractedText, v))
}

// FullExtractedTextLTE applies the LTE predicate on the "full_extracted_text" field.
func FullExtractedTextLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldFullExtractedText, v))
}

// FullExtractedTextContains applies the Contains predicate on the "full_extracted_text" field.
func FullExtractedTextContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldFullExtractedText, v))
}

// FullExtractedTextHasPrefix applies the HasPrefix predicate on the "full_extracted_text" field.
func FullExtractedTextHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldFullExtractedText, v))
}

// FullExtractedTextHasSuffix applies the HasSuffix predicate on the "full_extracted_text" field.
func FullExtractedTextHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldFullExtractedText, v))
}

// FullExtractedTextIsNil applies the IsNil predicate on the "full_extracted_text" field.
func FullExtractedTextIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldFullExtractedText))
}

// FullExtractedTextNotNil applies the NotNil predicate on the "full_extracted_text" field.
func FullExtractedTextNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldFullExtractedText))
}

// FullExtractedTextEqualFold applies the EqualFold predicate on the "full_extracted_text" field.
func FullExtractedTextEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldFullExtractedText, v))
}

// FullExtractedTextContainsFold applies the ContainsFold predicate on the "full_extracted_text" field.
func FullExtractedTextContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldFullExtractedText, v))
}

// CombinedExtractedTextEQ applies the EQ predicate on the "combined_extracted_text" field.
func CombinedExtractedTextEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextNEQ applies the NEQ predicate on the "combined_extracted_text" field.
func CombinedExtractedTextNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextIn applies the In predicate on the "combined_extracted_text" field.
func CombinedExtractedTextIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldCombinedExtractedText, vs...))
}

// CombinedExtractedTextNotIn applies the NotIn predicate on the "combined_extracted_text" field.
func CombinedExtractedTextNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldCombinedExtractedText, vs...))
}

// CombinedExtractedTextGT applies the GT predicate on the "combined_extracted_text" field.
func CombinedExtractedTextGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextGTE applies the GTE predicate on the "combined_extracted_text" field.
func CombinedExtractedTextGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextLT applies the LT predicate on the "combined_extracted_text" field.
func CombinedExtractedTextLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextLTE applies the LTE predicate on the "combined_extracted_text" field.
func CombinedExtractedTextLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextContains applies the Contains predicate on the "combined_extracted_text" field.
func CombinedExtractedTextContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextHasPrefix applies the HasPrefix predicate on the "combined_extracted_text" field.
func CombinedExtractedTextHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextHasSuffix applies the HasSuffix predicate on the "combined_extracted_text" field.
func CombinedExtractedTextHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextIsNil applies the IsNil predicate on the "combined_extracted_text" field.
func CombinedExtractedTextIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldCombinedExtractedText))
}

// CombinedExtractedTextNotNil applies the NotNil predicate on the "combined_extracted_text" field.
func CombinedExtractedTextNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldCombinedExtractedText))
}

// CombinedExtractedTextEqualFold applies the EqualFold predicate on the "combined_extracted_text" field.
func CombinedExtractedTextEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldCombinedExtractedText, v))
}

// CombinedExtractedTextContainsFold applies the ContainsFold predicate on the "combined_extracted_text" field.
func CombinedExtractedTextContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldCombinedExtractedText, v))
}

// CustomInstructionsEQ applies the EQ predicate on the "custom_instructions" field.
func CustomInstructionsEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldCustomInstructions, v))
}

// CustomInstructionsNEQ applies the NEQ predicate on the "custom_instructions" field.
func CustomInstructionsNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldCustomInstructions, v))
}

// CustomInstructionsIn applies the In predicate on the "custom_instructions" field.
func CustomInstructionsIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldCustomInstructions, vs...))
}

// CustomInstructionsNotIn applies the NotIn predicate on the "custom_instructions" field.
func CustomInstructionsNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldCustomInstructions, vs...))
}

// CustomInstructionsGT applies the GT predicate on the "custom_instructions" field.
func CustomInstructionsGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldCustomInstructions, v))
}

// CustomInstructionsGTE applies the GTE predicate on the "custom_instructions" field.
func CustomInstructionsGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldCustomInstructions, v))
}

// CustomInstructionsLT applies the LT predicate on the "custom_instructions" field.
func CustomInstructionsLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldCustomInstructions, v))
}

// CustomInstructionsLTE applies the LTE predicate on the "custom_instructions" field.
func CustomInstructionsLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldCustomInstructions, v))
}

// CustomInstructionsContains applies the Contains predicate on the "custom_instructions" field.
func CustomInstructionsContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldCustomInstructions, v))
}

// CustomInstructionsHasPrefix applies the HasPrefix predicate on the "custom_instructions" field.
func CustomInstructionsHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldCustomInstructions, v))
}

// CustomInstructionsHasSuffix applies the HasSuffix predicate on the "custom_instructions" field.
func CustomInstructionsHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldCustomInstructions, v))
}

// CustomInstructionsIsNil applies the IsNil predicate on the "custom_instructions" field.
func CustomInstructionsIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldCustomInstructions))
}

// CustomInstructionsNotNil applies the NotNil predicate on the "custom_instructions" field.
func CustomInstructionsNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldCustomInstructions))
}

// CustomInstructionsEqualFold applies the EqualFold predicate on the "custom_instructions" field.
func CustomInstructionsEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldCustomInstructions, v))
}

// CustomInstructionsContainsFold applies the ContainsFold predicate on the "custom_instructions" field.
func CustomInstructionsContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldCustomInstructions, v))
}

// EnableMisconductDetectionEQ applies the EQ predicate on the "enable_misconduct_detection" field.
func EnableMisconductDetectionEQ(v bool) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldEnableMisconductDetection, v))
}

// EnableMisconductDetectionNEQ applies the NEQ predicate on the "enable_misconduct_detection" field.
func EnableMisconductDetectionNEQ(v bool) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldEnableMisconductDetection, v))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldFlags))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float64) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldOverallConfidence, v))
}

// OverallConfidenceIsNil applies the IsNil predicate on the "overall_confidence" field.
func OverallConfidenceIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldOverallConfidence))
}

// OverallConfidenceNotNil applies the NotNil predicate on the "overall_confidence" field.
func OverallConfidenceNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldOverallConfidence))
}

// PredominantMethodEQ applies the EQ predicate on the "predominant_method" field.
func PredominantMethodEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldPredominantMethod, v))
}

// PredominantMethodNEQ applies the NEQ predicate on the "predominant_method" field.
func PredominantMethodNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldPredominantMethod, v))
}

// PredominantMethodIn applies the In predicate on the "predominant_method" field.
func PredominantMethodIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldPredominantMethod, vs...))
}

// PredominantMethodNotIn applies the NotIn predicate on the "predominant_method" field.
func PredominantMethodNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldPredominantMethod, vs...))
}

// PredominantMethodGT applies the GT predicate on the "predominant_method" field.
func PredominantMethodGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldPredominantMethod, v))
}

// PredominantMethodGTE applies the GTE predicate on the "predominant_method" field.
func PredominantMethodGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldPredominantMethod, v))
}

// PredominantMethodLT applies the LT predicate on the "predominant_method" field.
func PredominantMethodLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldPredominantMethod, v))
}

// PredominantMethodLTE applies the LTE predicate on the "predominant_method" field.
func PredominantMethodLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldPredominantMethod, v))
}

// PredominantMethodContains applies the Contains predicate on the "predominant_method" field.
func PredominantMethodContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldPredominantMethod, v))
}

// PredominantMethodHasPrefix applies the HasPrefix predicate on the "predominant_method" field.
func PredominantMethodHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldPredominantMethod, v))
}

// PredominantMethodHasSuffix applies the HasSuffix predicate on the "predominant_method" field.
func PredominantMethodHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldPredominantMethod, v))
}

// PredominantMethodIsNil applies the IsNil predicate on the "predominant_method" field.
func PredominantMethodIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldPredominantMethod))
}

// PredominantMethodNotNil applies the NotNil predicate on the "predominant_method" field.
func PredominantMethodNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldPredominantMethod))
}

// PredominantMethodEqualFold applies the EqualFold predicate on the "predominant_method" field.
func PredominantMethodEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldPredominantMethod, v))
}

// PredominantMethodContainsFold applies the ContainsFold predicate on the "predominant_method" field.
func PredominantMethodContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldPredominantMethod, v))
}

// ConfidenceLabelEQ applies the EQ predicate on the "confidence_label" field.
func ConfidenceLabelEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldConfidenceLabel, v))
}

// ConfidenceLabelNEQ applies the NEQ predicate on the "confidence_label" field.
func ConfidenceLabelNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldConfidenceLabel, v))
}

// ConfidenceLabelIn applies the In predicate on the "confidence_label" field.
func ConfidenceLabelIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldConfidenceLabel, vs...))
}

// ConfidenceLabelNotIn applies the NotIn predicate on the "confidence_label" field.
func ConfidenceLabelNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldConfidenceLabel, vs...))
}

// ConfidenceLabelGT applies the GT predicate on the "confidence_label" field.
func ConfidenceLabelGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldConfidenceLabel, v))
}

// ConfidenceLabelGTE applies the GTE predicate on the "confidence_label" field.
func ConfidenceLabelGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldConfidenceLabel, v))
}

// ConfidenceLabelLT applies the LT predicate on the "confidence_label" field.
func ConfidenceLabelLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldConfidenceLabel, v))
}

// ConfidenceLabelLTE applies the LTE predicate on the "confidence_label" field.
func ConfidenceLabelLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldConfidenceLabel, v))
}

// ConfidenceLabelContains applies the Contains predicate on the "confidence_label" field.
func ConfidenceLabelContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldConfidenceLabel, v))
}

// ConfidenceLabelHasPrefix applies the HasPrefix predicate on the "confidence_label" field.
func ConfidenceLabelHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldConfidenceLabel, v))
}

// ConfidenceLabelHasSuffix applies the HasSuffix predicate on the "confidence_label" field.
func ConfidenceLabelHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldConfidenceLabel, v))
}

// ConfidenceLabelIsNil applies the IsNil predicate on the "confidence_label" field.
func ConfidenceLabelIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldConfidenceLabel))
}

// ConfidenceLabelNotNil applies the NotNil predicate on the "confidence_label" field.
func ConfidenceLabelNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldConfidenceLabel))
}

// ConfidenceLabelEqualFold applies the EqualFold predicate on the "confidence_label" field.
func ConfidenceLabelEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldConfidenceLabel, v))
}

// ConfidenceLabelContainsFold applies the ContainsFold predicate on the "confidence_label" field.
func ConfidenceLabelContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldConfidenceLabel, v))
}

// ErrorReasonEQ applies the EQ predicate on the "error_reason" field.
func ErrorReasonEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldErrorReason, v))
}

// ErrorReasonNEQ applies the NEQ predicate on the "error_reason" field.
func ErrorReasonNEQ(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldErrorReason, v))
}

// ErrorReasonIn applies the In predicate on the "error_reason" field.
func ErrorReasonIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldErrorReason, vs...))
}

// ErrorReasonNotIn applies the NotIn predicate on the "error_reason" field.
func ErrorReasonNotIn(vs ...string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldErrorReason, vs...))
}

// ErrorReasonGT applies the GT predicate on the "error_reason" field.
func ErrorReasonGT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldErrorReason, v))
}

// ErrorReasonGTE applies the GTE predicate on the "error_reason" field.
func ErrorReasonGTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldErrorReason, v))
}

// ErrorReasonLT applies the LT predicate on the "error_reason" field.
func ErrorReasonLT(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldErrorReason, v))
}

// ErrorReasonLTE applies the LTE predicate on the "error_reason" field.
func ErrorReasonLTE(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldErrorReason, v))
}

// ErrorReasonContains applies the Contains predicate on the "error_reason" field.
func ErrorReasonContains(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContains(FieldErrorReason, v))
}

// ErrorReasonHasPrefix applies the HasPrefix predicate on the "error_reason" field.
func ErrorReasonHasPrefix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasPrefix(FieldErrorReason, v))
}

// ErrorReasonHasSuffix applies the HasSuffix predicate on the "error_reason" field.
func ErrorReasonHasSuffix(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldHasSuffix(FieldErrorReason, v))
}

// ErrorReasonIsNil applies the IsNil predicate on the "error_reason" field.
func ErrorReasonIsNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIsNull(FieldErrorReason))
}

// ErrorReasonNotNil applies the NotNil predicate on the "error_reason" field.
func ErrorReasonNotNil() predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotNull(FieldErrorReason))
}

// ErrorReasonEqualFold applies the EqualFold predicate on the "error_reason" field.
func ErrorReasonEqualFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEqualFold(FieldErrorReason, v))
}

// ErrorReasonContainsFold applies the ContainsFold predicate on the "error_reason" field.
func ErrorReasonContainsFold(v string) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldContainsFold(FieldErrorReason, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldUploadedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnswerScript {
	return predicate.AnswerScript(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExamination applies the HasEdge predicate on the "examination" edge.
func HasExamination() predicate.AnswerScript {
	return predicate.AnswerScript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExaminationTable, ExaminationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExaminationWith applies the HasEdge predicate on the "examination" edge with a given conditions (other predicates).
func HasExaminationWith(preds ...predicate.Examination) predicate.AnswerScript {
	return predicate.AnswerScript(func(s *sql.Selector) {
		step := newExaminationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.AnswerScript {
	return predicate.AnswerScript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.Student) predicate.AnswerScript {
	return predicate.AnswerScript(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.AnswerScript {
	return predicate.AnswerScript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.AnswerScript {
	return predicate.AnswerScript(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerScript) predicate.AnswerScript {
	return predicate.AnswerScript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerScript) predicate.AnswerScript {
	return predicate.AnswerScript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerScript) predicate.AnswerScript {
	return predicate.AnswerScript(sql.NotPredicates(p))
}
