// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// AnswerScriptID applies equality check predicate on the "answer_script_id" field. It's identical to AnswerScriptIDEQ.
func AnswerScriptID(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerScriptID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldExtractedText, v))
}

// SegmentationConfidence applies equality check predicate on the "segmentation_confidence" field. It's identical to SegmentationConfidenceEQ.
func SegmentationConfidence(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSegmentationConfidence, v))
}

// SegmentationMethod applies equality check predicate on the "segmentation_method" field. It's identical to SegmentationMethodEQ.
func SegmentationMethod(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSegmentationMethod, v))
}

// AssignedGrade applies equality check predicate on the "assigned_grade" field. It's identical to AssignedGradeEQ.
func AssignedGrade(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAssignedGrade, v))
}

// ManualGrade applies equality check predicate on the "manual_grade" field. It's identical to ManualGradeEQ.
func ManualGrade(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldManualGrade, v))
}

// IsOverridden applies equality check predicate on the "is_overridden" field. It's identical to IsOverriddenEQ.
func IsOverridden(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldIsOverridden, v))
}

// OverrideJustification applies equality check predicate on the "override_justification" field. It's identical to OverrideJustificationEQ.
func OverrideJustification(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldOverrideJustification, v))
}

// LlmExplanation applies equality check predicate on the "llm_explanation" field. It's identical to LlmExplanationEQ.
func LlmExplanation(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldLlmExplanation, v))
}

// Superseded applies equality check predicate on the "superseded" field. It's identical to SupersededEQ.
func Superseded(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSuperseded, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUpdatedAt, v))
}

// AnswerScriptIDEQ applies the EQ predicate on the "answer_script_id" field.
func AnswerScriptIDEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnswerScriptID, v))
}

// AnswerScriptIDNEQ applies the NEQ predicate on the "answer_script_id" field.
func AnswerScriptIDNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAnswerScriptID, v))
}

// AnswerScriptIDIn applies the In predicate on the "answer_script_id" field.
func AnswerScriptIDIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAnswerScriptID, vs...))
}

// AnswerScriptIDNotIn applies the NotIn predicate on the "answer_script_id" field.
func AnswerScriptIDNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAnswerScriptID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldExtractedText, v))
}

// SegmentationConfidenceEQ applies the EQ predicate on the "segmentation_confidence" field.
func SegmentationConfidenceEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSegmentationConfidence, v))
}

// SegmentationConfidenceNEQ applies the NEQ predicate on the "segmentation_confidence" field.
func SegmentationConfidenceNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSegmentationConfidence, v))
}

// SegmentationConfidenceIn applies the In predicate on the "segmentation_confidence" field.
func SegmentationConfidenceIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSegmentationConfidence, vs...))
}

// SegmentationConfidenceNotIn applies the NotIn predicate on the "segmentation_confidence" field.
func SegmentationConfidenceNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSegmentationConfidence, vs...))
}

// SegmentationConfidenceGT applies the GT predicate on the "segmentation_confidence" field.
func SegmentationConfidenceGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldSegmentationConfidence, v))
}

// SegmentationConfidenceGTE applies the GTE predicate on the "segmentation_confidence" field.
func SegmentationConfidenceGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldSegmentationConfidence, v))
}

// SegmentationConfidenceLT applies the LT predicate on the "segmentation_confidence" field.
func SegmentationConfidenceLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldSegmentationConfidence, v))
}

// SegmentationConfidenceLTE applies the LTE predicate on the "segmentation_confidence" field.
func SegmentationConfidenceLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldSegmentationConfidence, v))
}

// SegmentationConfidenceIsNil applies the IsNil predicate on the "segmentation_confidence" field.
func SegmentationConfidenceIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldSegmentationConfidence))
}

// SegmentationConfidenceNotNil applies the NotNil predicate on the "segmentation_confidence" field.
func SegmentationConfidenceNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldSegmentationConfidence))
}

// SegmentationMethodEQ applies the EQ predicate on the "segmentation_method" field.
func SegmentationMethodEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSegmentationMethod, v))
}

// SegmentationMethodNEQ applies the NEQ predicate on the "segmentation_method" field.
func SegmentationMethodNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSegmentationMethod, v))
}

// SegmentationMethodIn applies the In predicate on the "segmentation_method" field.
func SegmentationMethodIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSegmentationMethod, vs...))
}

// SegmentationMethodNotIn applies the NotIn predicate on the "segmentation_method" field.
func SegmentationMethodNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSegmentationMethod, vs...))
}

// SegmentationMethodGT applies the GT predicate on the "segmentation_method" field.
func SegmentationMethodGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldSegmentationMethod, v))
}

// SegmentationMethodGTE applies the GTE predicate on the "segmentation_method" field.
func SegmentationMethodGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldSegmentationMethod, v))
}

// SegmentationMethodLT applies the LT predicate on the "segmentation_method" field.
func SegmentationMethodLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldSegmentationMethod, v))
}

// SegmentationMethodLTE applies the LTE predicate on the "segmentation_method" field.
func SegmentationMethodLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldSegmentationMethod, v))
}

// SegmentationMethodContains applies the Contains predicate on the "segmentation_method" field.
func SegmentationMethodContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldSegmentationMethod, v))
}

// SegmentationMethodHasPrefix applies the HasPrefix predicate on the "segmentation_method" field.
func SegmentationMethodHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldSegmentationMethod, v))
}

// SegmentationMethodHasSuffix applies the HasSuffix predicate on the "segmentation_method" field.
func SegmentationMethodHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldSegmentationMethod, v))
}

// SegmentationMethodIsNil applies the IsNil predicate on the "segmentation_method" field.
func SegmentationMethodIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldSegmentationMethod))
}

// SegmentationMethodNotNil applies the NotNil predicate on the "segmentation_method" field.
func SegmentationMethodNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldSegmentationMethod))
}

// SegmentationMethodEqualFold applies the EqualFold predicate on the "segmentation_method" field.
func SegmentationMethodEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldSegmentationMethod, v))
}

// SegmentationMethodContainsFold applies the ContainsFold predicate on the "segmentation_method" field.
func SegmentationMethodContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldSegmentationMethod, v))
}

// AssignedGradeEQ applies the EQ predicate on the "assigned_grade" field.
func AssignedGradeEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAssignedGrade, v))
}

// AssignedGradeNEQ applies the NEQ predicate on the "assigned_grade" field.
func AssignedGradeNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAssignedGrade, v))
}

// AssignedGradeIn applies the In predicate on the "assigned_grade" field.
func AssignedGradeIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAssignedGrade, vs...))
}

// AssignedGradeNotIn applies the NotIn predicate on the "assigned_grade" field.
func AssignedGradeNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAssignedGrade, vs...))
}

// AssignedGradeGT applies the GT predicate on the "assigned_grade" field.
func AssignedGradeGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldAssignedGrade, v))
}

// AssignedGradeGTE applies the GTE predicate on the "assigned_grade" field.
func AssignedGradeGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldAssignedGrade, v))
}

// AssignedGradeLT applies the LT predicate on the "assigned_grade" field.
func AssignedGradeLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldAssignedGrade, v))
}

// AssignedGradeLTE applies the LTE predicate on the "assigned_grade" field.
func AssignedGradeLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldAssignedGrade, v))
}

// AssignedGradeIsNil applies the IsNil predicate on the "assigned_grade" field.
func AssignedGradeIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldAssignedGrade))
}

// AssignedGradeNotNil applies the NotNil predicate on the "assigned_grade" field.
func AssignedGradeNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldAssignedGrade))
}

// ManualGradeEQ applies the EQ predicate on the "manual_grade" field.
func ManualGradeEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldManualGrade, v))
}

// ManualGradeNEQ applies the NEQ predicate on the "manual_grade" field.
func ManualGradeNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldManualGrade, v))
}

// ManualGradeIn applies the In predicate on the "manual_grade" field.
func ManualGradeIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldManualGrade, vs...))
}

// ManualGradeNotIn applies the NotIn predicate on the "manual_grade" field.
func ManualGradeNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldManualGrade, vs...))
}

// ManualGradeGT applies the GT predicate on the "manual_grade" field.
func ManualGradeGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldManualGrade, v))
}

// ManualGradeGTE applies the GTE predicate on the "manual_grade" field.
func ManualGradeGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldManualGrade, v))
}

// ManualGradeLT applies the LT predicate on the "manual_grade" field.
func ManualGradeLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldManualGrade, v))
}

// ManualGradeLTE applies the LTE predicate on the "manual_grade" field.
func ManualGradeLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldManualGrade, v))
}

// ManualGradeIsNil applies the IsNil predicate on the "manual_grade" field.
func ManualGradeIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldManualGrade))
}

// ManualGradeNotNil applies the NotNil predicate on the "manual_grade" field.
func ManualGradeNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldManualGrade))
}

// IsOverriddenEQ applies the EQ predicate on the "is_overridden" field.
func IsOverriddenEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldIsOverridden, v))
}

// IsOverriddenNEQ applies the NEQ predicate on the "is_overridden" field.
func IsOverriddenNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldIsOverridden, v))
}

// OverrideJustificationEQ applies the EQ predicate on the "override_justification" field.
func OverrideJustificationEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldOverrideJustification, v))
}

// OverrideJustificationNEQ applies the NEQ predicate on the "override_justification" field.
func OverrideJustificationNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldOverrideJustification, v))
}

// OverrideJustificationIn applies the In predicate on the "override_justification" field.
func OverrideJustificationIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldOverrideJustification, vs...))
}

// OverrideJustificationNotIn applies the NotIn predicate on the "override_justification" field.
func OverrideJustificationNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldOverrideJustification, vs...))
}

// OverrideJustificationGT applies the GT predicate on the "override_justification" field.
func OverrideJustificationGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldOverrideJustification, v))
}

// OverrideJustificationGTE applies the GTE predicate on the "override_justification" field.
func OverrideJustificationGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldOverrideJustification, v))
}

// OverrideJustificationLT applies the LT predicate on the "override_justification" field.
func OverrideJustificationLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldOverrideJustification, v))
}

// OverrideJustificationLTE applies the LTE predicate on the "override_justification" field.
func OverrideJustificationLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldOverrideJustification, v))
}

// OverrideJustificationContains applies the Contains predicate on the "override_justification" field.
func OverrideJustificationContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldOverrideJustification, v))
}

// OverrideJustificationHasPrefix applies the HasPrefix predicate on the "override_justification" field.
func OverrideJustificationHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldOverrideJustification, v))
}

// OverrideJustificationHasSuffix applies the HasSuffix predicate on the "override_justification" field.
func OverrideJustificationHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldOverrideJustification, v))
}

// OverrideJustificationIsNil applies the IsNil predicate on the "override_justification" field.
func OverrideJustificationIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldOverrideJustification))
}

// OverrideJustificationNotNil applies the NotNil predicate on the "override_justification" field.
func OverrideJustificationNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldOverrideJustification))
}

// OverrideJustificationEqualFold applies the EqualFold predicate on the "override_justification" field.
func OverrideJustificationEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldOverrideJustification, v))
}

// OverrideJustificationContainsFold applies the ContainsFold predicate on the "override_justification" field.
func OverrideJustificationContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldOverrideJustification, v))
}

// LlmExplanationEQ applies the EQ predicate on the "llm_explanation" field.
func LlmExplanationEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldLlmExplanation, v))
}

// LlmExplanationNEQ applies the NEQ predicate on the "llm_explanation" field.
func LlmExplanationNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldLlmExplanation, v))
}

// LlmExplanationIn applies the In predicate on the "llm_explanation" field.
func LlmExplanationIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldLlmExplanation, vs...))
}

// LlmExplanationNotIn applies the NotIn predicate on the "llm_explanation" field.
func LlmExplanationNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldLlmExplanation, vs...))
}

// LlmExplanationGT applies the GT predicate on the "llm_explanation" field.
func LlmExplanationGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldLlmExplanation, v))
}

// LlmExplanationGTE applies the GTE predicate on the "llm_explanation" field.
func LlmExplanationGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldLlmExplanation, v))
}

// LlmExplanationLT applies the LT predicate on the "llm_explanation" field.
func LlmExplanationLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldLlmExplanation, v))
}

// LlmExplanationLTE applies the LTE predicate on the "llm_explanation" field.
func LlmExplanationLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldLlmExplanation, v))
}

// LlmExplanationContains applies the Contains predicate on the "llm_explanation" field.
func LlmExplanationContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldLlmExplanation, v))
}

// LlmExplanationHasPrefix applies the HasPrefix predicate on the "llm_explanation" field.
func LlmExplanationHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldLlmExplanation, v))
}

// LlmExplanationHasSuffix applies the HasSuffix predicate on the "llm_explanation" field.
func LlmExplanationHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldLlmExplanation, v))
}

// LlmExplanationIsNil applies the IsNil predicate on the "llm_explanation" field.
func LlmExplanationIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldLlmExplanation))
}

// LlmExplanationNotNil applies the NotNil predicate on the "llm_explanation" field.
func LlmExplanationNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldLlmExplanation))
}

// LlmExplanationEqualFold applies the EqualFold predicate on the "llm_explanation" field.
func LlmExplanationEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldLlmExplanation, v))
}

// LlmExplanationContainsFold applies the ContainsFold predicate on the "llm_explanation" field.
func LlmExplanationContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldLlmExplanation, v))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldFlags))
}

// SpatialLocationIsNil applies the IsNil predicate on the "spatial_location" field.
func SpatialLocationIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldSpatialLocation))
}

// SpatialLocationNotNil applies the NotNil predicate on the "spatial_location" field.
func SpatialLocationNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldSpatialLocation))
}

// SupersededEQ applies the EQ predicate on the "superseded" field.
func SupersededEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSuperseded, v))
}

// SupersededNEQ applies the NEQ predicate on the "superseded" field.
func SupersededNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSuperseded, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasScript applies the HasEdge predicate on the "script" edge.
func HasScript() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScriptTable, ScriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScriptWith applies the HasEdge predicate on the "script" edge with a given conditions (other predicates).
func HasScriptWith(preds ...predicate.AnswerScript) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newScriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
