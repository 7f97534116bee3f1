// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/db/ent/schema"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescSegmentationConfidence is the schema descriptor for segmentation_confidence field.
	answerDescSegmentationConfidence := answerFields[4].Descriptor()
	// answer.SegmentationConfidenceValidator is a validator for the "segmentation_confidence" field. It is called by the builders before save.
	answer.SegmentationConfidenceValidator = answerDescSegmentationConfidence.Validators[0].(func(float64) error)
	// answerDescSegmentationMethod is the schema descriptor for segmentation_method field.
	answerDescSegmentationMethod := answerFields[5].Descriptor()
	// answer.SegmentationMethodValidator is a validator for the "segmentation_method" field. It is called by the builders before save.
	answer.SegmentationMethodValidator = answerDescSegmentationMethod.Validators[0].(func(string) error)
	// answerDescIsOverridden is the schema descriptor for is_overridden field.
	answerDescIsOverridden := answerFields[8].Descriptor()
	// answer.DefaultIsOverridden holds the default value on creation for the is_overridden field.
	answer.DefaultIsOverridden = answerDescIsOverridden.Default.(bool)
	// answerDescSuperseded is the schema descriptor for superseded field.
	answerDescSuperseded := answerFields[13].Descriptor()
	// answer.DefaultSuperseded holds the default value on creation for the superseded field.
	answer.DefaultSuperseded = answerDescSuperseded.Default.(bool)
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[14].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	// answerDescUpdatedAt is the schema descriptor for updated_at field.
	answerDescUpdatedAt := answerFields[15].Descriptor()
	// answer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	answer.DefaultUpdatedAt = answerDescUpdatedAt.Default.(func() time.Time)
	// answer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	answer.UpdateDefaultUpdatedAt = answerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerFields[0].Descriptor()
	// answer.DefaultID holds the default value on creation for the id field.
	answer.DefaultID = answerDescID.Default.(func() uuid.UUID)
	answerscriptFields := schema.AnswerScript{}.Fields()
	_ = answerscriptFields
	// answerscriptDescImagePath is the schema descriptor for image_path field.
	answerscriptDescImagePath := answerscriptFields[5].Descriptor()
	// answerscript.ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	answerscript.ImagePathValidator = answerscriptDescImagePath.Validators[0].(func(string) error)
	// answerscriptDescScriptNumber is the schema descriptor for script_number field.
	answerscriptDescScriptNumber := answerscriptFields[7].Descriptor()
	// answerscript.DefaultScriptNumber holds the default value on creation for the script_number field.
	answerscript.DefaultScriptNumber = answerscriptDescScriptNumber.Default.(int)
	// answerscript.ScriptNumberValidator is a validator for the "script_number" field. It is called by the builders before save.
	answerscript.ScriptNumberValidator = answerscriptDescScriptNumber.Validators[0].(func(int) error)
	// answerscriptDescProcessingStatus is the schema descriptor for processing_status field.
	answerscriptDescProcessingStatus := answerscriptFields[8].Descriptor()
	// answerscript.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	answerscript.DefaultProcessingStatus = answerscriptDescProcessingStatus.Default.(string)
	// answerscript.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	answerscript.ProcessingStatusValidator = answerscriptDescProcessingStatus.Validators[0].(func(string) error)
	// answerscriptDescVersion is the schema descriptor for version field.
	answerscriptDescVersion := answerscriptFields[9].Descriptor()
	// answerscript.DefaultVersion holds the default value on creation for the version field.
	answerscript.DefaultVersion = answerscriptDescVersion.Default.(int)
	// answerscript.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	answerscript.VersionValidator = answerscriptDescVersion.Validators[0].(func(int) error)
	// answerscriptDescIdentificationMethod is the schema descriptor for identification_method field.
	answerscriptDescIdentificationMethod := answerscriptFields[10].Descriptor()
	// answerscript.IdentificationMethodValidator is a validator for the "identification_method" field. It is called by the builders before save.
	answerscript.IdentificationMethodValidator = answerscriptDescIdentificationMethod.Validators[0].(func(string) error)
	// answerscriptDescEnableMisconductDetection is the schema descriptor for enable_misconduct_detection field.
	answerscriptDescEnableMisconductDetection := answerscriptFields[14].Descriptor()
	// answerscript.DefaultEnableMisconductDetection holds the default value on creation for the enable_misconduct_detection field.
	answerscript.DefaultEnableMisconductDetection = answerscriptDescEnableMisconductDetection.Default.(bool)
	// answerscriptDescPredominantMethod is the schema descriptor for predominant_method field.
	answerscriptDescPredominantMethod := answerscriptFields[17].Descriptor()
	// answerscript.PredominantMethodValidator is a validator for the "predominant_method" field. It is called by the builders before save.
	answerscript.PredominantMethodValidator = answerscriptDescPredominantMethod.Validators[0].(func(string) error)
	// answerscriptDescUploadedAt is the schema descriptor for uploaded_at field.
	answerscriptDescUploadedAt := answerscriptFields[20].Descriptor()
	// answerscript.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	answerscript.DefaultUploadedAt = answerscriptDescUploadedAt.Default.(func() time.Time)
	// answerscriptDescUpdatedAt is the schema descriptor for updated_at field.
	answerscriptDescUpdatedAt := answerscriptFields[21].Descriptor()
	// answerscript.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	answerscript.DefaultUpdatedAt = answerscriptDescUpdatedAt.Default.(func() time.Time)
	// answerscript.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	answerscript.UpdateDefaultUpdatedAt = answerscriptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// answerscriptDescID is the schema descriptor for id field.
	answerscriptDescID := answerscriptFields[0].Descriptor()
	// answerscript.DefaultID holds the default value on creation for the id field.
	answerscript.DefaultID = answerscriptDescID.Default.(func() uuid.UUID)
	examinationFields := schema.Examination{}.Fields()
	_ = examinationFields
	// examinationDescTitle is the schema descriptor for title field.
	examinationDescTitle := examinationFields[3].Descriptor()
	// examination.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	examination.TitleValidator = examinationDescTitle.Validators[0].(func(string) error)
	// examinationDescCreatedAt is the schema descriptor for created_at field.
	examinationDescCreatedAt := examinationFields[5].Descriptor()
	// examination.DefaultCreatedAt holds the default value on creation for the created_at field.
	examination.DefaultCreatedAt = examinationDescCreatedAt.Default.(func() time.Time)
	// examinationDescID is the schema descriptor for id field.
	examinationDescID := examinationFields[0].Descriptor()
	// examination.DefaultID holds the default value on creation for the id field.
	examination.DefaultID = examinationDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionNumber is the schema descriptor for question_number field.
	questionDescQuestionNumber := questionFields[2].Descriptor()
	// question.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	question.QuestionNumberValidator = questionDescQuestionNumber.Validators[0].(func(int) error)
	// questionDescModelAnswerSource is the schema descriptor for model_answer_source field.
	questionDescModelAnswerSource := questionFields[5].Descriptor()
	// question.DefaultModelAnswerSource holds the default value on creation for the model_answer_source field.
	question.DefaultModelAnswerSource = questionDescModelAnswerSource.Default.(string)
	// question.ModelAnswerSourceValidator is a validator for the "model_answer_source" field. It is called by the builders before save.
	question.ModelAnswerSourceValidator = questionDescModelAnswerSource.Validators[0].(func(string) error)
	// questionDescMarks is the schema descriptor for marks field.
	questionDescMarks := questionFields[6].Descriptor()
	// question.MarksValidator is a validator for the "marks" field. It is called by the builders before save.
	question.MarksValidator = questionDescMarks.Validators[0].(func(float64) error)
	// questionDescTolerance is the schema descriptor for tolerance field.
	questionDescTolerance := questionFields[7].Descriptor()
	// question.DefaultTolerance holds the default value on creation for the tolerance field.
	question.DefaultTolerance = questionDescTolerance.Default.(float64)
	// question.ToleranceValidator is a validator for the "tolerance" field. It is called by the builders before save.
	question.ToleranceValidator = questionDescTolerance.Validators[0].(func(float64) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[2].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescStudentCode is the schema descriptor for student_code field.
	studentDescStudentCode := studentFields[3].Descriptor()
	// student.StudentCodeValidator is a validator for the "student_code" field. It is called by the builders before save.
	student.StudentCodeValidator = studentDescStudentCode.Validators[0].(func(string) error)
	// studentDescID is the schema descriptor for id field.
	studentDescID := studentFields[0].Descriptor()
	// student.DefaultID holds the default value on creation for the id field.
	student.DefaultID = studentDescID.Default.(func() uuid.UUID)
}
