// Code generated by ent, DO NOT EDIT.

package answerscript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the answerscript type in the database.
	Label = "answer_script"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExaminationID holds the string denoting the examination_id field in the database.
	FieldExaminationID = "examination_id"
	// FieldSchoolID holds the string denoting the school_id field in the database.
	FieldSchoolID = "school_id"
	// FieldTeacherID holds the string denoting the teacher_id field in the database.
	FieldTeacherID = "teacher_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldScriptNumber holds the string denoting the script_number field in the database.
	FieldScriptNumber = "script_number"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldIdentificationMethod holds the string denoting the identification_method field in the database.
	FieldIdentificationMethod = "identification_method"
	// FieldFullExtractedText holds the string denoting the full_extracted_text field in the database.
	FieldFullExtractedText = "full_extracted_text"
	// FieldCombinedExtractedText holds the string denoting the combined_extracted_text field in the database.
	FieldCombinedExtractedText = "combined_extracted_text"
	// FieldCustomInstructions holds the string denoting the custom_instructions field in the database.
	FieldCustomInstructions = "custom_instructions"
	// FieldEnableMisconductDetection holds the string denoting the enable_misconduct_detection field in the database.
	FieldEnableMisconductDetection = "enable_misconduct_detection"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldPredominantMethod holds the string denoting the predominant_method field in the database.
	FieldPredominantMethod = "predominant_method"
	// FieldConfidenceLabel holds the string denoting the confidence_label field in the database.
	FieldConfidenceLabel = "confidence_label"
	// FieldErrorReason holds the string denoting the error_reason field in the database.
	FieldErrorReason = "error_reason"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExamination holds the string denoting the examination edge name in mutations.
	EdgeExamination = "examination"
	// EdgeStudent holds the string denoting the student edge name in mutations.
	EdgeStudent = "student"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the answerscript in the database.
	Table = "answer_scripts"
	// ExaminationTable is the table that holds the examination relation/edge.
	ExaminationTable = "answer_scripts"
	// ExaminationInverseTable is the table name for the Examination entity.
	// It exists in this package in order to avoid circular dependency with the "examination" package.
	ExaminationInverseTable = "examinations"
	// ExaminationColumn is the table column denoting the examination relation/edge.
	ExaminationColumn = "examination_id"
	// StudentTable is the table that holds the student relation/edge.
	StudentTable = "answer_scripts"
	// StudentInverseTable is the table name for the Student entity.
	// It exists in this package in order to avoid circular dependency with the "student" package.
	StudentInverseTable = "students"
	// StudentColumn is the table column denoting the student relation/edge.
	StudentColumn = "student_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answers"
	// AnswersInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswersInverseTable = "answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "answer_script_id"
)

// Columns holds all SQL columns for answerscript fields.
var Columns = []string{
	FieldID,
	FieldExaminationID,
	FieldSchoolID,
	FieldTeacherID,
	FieldStudentID,
	FieldImagePath,
	FieldContentHash,
	FieldScriptNumber,
	FieldProcessingStatus,
	FieldVersion,
	FieldIdentificationMethod,
	FieldFullExtractedText,
	FieldCombinedExtractedText,
	FieldCustomInstructions,
	FieldEnableMisconductDetection,
	FieldFlags,
	FieldOverallConfidence,
	FieldPredominantMethod,
	FieldConfidenceLabel,
	FieldErrorReason,
	FieldUploadedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	ImagePathValidator func(string) error
	// DefaultScriptNumber holds the default value on creation for the "script_number" field.
	DefaultScriptNumber int
	// ScriptNumberValidator is a validator for the "script_number" field. It is called by the builders before save.
	ScriptNumberValidator func(int) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// IdentificationMethodValidator is a validator for the "identification_method" field. It is called by the builders before save.
	IdentificationMethodValidator func(string) error
	// DefaultEnableMisconductDetection holds the default value on creation for the "enable_misconduct_detection" field.
	DefaultEnableMisconductDetection bool
	// PredominantMethodValidator is a validator for the "predominant_method" field. It is called by the builders before save.
	PredominantMethodValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AnswerScript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExaminationID orders the results by the examination_id field.
func ByExaminationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExaminationID, opts...).ToFunc()
}

// BySchoolID orders the results by the school_id field.
func BySchoolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchoolID, opts...).ToFunc()
}

// ByTeacherID orders the results by the teacher_id field.
func ByTeacherID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeacherID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByScriptNumber orders the results by the script_number field.
func ByScriptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptNumber, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByIdentificationMethod orders the results by the identification_method field.
func ByIdentificationMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentificationMethod, opts...).ToFunc()
}

// ByFullExtractedText orders the results by the full_extracted_text field.
func ByFullExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullExtractedText, opts...).ToFunc()
}

// ByCombinedExtractedText orders the results by the combined_extracted_text field.
func ByCombinedExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCombinedExtractedText, opts...).ToFunc()
}

// ByCustomInstructions orders the results by the custom_instructions field.
func ByCustomInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomInstructions, opts...).ToFunc()
}

// ByEnableMisconductDetection orders the results by the enable_misconduct_detection field.
func ByEnableMisconductDetection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableMisconductDetection, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByPredominantMethod orders the results by the predominant_method field.
func ByPredominantMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredominantMethod, opts...).ToFunc()
}

// ByConfidenceLabel orders the results by the confidence_label field.
func ByConfidenceLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLabel, opts...).ToFunc()
}

// ByErrorReason orders the results by the error_reason field.
func ByErrorReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorReason, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExaminationField orders the results by examination field.
func ByExaminationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExaminationStep(), sql.OrderByField(field, opts...))
	}
}

// ByStudentField orders the results by student field.
func ByStudentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExaminationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExaminationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExaminationTable, ExaminationColumn),
	)
}
func newStudentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
