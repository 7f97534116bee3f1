// Code generated by ent, DO NOT EDIT.

package student

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the student type in the database.
	Label = "student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSchoolID holds the string denoting the school_id field in the database.
	FieldSchoolID = "school_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStudentCode holds the string denoting the student_code field in the database.
	FieldStudentCode = "student_code"
	// EdgeScripts holds the string denoting the scripts edge name in mutations.
	EdgeScripts = "scripts"
	// Table holds the table name of the student in the database.
	Table = "students"
	// ScriptsTable is the table that holds the scripts relation/edge.
	ScriptsTable = "answer_scripts"
	// ScriptsInverseTable is the table name for the AnswerScript entity.
	// It exists in this package in order to avoid circular dependency with the "answerscript" package.
	ScriptsInverseTable = "answer_scripts"
	// ScriptsColumn is the table column denoting the scripts relation/edge.
	ScriptsColumn = "student_id"
)

// Columns holds all SQL columns for student fields.
var Columns = []string{
	FieldID,
	FieldSchoolID,
	FieldName,
	FieldStudentCode,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// StudentCodeValidator is a validator for the "student_code" field. It is called by the builders before save.
	StudentCodeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Student queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySchoolID orders the results by the school_id field.
func BySchoolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchoolID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStudentCode orders the results by the student_code field.
func ByStudentCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentCode, opts...).ToFunc()
}

// ByScriptsCount orders the results by scripts count.
func ByScriptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScriptsStep(), opts...)
	}
}

// ByScripts orders the results by scripts terms.
func ByScripts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScriptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScriptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScriptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScriptsTable, ScriptsColumn),
	)
}
