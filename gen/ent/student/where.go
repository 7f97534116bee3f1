// Code generated by ent, DO NOT EDIT.

package student

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldID, id))
}

// SchoolID applies equality check predicate on the "school_id" field. It's identical to SchoolIDEQ.
func SchoolID(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSchoolID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// StudentCode applies equality check predicate on the "student_code" field. It's identical to StudentCodeEQ.
func StudentCode(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldStudentCode, v))
}

// SchoolIDEQ applies the EQ predicate on the "school_id" field.
func SchoolIDEQ(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldSchoolID, v))
}

// SchoolIDNEQ applies the NEQ predicate on the "school_id" field.
func SchoolIDNEQ(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldSchoolID, v))
}

// SchoolIDIn applies the In predicate on the "school_id" field.
func SchoolIDIn(vs ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldSchoolID, vs...))
}

// SchoolIDNotIn applies the NotIn predicate on the "school_id" field.
func SchoolIDNotIn(vs ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldSchoolID, vs...))
}

// SchoolIDGT applies the GT predicate on the "school_id" field.
func SchoolIDGT(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldSchoolID, v))
}

// SchoolIDGTE applies the GTE predicate on the "school_id" field.
func SchoolIDGTE(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldSchoolID, v))
}

// SchoolIDLT applies the LT predicate on the "school_id" field.
func SchoolIDLT(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldSchoolID, v))
}

// SchoolIDLTE applies the LTE predicate on the "school_id" field.
func SchoolIDLTE(v uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldSchoolID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldName, v))
}

// StudentCodeEQ applies the EQ predicate on the "student_code" field.
func StudentCodeEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldStudentCode, v))
}

// StudentCodeNEQ applies the NEQ predicate on the "student_code" field.
func StudentCodeNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldStudentCode, v))
}

// StudentCodeIn applies the In predicate on the "student_code" field.
func StudentCodeIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldStudentCode, vs...))
}

// StudentCodeNotIn applies the NotIn predicate on the "student_code" field.
func StudentCodeNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldStudentCode, vs...))
}

// StudentCodeGT applies the GT predicate on the "student_code" field.
func StudentCodeGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldStudentCode, v))
}

// StudentCodeGTE applies the GTE predicate on the "student_code" field.
func StudentCodeGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldStudentCode, v))
}

// StudentCodeLT applies the LT predicate on the "student_code" field.
func StudentCodeLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldStudentCode, v))
}

// StudentCodeLTE applies the LTE predicate on the "student_code" field.
func StudentCodeLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldStudentCode, v))
}

// StudentCodeContains applies the Contains predicate on the "student_code" field.
func StudentCodeContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldStudentCode, v))
}

// StudentCodeHasPrefix applies the HasPrefix predicate on the "student_code" field.
func StudentCodeHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldStudentCode, v))
}

// StudentCodeHasSuffix applies the HasSuffix predicate on the "student_code" field.
func StudentCodeHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldStudentCode, v))
}

// StudentCodeEqualFold applies the EqualFold predicate on the "student_code" field.
func StudentCodeEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldStudentCode, v))
}

// StudentCodeContainsFold applies the ContainsFold predicate on the "student_code" field.
func StudentCodeContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldStudentCode, v))
}

// HasScripts applies the HasEdge predicate on the "scripts" edge.
func HasScripts() predicate.Student {
	return predicate.Student(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScriptsTable, ScriptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScriptsWith applies the HasEdge predicate on the "scripts" edge with a given conditions (other predicates).
func HasScriptsWith(preds ...predicate.AnswerScript) predicate.Student {
	return predicate.Student(func(s *sql.Selector) {
		step := newScriptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Student) predicate.Student {
	return predicate.Student(sql.NotPredicates(p))
}
