// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// ExaminationID applies equality check predicate on the "examination_id" field. It's identical to ExaminationIDEQ.
func ExaminationID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExaminationID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionNumber, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// ModelAnswer applies equality check predicate on the "model_answer" field. It's identical to ModelAnswerEQ.
func ModelAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldModelAnswer, v))
}

// ModelAnswerSource applies equality check predicate on the "model_answer_source" field. It's identical to ModelAnswerSourceEQ.
func ModelAnswerSource(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldModelAnswerSource, v))
}

// Marks applies equality check predicate on the "marks" field. It's identical to MarksEQ.
func Marks(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMarks, v))
}

// Tolerance applies equality check predicate on the "tolerance" field. It's identical to ToleranceEQ.
func Tolerance(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTolerance, v))
}

// ExaminationIDEQ applies the EQ predicate on the "examination_id" field.
func ExaminationIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExaminationID, v))
}

// ExaminationIDNEQ applies the NEQ predicate on the "examination_id" field.
func ExaminationIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExaminationID, v))
}

// ExaminationIDIn applies the In predicate on the "examination_id" field.
func ExaminationIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExaminationID, vs...))
}

// ExaminationIDNotIn applies the NotIn predicate on the "examination_id" field.
func ExaminationIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExaminationID, vs...))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionNumber, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldText, v))
}

// ModelAnswerEQ applies the EQ predicate on the "model_answer" field.
func ModelAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldModelAnswer, v))
}

// ModelAnswerNEQ applies the NEQ predicate on the "model_answer" field.
func ModelAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldModelAnswer, v))
}

// ModelAnswerIn applies the In predicate on the "model_answer" field.
func ModelAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldModelAnswer, vs...))
}

// ModelAnswerNotIn applies the NotIn predicate on the "model_answer" field.
func ModelAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldModelAnswer, vs...))
}

// ModelAnswerGT applies the GT predicate on the "model_answer" field.
func ModelAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldModelAnswer, v))
}

// ModelAnswerGTE applies the GTE predicate on the "model_answer" field.
func ModelAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldModelAnswer, v))
}

// ModelAnswerLT applies the LT predicate on the "model_answer" field.
func ModelAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldModelAnswer, v))
}

// ModelAnswerLTE applies the LTE predicate on the "model_answer" field.
func ModelAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldModelAnswer, v))
}

// ModelAnswerContains applies the Contains predicate on the "model_answer" field.
func ModelAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldModelAnswer, v))
}

// ModelAnswerHasPrefix applies the HasPrefix predicate on the "model_answer" field.
func ModelAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldModelAnswer, v))
}

// ModelAnswerHasSuffix applies the HasSuffix predicate on the "model_answer" field.
func ModelAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldModelAnswer, v))
}

// ModelAnswerEqualFold applies the EqualFold predicate on the "model_answer" field.
func ModelAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldModelAnswer, v))
}

// ModelAnswerContainsFold applies the ContainsFold predicate on the "model_answer" field.
func ModelAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldModelAnswer, v))
}

// ModelAnswerSourceEQ applies the EQ predicate on the "model_answer_source" field.
func ModelAnswerSourceEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldModelAnswerSource, v))
}

// ModelAnswerSourceNEQ applies the NEQ predicate on the "model_answer_source" field.
func ModelAnswerSourceNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldModelAnswerSource, v))
}

// ModelAnswerSourceIn applies the In predicate on the "model_answer_source" field.
func ModelAnswerSourceIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldModelAnswerSource, vs...))
}

// ModelAnswerSourceNotIn applies the NotIn predicate on the "model_answer_source" field.
func ModelAnswerSourceNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldModelAnswerSource, vs...))
}

// ModelAnswerSourceGT applies the GT predicate on the "model_answer_source" field.
func ModelAnswerSourceGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldModelAnswerSource, v))
}

// ModelAnswerSourceGTE applies the GTE predicate on the "model_answer_source" field.
func ModelAnswerSourceGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldModelAnswerSource, v))
}

// ModelAnswerSourceLT applies the LT predicate on the "model_answer_source" field.
func ModelAnswerSourceLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldModelAnswerSource, v))
}

// ModelAnswerSourceLTE applies the LTE predicate on the "model_answer_source" field.
func ModelAnswerSourceLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldModelAnswerSource, v))
}

// ModelAnswerSourceContains applies the Contains predicate on the "model_answer_source" field.
func ModelAnswerSourceContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldModelAnswerSource, v))
}

// ModelAnswerSourceHasPrefix applies the HasPrefix predicate on the "model_answer_source" field.
func ModelAnswerSourceHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldModelAnswerSource, v))
}

// ModelAnswerSourceHasSuffix applies the HasSuffix predicate on the "model_answer_source" field.
func ModelAnswerSourceHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldModelAnswerSource, v))
}

// ModelAnswerSourceEqualFold applies the EqualFold predicate on the "model_answer_source" field.
func ModelAnswerSourceEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldModelAnswerSource, v))
}

// ModelAnswerSourceContainsFold applies the ContainsFold predicate on the "model_answer_source" field.
func ModelAnswerSourceContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldModelAnswerSource, v))
}

// MarksEQ applies the EQ predicate on the "marks" field.
func MarksEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldMarks, v))
}

// MarksNEQ applies the NEQ predicate on the "marks" field.
func MarksNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldMarks, v))
}

// MarksIn applies the In predicate on the "marks" field.
func MarksIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldMarks, vs...))
}

// MarksNotIn applies the NotIn predicate on the "marks" field.
func MarksNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldMarks, vs...))
}

// MarksGT applies the GT predicate on the "marks" field.
func MarksGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldMarks, v))
}

// MarksGTE applies the GTE predicate on the "marks" field.
func MarksGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldMarks, v))
}

// MarksLT applies the LT predicate on the "marks" field.
func MarksLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldMarks, v))
}

// MarksLTE applies the LTE predicate on the "marks" field.
func MarksLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldMarks, v))
}

// ToleranceEQ applies the EQ predicate on the "tolerance" field.
func ToleranceEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTolerance, v))
}

// ToleranceNEQ applies the NEQ predicate on the "tolerance" field.
func ToleranceNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTolerance, v))
}

// ToleranceIn applies the In predicate on the "tolerance" field.
func ToleranceIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTolerance, vs...))
}

// ToleranceNotIn applies the NotIn predicate on the "tolerance" field.
func ToleranceNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTolerance, vs...))
}

// ToleranceGT applies the GT predicate on the "tolerance" field.
func ToleranceGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTolerance, v))
}

// ToleranceGTE applies the GTE predicate on the "tolerance" field.
func ToleranceGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTolerance, v))
}

// ToleranceLT applies the LT predicate on the "tolerance" field.
func ToleranceLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTolerance, v))
}

// ToleranceLTE applies the LTE predicate on the "tolerance" field.
func ToleranceLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTolerance, v))
}

// HasExamination applies the HasEdge predicate on the "examination" edge.
func HasExamination() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExaminationTable, ExaminationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExaminationWith applies the HasEdge predicate on the "examination" edge with a given conditions (other predicates).
func HasExaminationWith(preds ...predicate.Examination) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newExaminationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
