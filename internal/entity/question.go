package entity

import (
	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
)

// Question carries the grading inputs for one examination question. Read-only
// to the pipeline.
type Question struct {
	ID                uuid.UUID                   `json:"id"`
	ExaminationID     uuid.UUID                   `json:"examination_id"`
	QuestionNumber    int                         `json:"question_number"`
	Text              string                      `json:"text"`
	ModelAnswer       string                      `json:"model_answer"`
	ModelAnswerSource constants.ModelAnswerSource `json:"model_answer_source"`
	Marks             float64                     `json:"marks"`
	Tolerance         float64                     `json:"tolerance"`
}
