package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
)

// SpatialLocation is opaque bounding-region metadata carried through from
// segmentation. The pipeline never interprets it.
type SpatialLocation struct {
	Page   int     `json:"page"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Answer represents one question's extracted and graded content within one
// answer script.
type Answer struct {
	ID                     uuid.UUID                     `json:"id"`
	AnswerScriptID         uuid.UUID                     `json:"answer_script_id"`
	QuestionID             uuid.UUID                     `json:"question_id"`
	ExtractedText          string                        `json:"extracted_text"`
	SegmentationConfidence *float64                      `json:"segmentation_confidence,omitempty"`
	SegmentationMethod     *constants.SegmentationMethod `json:"segmentation_method,omitempty"`
	AssignedGrade          *float64                      `json:"assigned_grade,omitempty"`
	ManualGrade            *float64                      `json:"manual_grade,omitempty"`
	IsOverridden           bool                          `json:"is_overridden"`
	OverrideJustification  *string                       `json:"override_justification,omitempty"`
	LLMExplanation         *string                       `json:"llm_explanation,omitempty"`
	Flags                  []constants.FlagKind          `json:"flags,omitempty"`
	SpatialLocation        *SpatialLocation              `json:"spatial_location,omitempty"`
	Superseded             bool                          `json:"superseded"`
	CreatedAt              time.Time                     `json:"created_at"`
	UpdatedAt              time.Time                     `json:"updated_at"`
}

// EffectiveGrade returns the grade that counts for scoring: the manual grade
// once overridden, otherwise the automated one. ok is false when neither is set.
func (a *Answer) EffectiveGrade() (grade float64, ok bool) {
	if a.IsOverridden && a.ManualGrade != nil {
		return *a.ManualGrade, true
	}
	if a.AssignedGrade != nil {
		return *a.AssignedGrade, true
	}
	return 0, false
}

// HasFlag reports whether the answer's flag set contains kind.
func (a *Answer) HasFlag(kind constants.FlagKind) bool {
	for _, f := range a.Flags {
		if f == kind {
			return true
		}
	}
	return false
}

// Attempted reports whether grading has accounted for this answer: either a
// grade was assigned or the call failed permanently. The script-level
// completion barrier counts attempted answers, not just graded ones.
func (a *Answer) Attempted() bool {
	return a.AssignedGrade != nil || a.HasFlag(constants.FlagGradingFailed)
}
