package flags

import (
	"strings"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/grading"
)

// LowConfidenceThreshold is the segmentation confidence below which an answer
// is flagged for review.
const LowConfidenceThreshold = 0.7

// Engine derives integrity flags from segmentation and grading signals.
// Flags are additive: the engine never clears one. Clearing is a manual
// action that goes through the override ledger.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate returns the flags triggered for one answer: the union of every
// independently evaluated rule. graderMarkers are the raw flag strings the
// grading collaborator returned for this answer.
func (e *Engine) Evaluate(answer *entity.Answer, question *entity.Question, script *entity.AnswerScript, graderMarkers []string) []constants.FlagKind {
	var out []constants.FlagKind

	if answer.SegmentationConfidence != nil && *answer.SegmentationConfidence < LowConfidenceThreshold {
		out = append(out, constants.FlagLowConfidenceSegmentation)
	}

	if answer.AssignedGrade != nil && question != nil {
		if outsideTolerance(*answer.AssignedGrade, question.Marks, question.Tolerance) {
			out = append(out, constants.FlagGradeOutsideTolerance)
		}
	}

	if script != nil && script.EnableMisconductDetection && signalsIrregularity(answer, graderMarkers) {
		out = append(out, constants.FlagManualReviewRequired)
	}

	return out
}

// outsideTolerance checks the assigned grade against the plausible score
// range [0, marks]: the distance to the nearest plausible score must not
// exceed the question's tolerance.
func outsideTolerance(grade, marks, tolerance float64) bool {
	nearest := grade
	if nearest < 0 {
		nearest = 0
	}
	if nearest > marks {
		nearest = marks
	}
	dist := grade - nearest
	if dist < 0 {
		dist = -dist
	}
	return dist > tolerance
}

// signalsIrregularity checks the grading collaborator's markers: either an
// explicit flag or the marker text embedded in the explanation.
func signalsIrregularity(answer *entity.Answer, graderMarkers []string) bool {
	for _, m := range graderMarkers {
		if strings.EqualFold(strings.TrimSpace(m), grading.MisconductMarker) {
			return true
		}
	}
	if answer.LLMExplanation != nil &&
		strings.Contains(strings.ToLower(*answer.LLMExplanation), grading.MisconductMarker) {
		return true
	}
	return false
}
