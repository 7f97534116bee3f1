package segmentation

import (
	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// Confidence label bands. Lower bounds inclusive, upper bounds exclusive,
// except the top band which includes 1.0.
const (
	LabelHigh   = "High"
	LabelMedium = "Medium"
	LabelLow    = "Low"

	highThreshold   = 0.9
	mediumThreshold = 0.7
)

// neutralConfidence stands in for answers segmentation never scored, so one
// unscored answer neither skews the mean nor divides by zero.
const neutralConfidence = 0.5

// Summary is the script-level view of per-answer segmentation outcomes.
type Summary struct {
	OverallConfidence float64
	PredominantMethod constants.SegmentationMethod
	Label             string
}

// Aggregate combines per-answer segmentation outcomes. Pure and
// deterministic given the same input order: missing confidences default to
// 0.5, missing methods to "basic", and method ties resolve to the method seen
// first in iteration order. An empty answer set yields confidence 0.
func Aggregate(answers []*entity.Answer) Summary {
	if len(answers) == 0 {
		return Summary{
			OverallConfidence: 0,
			PredominantMethod: constants.SegmentationBasic,
			Label:             LabelLow,
		}
	}

	var sum float64
	counts := make(map[constants.SegmentationMethod]int)
	var firstSeen []constants.SegmentationMethod

	for _, a := range answers {
		if a.SegmentationConfidence != nil {
			sum += *a.SegmentationConfidence
		} else {
			sum += neutralConfidence
		}

		method := constants.SegmentationBasic
		if a.SegmentationMethod != nil {
			method = *a.SegmentationMethod
		}
		if counts[method] == 0 {
			firstSeen = append(firstSeen, method)
		}
		counts[method]++
	}

	overall := sum / float64(len(answers))

	predominant := firstSeen[0]
	best := counts[predominant]
	for _, m := range firstSeen[1:] {
		if counts[m] > best {
			predominant, best = m, counts[m]
		}
	}

	return Summary{
		OverallConfidence: overall,
		PredominantMethod: predominant,
		Label:             Label(overall),
	}
}

// Label maps a confidence value to its band.
func Label(confidence float64) string {
	switch {
	case confidence >= highThreshold:
		return LabelHigh
	case confidence >= mediumThreshold:
		return LabelMedium
	default:
		return LabelLow
	}
}
