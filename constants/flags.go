package constants

// FlagKind is a closed set of integrity/processing flags. Downstream consumers
// can switch over these exhaustively instead of matching free-form strings.
type FlagKind string

const (
	// FlagLowConfidenceSegmentation marks an answer whose segmentation
	// confidence fell below the review threshold.
	FlagLowConfidenceSegmentation FlagKind = "low_confidence_segmentation"

	// FlagGradeOutsideTolerance marks an assigned grade outside the question's
	// plausible score range by more than its tolerance. A review signal, not
	// an error.
	FlagGradeOutsideTolerance FlagKind = "grade_outside_tolerance"

	// FlagManualReviewRequired marks an answer whose grading explanation
	// signalled a suspected irregularity, on scripts with misconduct
	// detection enabled.
	FlagManualReviewRequired FlagKind = "manual_review_required"

	// FlagGradingFailed marks an answer whose grading call failed permanently.
	// The answer is excluded from the completion barrier's grade requirement.
	FlagGradingFailed FlagKind = "grading_failed"
)

// FlagKinds holds every known flag value, for schema validation.
var FlagKinds = []string{
	string(FlagLowConfidenceSegmentation),
	string(FlagGradeOutsideTolerance),
	string(FlagManualReviewRequired),
	string(FlagGradingFailed),
}

// KnownFlag reports whether s is one of the closed flag kinds.
func KnownFlag(s string) bool {
	for _, k := range FlagKinds {
		if k == s {
			return true
		}
	}
	return false
}
