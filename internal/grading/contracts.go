package grading

import "context"

// MisconductMarker is the collaborator flag signalling a suspected
// irregularity in the student's answer. The Integrity Flag Engine promotes it
// to manual_review_required on scripts with misconduct detection enabled.
const MisconductMarker = "suspected_irregularity"

// Request carries one answer's grading inputs.
type Request struct {
	QuestionText        string
	ModelAnswer         string
	ExtractedAnswerText string
	MaxMarks            float64
	Tolerance           float64
	CustomInstructions  string
	MisconductDetection bool
}

// Result is the collaborator's verdict. Flags are raw collaborator markers;
// mapping them to the closed flag set is the flag engine's job.
type Result struct {
	Score       float64
	Explanation string
	Flags       []string
}

// Service is the external grading collaborator.
type Service interface {
	Grade(ctx context.Context, req Request) (Result, error)
}
