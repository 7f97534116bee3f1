package flags

import (
	"testing"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/grading"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func hasKind(kinds []constants.FlagKind, want constants.FlagKind) bool {
	for _, k := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func TestEvaluateLowConfidenceSegmentation(t *testing.T) {
	engine := NewEngine()
	question := &entity.Question{Marks: 10, Tolerance: 1}

	tests := []struct {
		name       string
		confidence *float64
		want       bool
	}{
		{"below threshold", fptr(0.69), true},
		{"at threshold", fptr(0.7), false},
		{"above threshold", fptr(0.95), false},
		{"unscored", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &entity.Answer{SegmentationConfidence: tt.confidence}
			got := hasKind(engine.Evaluate(a, question, nil, nil), constants.FlagLowConfidenceSegmentation)
			if got != tt.want {
				t.Fatalf("low_confidence_segmentation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateGradeOutsideTolerance(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name      string
		grade     float64
		marks     float64
		tolerance float64
		want      bool
	}{
		{"within range", 7, 10, 0.5, false},
		{"slightly over, inside tolerance", 10.4, 10, 0.5, false},
		{"over tolerance", 10.6, 10, 0.5, true},
		{"negative inside tolerance", -0.5, 10, 0.5, false},
		{"negative outside tolerance", -1, 10, 0.5, true},
		{"exactly max", 10, 10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &entity.Answer{AssignedGrade: fptr(tt.grade), SegmentationConfidence: fptr(1)}
			q := &entity.Question{Marks: tt.marks, Tolerance: tt.tolerance}
			got := hasKind(engine.Evaluate(a, q, nil, nil), constants.FlagGradeOutsideTolerance)
			if got != tt.want {
				t.Fatalf("grade_outside_tolerance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateManualReviewRequired(t *testing.T) {
	engine := NewEngine()
	question := &entity.Question{Marks: 10, Tolerance: 1}

	tests := []struct {
		name        string
		detection   bool
		markers     []string
		explanation *string
		want        bool
	}{
		{"marker with detection on", true, []string{grading.MisconductMarker}, nil, true},
		{"marker case-insensitive", true, []string{"Suspected_Irregularity"}, nil, true},
		{"marker in explanation", true, nil, sptr("answer shows suspected_irregularity against peer scripts"), true},
		{"detection off", false, []string{grading.MisconductMarker}, nil, false},
		{"no signal", true, []string{"partial_credit"}, sptr("standard reasoning"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := &entity.AnswerScript{EnableMisconductDetection: tt.detection}
			a := &entity.Answer{
				SegmentationConfidence: fptr(1),
				LLMExplanation:         tt.explanation,
			}
			got := hasKind(engine.Evaluate(a, question, script, tt.markers), constants.FlagManualReviewRequired)
			if got != tt.want {
				t.Fatalf("manual_review_required = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateUnionOfRules(t *testing.T) {
	engine := NewEngine()
	a := &entity.Answer{
		SegmentationConfidence: fptr(0.4),
		AssignedGrade:          fptr(12),
	}
	q := &entity.Question{Marks: 10, Tolerance: 0.5}
	script := &entity.AnswerScript{EnableMisconductDetection: true}

	got := engine.Evaluate(a, q, script, []string{grading.MisconductMarker})
	for _, want := range []constants.FlagKind{
		constants.FlagLowConfidenceSegmentation,
		constants.FlagGradeOutsideTolerance,
		constants.FlagManualReviewRequired,
	} {
		if !hasKind(got, want) {
			t.Errorf("missing flag %s in %v", want, got)
		}
	}
}
