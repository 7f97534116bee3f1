package segmentation

import (
	"math"
	"testing"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

func fptr(v float64) *float64 { return &v }

func mptr(m constants.SegmentationMethod) *constants.SegmentationMethod { return &m }

func answer(conf *float64, method *constants.SegmentationMethod) *entity.Answer {
	return &entity.Answer{SegmentationConfidence: conf, SegmentationMethod: method}
}

func TestAggregateMeanWithNeutralDefault(t *testing.T) {
	tests := []struct {
		name    string
		answers []*entity.Answer
		want    float64
	}{
		{
			name: "all scored",
			answers: []*entity.Answer{
				answer(fptr(0.8), mptr(constants.SegmentationBasic)),
				answer(fptr(0.6), mptr(constants.SegmentationBasic)),
			},
			want: 0.7,
		},
		{
			name: "missing confidence counts as 0.5",
			answers: []*entity.Answer{
				answer(fptr(0.9), mptr(constants.SegmentationML)),
				answer(nil, mptr(constants.SegmentationML)),
			},
			want: 0.7,
		},
		{
			name: "single unscored answer",
			answers: []*entity.Answer{
				answer(nil, nil),
			},
			want: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.answers)
			if math.Abs(got.OverallConfidence-tt.want) > 1e-9 {
				t.Fatalf("OverallConfidence = %v, want %v", got.OverallConfidence, tt.want)
			}
		})
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got.OverallConfidence != 0 {
		t.Errorf("OverallConfidence = %v, want 0", got.OverallConfidence)
	}
	if got.PredominantMethod != constants.SegmentationBasic {
		t.Errorf("PredominantMethod = %v, want basic", got.PredominantMethod)
	}
	if got.Label != LabelLow {
		t.Errorf("Label = %v, want %v", got.Label, LabelLow)
	}
}

func TestAggregatePredominantMethod(t *testing.T) {
	answers := []*entity.Answer{
		answer(fptr(0.9), mptr(constants.SegmentationML)),
		answer(fptr(0.9), mptr(constants.SegmentationML)),
		answer(fptr(0.9), mptr(constants.SegmentationBasic)),
	}
	if got := Aggregate(answers).PredominantMethod; got != constants.SegmentationML {
		t.Fatalf("PredominantMethod = %v, want ml", got)
	}
}

func TestAggregateMethodTieBreaksToFirstSeen(t *testing.T) {
	answers := []*entity.Answer{
		answer(fptr(0.8), mptr(constants.SegmentationML)),
		answer(fptr(0.8), mptr(constants.SegmentationBasic)),
	}
	if got := Aggregate(answers).PredominantMethod; got != constants.SegmentationML {
		t.Fatalf("PredominantMethod = %v, want ml (first seen)", got)
	}

	reversed := []*entity.Answer{
		answer(fptr(0.8), mptr(constants.SegmentationBasic)),
		answer(fptr(0.8), mptr(constants.SegmentationML)),
	}
	if got := Aggregate(reversed).PredominantMethod; got != constants.SegmentationBasic {
		t.Fatalf("PredominantMethod = %v, want basic (first seen)", got)
	}
}

func TestLabelBands(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, LabelHigh},
		{0.9, LabelHigh},
		{0.89, LabelMedium},
		{0.7, LabelMedium},
		{0.69, LabelLow},
		{0, LabelLow},
	}
	for _, tt := range tests {
		if got := Label(tt.confidence); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestAggregateLabelMatchesOverall(t *testing.T) {
	answers := []*entity.Answer{
		answer(fptr(0.92), mptr(constants.SegmentationML)),
		answer(fptr(0.96), mptr(constants.SegmentationML)),
	}
	got := Aggregate(answers)
	if got.Label != LabelHigh {
		t.Fatalf("Label = %q, want %q", got.Label, LabelHigh)
	}
}
