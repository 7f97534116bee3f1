package segmentation

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

func questions(numbers ...int) []*entity.Question {
	out := make([]*entity.Question, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, &entity.Question{ID: uuid.New(), QuestionNumber: n})
	}
	return out
}

func TestBasicSegmenterSplitsOnMarkers(t *testing.T) {
	qs := questions(1, 2, 3)
	text := "Q1) The mitochondria is the powerhouse of the cell.\n" +
		"It produces ATP.\n" +
		"2. Photosynthesis converts light into chemical energy.\n" +
		"Question 3: Osmosis is diffusion of water.\n"

	frags, err := NewBasicSegmenter().Segment(context.Background(), text, qs)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(frags) != 3 {
		t.Fatalf("got %d fragments, want 3", len(frags))
	}
	for i, want := range []int{1, 2, 3} {
		if frags[i].QuestionNumber != want {
			t.Errorf("fragment %d number = %d, want %d", i, frags[i].QuestionNumber, want)
		}
		if frags[i].QuestionID != qs[i].ID {
			t.Errorf("fragment %d question id mismatch", i)
		}
	}
	if got := frags[1].Text; got != "Photosynthesis converts light into chemical energy." {
		t.Errorf("fragment 2 text = %q", got)
	}
}

func TestBasicSegmenterFirstSpanWins(t *testing.T) {
	qs := questions(1)
	text := "1) first attempt\n1) second attempt overwrites nothing\n"

	frags, err := NewBasicSegmenter().Segment(context.Background(), text, qs)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	if frags[0].Text != "first attempt" {
		t.Errorf("text = %q, want first span", frags[0].Text)
	}
}

func TestBasicSegmenterIgnoresUnknownNumbers(t *testing.T) {
	qs := questions(1)
	text := "1) known answer\n99) stray marker outside the paper\n"

	frags, err := NewBasicSegmenter().Segment(context.Background(), text, qs)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	// the stray marker line folds into question 1's span
	if frags[0].QuestionNumber != 1 {
		t.Errorf("number = %d, want 1", frags[0].QuestionNumber)
	}
}

func TestBasicSegmenterNoMarkers(t *testing.T) {
	qs := questions(1, 2)
	frags, err := NewBasicSegmenter().Segment(context.Background(), "free text with no structure", qs)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(frags) != 0 {
		t.Fatalf("got %d fragments, want 0", len(frags))
	}
}

func TestBasicConfidenceBounds(t *testing.T) {
	tests := []struct {
		name              string
		text              string
		ordered, complete bool
	}{
		{"empty", "", false, false},
		{"long ordered complete", strings.Repeat("a", 120), true, true},
		{"short unordered", "x", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basicConfidence(tt.text, tt.ordered, tt.complete)
			if got < 0 || got > 1 {
				t.Fatalf("confidence %v out of [0,1]", got)
			}
		})
	}
}
