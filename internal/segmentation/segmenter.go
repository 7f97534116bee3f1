package segmentation

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// Fragment is one question's extracted span of the script text.
type Fragment struct {
	QuestionID     uuid.UUID
	QuestionNumber int
	Text           string
	Confidence     float64
	Method         constants.SegmentationMethod
	Location       *entity.SpatialLocation
}

// Segmenter splits extracted script text into per-question fragments.
// Questions with no recognizable span produce no fragment; a script with zero
// segmentable answers is reportable, not fatal.
type Segmenter interface {
	Segment(ctx context.Context, fullText string, questions []*entity.Question) ([]Fragment, error)
}

var reMarker = regexp.MustCompile(`(?i)^\s*(?:q(?:uestion)?\s*)?(\d{1,3})\s*[).:\-]`)

// BasicSegmenter scans for question-number markers at line starts and assigns
// the text between consecutive markers to the first marker's question.
type BasicSegmenter struct{}

func NewBasicSegmenter() *BasicSegmenter {
	return &BasicSegmenter{}
}

func (s *BasicSegmenter) Segment(_ context.Context, fullText string, questions []*entity.Question) ([]Fragment, error) {
	byNumber := make(map[int]*entity.Question, len(questions))
	for _, q := range questions {
		byNumber[q.QuestionNumber] = q
	}

	type span struct {
		number int
		lines  []string
	}
	var spans []*span
	var current *span

	for _, line := range strings.Split(fullText, "\n") {
		if m := reMarker.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				if _, known := byNumber[n]; known {
					current = &span{number: n}
					spans = append(spans, current)
					// keep the remainder of the marker line as answer text
					rest := reMarker.ReplaceAllString(line, "")
					if strings.TrimSpace(rest) != "" {
						current.lines = append(current.lines, rest)
					}
					continue
				}
			}
		}
		if current != nil {
			current.lines = append(current.lines, line)
		}
	}

	// first span per question wins; later repeats of a marker are noise
	seen := make(map[int]bool, len(spans))
	ordered := true
	last := 0
	var frags []Fragment
	for _, sp := range spans {
		if seen[sp.number] {
			continue
		}
		seen[sp.number] = true
		if sp.number < last {
			ordered = false
		}
		last = sp.number

		q := byNumber[sp.number]
		text := strings.TrimSpace(strings.Join(sp.lines, "\n"))
		frags = append(frags, Fragment{
			QuestionID:     q.ID,
			QuestionNumber: sp.number,
			Text:           text,
			Method:         constants.SegmentationBasic,
		})
	}

	complete := len(frags) == len(questions)
	for i := range frags {
		frags[i].Confidence = basicConfidence(frags[i].Text, ordered, complete)
	}
	return frags, nil
}

// basicConfidence scores a fragment from structural evidence: markers found in
// ascending order, every question accounted for, and a non-trivial body.
func basicConfidence(text string, ordered, complete bool) float64 {
	score := 0.5
	if ordered {
		score += 0.2
	}
	if complete {
		score += 0.1
	}
	if len(text) > 80 {
		score += 0.15
	} else if len(text) == 0 {
		score -= 0.3
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}
