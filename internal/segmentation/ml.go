package segmentation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

const mlSegmentSystemPrompt = `You split a student's handwritten exam transcript into per-question answers.
You are given the transcript and the list of question numbers on the exam.
Return ONLY a JSON array. Each element: {"question_number": int, "text": string, "confidence": number between 0 and 1}.
Include only questions you can actually locate in the transcript. Do not invent text.`

// MLSegmenter asks an LLM to split the transcript, falling back to the basic
// segmenter when the model call or its output fails.
type MLSegmenter struct {
	model     string
	maxTokens int64
	client    anthropic.Client
	fallback  Segmenter
	log       *slog.Logger
}

func NewMLSegmenter(apiKey, model string, maxTokens int64, fallback Segmenter, log *slog.Logger) *MLSegmenter {
	if log == nil {
		log = slog.Default()
	}
	if fallback == nil {
		fallback = NewBasicSegmenter()
	}
	return &MLSegmenter{
		model:     model,
		maxTokens: maxTokens,
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		fallback:  fallback,
		log:       log,
	}
}

type mlFragment struct {
	QuestionNumber int     `json:"question_number"`
	Text           string  `json:"text"`
	Confidence     float64 `json:"confidence"`
}

func (s *MLSegmenter) Segment(ctx context.Context, fullText string, questions []*entity.Question) ([]Fragment, error) {
	frags, err := s.segmentML(ctx, fullText, questions)
	if err != nil {
		s.log.Warn("segmenter.ml.fallback", "err", err)
		return s.fallback.Segment(ctx, fullText, questions)
	}
	return frags, nil
}

func (s *MLSegmenter) segmentML(ctx context.Context, fullText string, questions []*entity.Question) ([]Fragment, error) {
	byNumber := make(map[int]*entity.Question, len(questions))
	numbers := make([]string, 0, len(questions))
	for _, q := range questions {
		byNumber[q.QuestionNumber] = q
		numbers = append(numbers, fmt.Sprintf("%d", q.QuestionNumber))
	}

	user := fmt.Sprintf("Question numbers on this exam: %s\n\nTranscript:\n%s",
		strings.Join(numbers, ", "), fullText)

	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: mlSegmentSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic segment: %w", err)
	}

	var content string
	for _, block := range message.Content {
		if block.Type == "text" {
			content = block.Text
			break
		}
	}
	if content == "" {
		return nil, fmt.Errorf("no text content in segmentation response")
	}

	var parsed []mlFragment
	if err := json.Unmarshal([]byte(extractJSONArray(content)), &parsed); err != nil {
		return nil, fmt.Errorf("decode segmentation response: %w", err)
	}

	var frags []Fragment
	seen := make(map[int]bool, len(parsed))
	for _, p := range parsed {
		q, known := byNumber[p.QuestionNumber]
		if !known || seen[p.QuestionNumber] {
			continue
		}
		seen[p.QuestionNumber] = true
		conf := p.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		frags = append(frags, Fragment{
			QuestionID:     q.ID,
			QuestionNumber: p.QuestionNumber,
			Text:           strings.TrimSpace(p.Text),
			Confidence:     conf,
			Method:         constants.SegmentationML,
		})
	}
	s.log.Info("segmenter.ml.ok", "questions", len(questions), "fragments", len(frags))
	return frags, nil
}

// extractJSONArray trims prose or code fences the model may wrap around the
// JSON payload.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
