package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
)

const gradeSystemPrompt = `You are an exam grader. Compare the student's extracted answer to the model answer and award a score.
Award partial credit proportionally. Be strict about factual errors, lenient about phrasing and OCR artifacts.
Return ONLY a JSON object matching the provided schema. The explanation must say what earned and what lost marks.`

// AnthropicGrader implements Service against the Anthropic Messages API.
type AnthropicGrader struct {
	model     string
	maxTokens int64
	client    anthropic.Client
	log       *slog.Logger
}

func NewAnthropicGrader(apiKey, model string, maxTokens int64, log *slog.Logger) *AnthropicGrader {
	if log == nil {
		log = slog.Default()
	}
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &AnthropicGrader{
		model:     model,
		maxTokens: maxTokens,
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		log:       log,
	}
}

type gradePayload struct {
	Score       float64  `json:"score"`
	Explanation string   `json:"explanation"`
	Flags       []string `json:"flags,omitempty"`
}

func (g *AnthropicGrader) Grade(ctx context.Context, req Request) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	g.log.Info("grader.start",
		"req_id", rid,
		"model", g.model,
		"answer_len", len(req.ExtractedAnswerText),
		"max_marks", req.MaxMarks,
		"misconduct_detection", req.MisconductDetection,
	)

	schema := BuildGradeJSONSchema(req.MaxMarks)
	user := buildUserPrompt(req, schema)

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: gradeSystemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		g.log.Error("grader.api_error", "req_id", rid, "err", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Result{}, &common.TransientError{Cause: fmt.Errorf("anthropic grade: %w", err)}
	}

	var content string
	for _, block := range message.Content {
		if block.Type == "text" {
			content = block.Text
			break
		}
	}
	if content == "" {
		g.log.Error("grader.no_content", "req_id", rid)
		return Result{}, fmt.Errorf("no text content in grading response")
	}

	raw := []byte(extractJSONObject(content))
	if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
		g.log.Error("grader.schema_validation_failed", "req_id", rid, "err", err)
		return Result{}, fmt.Errorf("grading response: %w", err)
	}

	var p gradePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Result{}, fmt.Errorf("decode grading response: %w", err)
	}

	g.log.Info("grader.ok",
		"req_id", rid,
		"score", p.Score,
		"flags", len(p.Flags),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Score: p.Score, Explanation: p.Explanation, Flags: p.Flags}, nil
}

func buildUserPrompt(req Request, schema map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n\n", req.QuestionText)
	fmt.Fprintf(&b, "Model answer (full marks: %g):\n%s\n\n", req.MaxMarks, req.ModelAnswer)
	fmt.Fprintf(&b, "Student answer (OCR transcript):\n%s\n\n", req.ExtractedAnswerText)
	if req.CustomInstructions != "" {
		fmt.Fprintf(&b, "Additional grading instructions from the teacher:\n%s\n\n", req.CustomInstructions)
	}
	if req.MisconductDetection {
		fmt.Fprintf(&b, "If the answer looks copied, pre-written, or otherwise irregular, add %q to flags.\n\n", MisconductMarker)
	}
	fmt.Fprintf(&b, "JSON Schema:\n%s\n", mustJSON(schema))
	return b.String()
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// extractJSONObject trims prose or code fences around the JSON payload.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
