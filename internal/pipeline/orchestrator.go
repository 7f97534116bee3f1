package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/blobstore"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/flags"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/grading"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/ocr"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/segmentation"
)

// Orchestrator drives one answer script through the processing state machine:
// uploaded -> ocr_pending -> ocr_complete -> grading_pending ->
// grading_complete, with error absorbing any permanent stage failure. Every
// status write is a compare-and-swap on (status, version) inside the
// repository, so results produced for a superseded submission lose the swap
// and are discarded here instead of overwriting fresher state.
type Orchestrator struct {
	scripts   repository.AnswerScriptRepository
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
	blobs     blobstore.Store
	extractor ocr.TextExtractor
	segmenter segmentation.Segmenter
	grader    grading.Service
	flags     *flags.Engine

	retry       retryPolicy
	concurrency int
	log         *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRetry overrides the transient-failure retry policy.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(o *Orchestrator) {
		if maxAttempts > 0 {
			o.retry.MaxAttempts = maxAttempts
		}
		if baseDelay > 0 {
			o.retry.BaseDelay = baseDelay
		}
	}
}

// WithGradeConcurrency caps concurrent per-answer grading calls.
func WithGradeConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func NewOrchestrator(
	scripts repository.AnswerScriptRepository,
	answers repository.AnswerRepository,
	questions repository.QuestionRepository,
	blobs blobstore.Store,
	extractor ocr.TextExtractor,
	segmenter segmentation.Segmenter,
	grader grading.Service,
	engine *flags.Engine,
	log *slog.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		scripts:     scripts,
		answers:     answers,
		questions:   questions,
		blobs:       blobs,
		extractor:   extractor,
		segmenter:   segmenter,
		grader:      grader,
		flags:       engine,
		retry:       defaultRetryPolicy(),
		concurrency: 4,
		log:         log.With(slog.String("component", "orchestrator")),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process advances the script from its current status as far as it can go.
// Safe to call again on a partially processed script: completed stages are
// skipped, the next pending one resumes. Unidentified scripts are held in
// uploaded and return ErrIdentificationUnresolved.
func (o *Orchestrator) Process(ctx context.Context, scriptID uuid.UUID) error {
	script, err := o.scripts.GetByID(ctx, scriptID)
	if err != nil {
		return err
	}

	log := o.log.With(
		slog.String("script_id", scriptID.String()),
		slog.Int("version", script.Version))

	if !script.Identified() {
		log.Info("orchestrator.held_unidentified")
		return common.ErrIdentificationUnresolved
	}

	for {
		switch script.ProcessingStatus {
		case constants.StatusUploaded:
			err = o.scripts.BeginOCR(ctx, scriptID, script.Version)
		case constants.StatusOCRPending:
			err = o.runOCR(ctx, log, script)
		case constants.StatusOCRComplete:
			err = o.runSegmentation(ctx, log, script)
		case constants.StatusGradingPending:
			err = o.runGrading(ctx, log, script)
		case constants.StatusGradingComplete, constants.StatusError:
			return nil
		default:
			return fmt.Errorf("%w: unknown status %q", common.ErrInvalidTransition, script.ProcessingStatus)
		}

		if errors.Is(err, common.ErrStaleScript) {
			// A newer submission owns this script now.
			log.Info("orchestrator.stale_result_discarded",
				slog.String("status", string(script.ProcessingStatus)))
			return nil
		}
		if err != nil {
			return err
		}

		script, err = o.scripts.GetByID(ctx, scriptID)
		if err != nil {
			return err
		}
	}
}

// runOCR fetches the stored image, extracts text, and advances to
// ocr_complete. Retry exhaustion and permanent extraction failures absorb the
// script into error.
func (o *Orchestrator) runOCR(ctx context.Context, log *slog.Logger, script *entity.AnswerScript) error {
	data, err := o.blobs.Get(ctx, script.ImagePath)
	if err != nil {
		return o.fail(ctx, log, script, fmt.Sprintf("fetch image: %v", err))
	}

	var result ocr.TextExtractionResult
	err = o.retry.do(ctx, log, "ocr.extract", func() error {
		var exErr error
		result, exErr = o.extractor.ExtractText(ctx, data)
		return exErr
	})
	if err != nil {
		return o.fail(ctx, log, script, fmt.Sprintf("ocr: %v", err))
	}

	log.Info("orchestrator.ocr_complete",
		slog.Int("text_len", len(result.FullText)),
		slog.Float64("confidence", result.Confidence),
		slog.Duration("duration", result.Duration))
	return o.scripts.FinishOCR(ctx, script.ID, script.Version, result.FullText)
}

// runSegmentation splits the extracted text into per-question answers,
// persists them, and records the script-level confidence summary. Prior
// answers from an earlier submission are superseded, never mutated.
func (o *Orchestrator) runSegmentation(ctx context.Context, log *slog.Logger, script *entity.AnswerScript) error {
	questions, err := o.questions.ListByExamination(ctx, script.ExaminationID)
	if err != nil {
		return err
	}

	fullText := ""
	if script.FullExtractedText != nil {
		fullText = *script.FullExtractedText
	}

	frags, err := o.segmenter.Segment(ctx, fullText, questions)
	if err != nil {
		return o.fail(ctx, log, script, fmt.Sprintf("segmentation: %v", err))
	}
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].QuestionNumber < frags[j].QuestionNumber
	})

	if err := o.answers.SupersedeByScript(ctx, script.ID); err != nil {
		return err
	}

	reqs := make([]repository.CreateAnswerRequest, 0, len(frags))
	combined := make([]string, 0, len(frags))
	for _, f := range frags {
		conf := f.Confidence
		reqs = append(reqs, repository.CreateAnswerRequest{
			QuestionID:             f.QuestionID,
			ExtractedText:          f.Text,
			SegmentationConfidence: &conf,
			SegmentationMethod:     f.Method,
			SpatialLocation:        f.Location,
		})
		combined = append(combined, f.Text)
	}

	created, err := o.answers.CreateBatch(ctx, script.ID, reqs)
	if err != nil {
		return err
	}

	summary := segmentation.Aggregate(created)
	log.Info("orchestrator.segmentation_complete",
		slog.Int("answers", len(created)),
		slog.Float64("overall_confidence", summary.OverallConfidence),
		slog.String("label", summary.Label))

	return o.scripts.FinishSegmentation(ctx, script.ID, script.Version, repository.SegmentationOutcome{
		CombinedText:      strings.Join(combined, "\n\n"),
		OverallConfidence: summary.OverallConfidence,
		PredominantMethod: summary.PredominantMethod,
		ConfidenceLabel:   summary.Label,
	})
}

// runGrading fans out one grading call per answer and joins on the barrier:
// the script advances to grading_complete only once every answer is
// attempted. Failed answers are flagged grading_failed and do not block the
// gate. A script with zero answers advances immediately.
func (o *Orchestrator) runGrading(ctx context.Context, log *slog.Logger, script *entity.AnswerScript) error {
	answers, err := o.answers.ListByScript(ctx, script.ID)
	if err != nil {
		return err
	}
	questions, err := o.questions.ListByExamination(ctx, script.ExaminationID)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*entity.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, o.concurrency)
	)
	for _, a := range answers {
		if a.Attempted() {
			continue
		}
		wg.Add(1)
		go func(a *entity.Answer) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			o.gradeOne(ctx, log, script, a, byID[a.QuestionID])
		}(a)
	}
	wg.Wait()

	// Re-read for the gate check so flags written by the workers are seen.
	answers, err = o.answers.ListByScript(ctx, script.ID)
	if err != nil {
		return err
	}
	rollup := make(map[constants.FlagKind]struct{})
	for _, a := range answers {
		if !a.Attempted() {
			log.Warn("orchestrator.grading_gate_blocked",
				slog.String("answer_id", a.ID.String()))
			return nil
		}
		for _, f := range a.Flags {
			rollup[f] = struct{}{}
		}
	}

	scriptFlags := make([]constants.FlagKind, 0, len(rollup))
	for _, name := range constants.FlagKinds {
		if _, ok := rollup[constants.FlagKind(name)]; ok {
			scriptFlags = append(scriptFlags, constants.FlagKind(name))
		}
	}

	log.Info("orchestrator.grading_complete",
		slog.Int("answers", len(answers)),
		slog.Int("flags", len(scriptFlags)))
	return o.scripts.FinishGrading(ctx, script.ID, script.Version, scriptFlags)
}

// gradeOne grades a single answer. A missing question or exhausted retries
// flags the answer grading_failed so the join barrier still closes.
func (o *Orchestrator) gradeOne(ctx context.Context, log *slog.Logger, script *entity.AnswerScript, a *entity.Answer, q *entity.Question) {
	alog := log.With(slog.String("answer_id", a.ID.String()))

	if q == nil {
		alog.Error("orchestrator.grading_failed",
			slog.String("reason", "question not found"))
		o.markGradingFailed(ctx, alog, a.ID)
		return
	}

	req := grading.Request{
		QuestionText:        q.Text,
		ModelAnswer:         q.ModelAnswer,
		ExtractedAnswerText: a.ExtractedText,
		MaxMarks:            q.Marks,
		Tolerance:           q.Tolerance,
		MisconductDetection: script.EnableMisconductDetection,
	}
	if script.CustomInstructions != nil {
		req.CustomInstructions = *script.CustomInstructions
	}

	var result grading.Result
	err := o.retry.do(ctx, alog, "grading.grade", func() error {
		var gErr error
		result, gErr = o.grader.Grade(ctx, req)
		return gErr
	})
	if err != nil {
		alog.Error("orchestrator.grading_failed", slog.String("error", err.Error()))
		o.markGradingFailed(ctx, alog, a.ID)
		return
	}

	graded := *a
	graded.AssignedGrade = &result.Score
	graded.LLMExplanation = &result.Explanation
	kinds := o.flags.Evaluate(&graded, q, script, result.Flags)

	if err := o.answers.SetGrade(ctx, a.ID, result.Score, result.Explanation, kinds); err != nil {
		alog.Error("orchestrator.grade_persist_failed", slog.String("error", err.Error()))
		o.markGradingFailed(ctx, alog, a.ID)
		return
	}
	alog.Info("orchestrator.answer_graded",
		slog.Float64("score", result.Score),
		slog.Int("flags", len(kinds)))
}

func (o *Orchestrator) markGradingFailed(ctx context.Context, log *slog.Logger, answerID uuid.UUID) {
	if err := o.answers.AddFlags(ctx, answerID, []constants.FlagKind{constants.FlagGradingFailed}); err != nil {
		log.Error("orchestrator.flag_write_failed", slog.String("error", err.Error()))
	}
}

// fail absorbs the script into the error status with a reason. A lost swap
// means a newer submission took over; that is surfaced as ErrStaleScript.
func (o *Orchestrator) fail(ctx context.Context, log *slog.Logger, script *entity.AnswerScript, reason string) error {
	log.Error("orchestrator.stage_failed", slog.String("reason", reason))
	if err := o.scripts.MarkError(ctx, script.ID, script.Version, reason); err != nil {
		return err
	}
	return fmt.Errorf("script processing failed: %s", reason)
}
