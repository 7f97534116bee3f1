package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"log/slog"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/flags"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/grading"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/ocr"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/segmentation"
)

// --- in-memory fakes ---

type fakeScripts struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.AnswerScript
}

func newFakeScripts() *fakeScripts {
	return &fakeScripts{items: make(map[uuid.UUID]*entity.AnswerScript)}
}

func (f *fakeScripts) put(s *entity.AnswerScript) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.items[s.ID] = &cp
}

func (f *fakeScripts) Create(_ context.Context, req repository.CreateScriptRequest) (*entity.AnswerScript, error) {
	s := &entity.AnswerScript{
		ID:               uuid.New(),
		ExaminationID:    req.ExaminationID,
		SchoolID:         req.SchoolID,
		TeacherID:        req.TeacherID,
		ImagePath:        req.ImagePath,
		ContentHash:      req.ContentHash,
		ProcessingStatus: constants.StatusUploaded,
		Version:          1,
	}
	f.put(s)
	return s, nil
}

func (f *fakeScripts) GetByID(_ context.Context, id uuid.UUID) (*entity.AnswerScript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeScripts) FindByHash(context.Context, uuid.UUID, []byte) (*entity.AnswerScript, error) {
	return nil, common.ErrNotFound
}

func (f *fakeScripts) ListByExamination(context.Context, uuid.UUID) ([]*entity.AnswerScript, error) {
	return nil, nil
}

func (f *fakeScripts) ListByStudent(context.Context, uuid.UUID) ([]*entity.AnswerScript, error) {
	return nil, nil
}

func (f *fakeScripts) SetIdentification(_ context.Context, id, studentID uuid.UUID, method constants.IdentificationMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return common.ErrNotFound
	}
	s.StudentID = &studentID
	s.IdentificationMethod = &method
	return nil
}

func (f *fakeScripts) CorrectIdentification(_ context.Context, id, studentID uuid.UUID) error {
	return f.SetIdentification(nil, id, studentID, constants.IdentManual)
}

func (f *fakeScripts) cas(id uuid.UUID, version int, to constants.ProcessingStatus, apply func(*entity.AnswerScript)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return common.ErrNotFound
	}
	if s.Version != version {
		return common.ErrStaleScript
	}
	if !constants.ValidTransition(s.ProcessingStatus, to) {
		return common.ErrInvalidTransition
	}
	s.ProcessingStatus = to
	if apply != nil {
		apply(s)
	}
	return nil
}

func (f *fakeScripts) BeginOCR(_ context.Context, id uuid.UUID, version int) error {
	return f.cas(id, version, constants.StatusOCRPending, nil)
}

func (f *fakeScripts) FinishOCR(_ context.Context, id uuid.UUID, version int, fullText string) error {
	return f.cas(id, version, constants.StatusOCRComplete, func(s *entity.AnswerScript) {
		s.FullExtractedText = &fullText
	})
}

func (f *fakeScripts) FinishSegmentation(_ context.Context, id uuid.UUID, version int, out repository.SegmentationOutcome) error {
	return f.cas(id, version, constants.StatusGradingPending, func(s *entity.AnswerScript) {
		s.CombinedExtractedText = &out.CombinedText
		s.OverallConfidence = &out.OverallConfidence
		s.PredominantMethod = &out.PredominantMethod
		s.ConfidenceLabel = &out.ConfidenceLabel
	})
}

func (f *fakeScripts) FinishGrading(_ context.Context, id uuid.UUID, version int, kinds []constants.FlagKind) error {
	return f.cas(id, version, constants.StatusGradingComplete, func(s *entity.AnswerScript) {
		s.Flags = append(s.Flags, kinds...)
	})
}

func (f *fakeScripts) MarkError(_ context.Context, id uuid.UUID, version int, reason string) error {
	return f.cas(id, version, constants.StatusError, func(s *entity.AnswerScript) {
		s.ErrorReason = &reason
	})
}

func (f *fakeScripts) AddFlags(_ context.Context, id uuid.UUID, kinds []constants.FlagKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return common.ErrNotFound
	}
	s.Flags = append(s.Flags, kinds...)
	return nil
}

func (f *fakeScripts) Resubmit(_ context.Context, id uuid.UUID) (*entity.AnswerScript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	s.Version++
	s.ProcessingStatus = constants.StatusUploaded
	s.FullExtractedText = nil
	s.Flags = nil
	cp := *s
	return &cp, nil
}

func (f *fakeScripts) ListStuck(context.Context, time.Time) ([]uuid.UUID, error) { return nil, nil }

func (f *fakeScripts) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

type fakeAnswers struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Answer
}

func newFakeAnswers() *fakeAnswers {
	return &fakeAnswers{items: make(map[uuid.UUID]*entity.Answer)}
}

func (f *fakeAnswers) CreateBatch(_ context.Context, scriptID uuid.UUID, reqs []repository.CreateAnswerRequest) ([]*entity.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Answer, 0, len(reqs))
	for _, r := range reqs {
		a := &entity.Answer{
			ID:                     uuid.New(),
			AnswerScriptID:         scriptID,
			QuestionID:             r.QuestionID,
			ExtractedText:          r.ExtractedText,
			SegmentationConfidence: r.SegmentationConfidence,
		}
		method := r.SegmentationMethod
		a.SegmentationMethod = &method
		f.items[a.ID] = a
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAnswers) GetByID(_ context.Context, id uuid.UUID) (*entity.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAnswers) ListByScript(_ context.Context, scriptID uuid.UUID) ([]*entity.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Answer
	for _, a := range f.items {
		if a.AnswerScriptID == scriptID && !a.Superseded {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAnswers) SetGrade(_ context.Context, id uuid.UUID, grade float64, explanation string, kinds []constants.FlagKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return common.ErrNotFound
	}
	a.AssignedGrade = &grade
	a.LLMExplanation = &explanation
	a.Flags = append(a.Flags, kinds...)
	return nil
}

func (f *fakeAnswers) AddFlags(_ context.Context, id uuid.UUID, kinds []constants.FlagKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return common.ErrNotFound
	}
	a.Flags = append(a.Flags, kinds...)
	return nil
}

func (f *fakeAnswers) SetOverride(_ context.Context, id uuid.UUID, manualGrade float64, justification string) (*entity.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	a.ManualGrade = &manualGrade
	a.IsOverridden = true
	a.OverrideJustification = &justification
	cp := *a
	return &cp, nil
}

func (f *fakeAnswers) SupersedeByScript(_ context.Context, scriptID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.items {
		if a.AnswerScriptID == scriptID {
			a.Superseded = true
		}
	}
	return nil
}

type fakeQuestions struct {
	byExam map[uuid.UUID][]*entity.Question
}

func (f *fakeQuestions) GetByID(_ context.Context, id uuid.UUID) (*entity.Question, error) {
	for _, qs := range f.byExam {
		for _, q := range qs {
			if q.ID == id {
				return q, nil
			}
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeQuestions) ListByExamination(_ context.Context, examID uuid.UUID) ([]*entity.Question, error) {
	return f.byExam[examID], nil
}

type fakeBlobs struct {
	data map[string][]byte
}

func (f *fakeBlobs) Get(_ context.Context, p string) ([]byte, error) {
	if b, ok := f.data[p]; ok {
		return b, nil
	}
	return nil, errors.New("blob not found")
}

func (f *fakeBlobs) Put(_ context.Context, p string, data []byte) (string, error) {
	if f.data == nil {
		f.data = make(map[string][]byte)
	}
	f.data[p] = data
	return p, nil
}

func (f *fakeBlobs) Delete(_ context.Context, p string) error {
	delete(f.data, p)
	return nil
}

type fakeExtractor struct {
	fn func() (ocr.TextExtractionResult, error)
}

func (f *fakeExtractor) ExtractText(context.Context, []byte) (ocr.TextExtractionResult, error) {
	return f.fn()
}

type fakeSegmenter struct {
	fn func(fullText string, questions []*entity.Question) ([]segmentation.Fragment, error)
}

func (f *fakeSegmenter) Segment(_ context.Context, fullText string, questions []*entity.Question) ([]segmentation.Fragment, error) {
	return f.fn(fullText, questions)
}

type fakeGrader struct {
	mu    sync.Mutex
	calls int
	fn    func(req grading.Request) (grading.Result, error)
}

func (f *fakeGrader) Grade(_ context.Context, req grading.Request) (grading.Result, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.fn(req)
}

// --- test environment ---

type env struct {
	scripts   *fakeScripts
	answers   *fakeAnswers
	questions *fakeQuestions
	blobs     *fakeBlobs
	extractor *fakeExtractor
	segmenter *fakeSegmenter
	grader    *fakeGrader

	examID   uuid.UUID
	q1, q2   *entity.Question
	scriptID uuid.UUID
}

func newEnv(t *testing.T) *env {
	t.Helper()

	examID := uuid.New()
	q1 := &entity.Question{ID: uuid.New(), ExaminationID: examID, QuestionNumber: 1, Text: "Define osmosis", ModelAnswer: "Diffusion of water", Marks: 10, Tolerance: 1}
	q2 := &entity.Question{ID: uuid.New(), ExaminationID: examID, QuestionNumber: 2, Text: "Define diffusion", ModelAnswer: "Movement down a gradient", Marks: 5, Tolerance: 0.5}

	studentID := uuid.New()
	method := constants.IdentQR
	scriptID := uuid.New()

	e := &env{
		scripts:   newFakeScripts(),
		answers:   newFakeAnswers(),
		questions: &fakeQuestions{byExam: map[uuid.UUID][]*entity.Question{examID: {q1, q2}}},
		blobs:     &fakeBlobs{data: map[string][]byte{"scripts/s1.jpg": []byte("image-bytes")}},
		examID:    examID,
		q1:        q1,
		q2:        q2,
		scriptID:  scriptID,
	}
	e.scripts.put(&entity.AnswerScript{
		ID:                   scriptID,
		ExaminationID:        examID,
		StudentID:            &studentID,
		IdentificationMethod: &method,
		ImagePath:            "scripts/s1.jpg",
		ProcessingStatus:     constants.StatusUploaded,
		Version:              1,
	})

	e.extractor = &fakeExtractor{fn: func() (ocr.TextExtractionResult, error) {
		return ocr.TextExtractionResult{FullText: "1) water moves\n2) particles move", Confidence: 0.8}, nil
	}}
	conf := 0.9
	e.segmenter = &fakeSegmenter{fn: func(_ string, qs []*entity.Question) ([]segmentation.Fragment, error) {
		var out []segmentation.Fragment
		for _, q := range qs {
			out = append(out, segmentation.Fragment{
				QuestionID:     q.ID,
				QuestionNumber: q.QuestionNumber,
				Text:           "answer for " + q.Text,
				Confidence:     conf,
				Method:         constants.SegmentationBasic,
			})
		}
		return out, nil
	}}
	e.grader = &fakeGrader{fn: func(req grading.Request) (grading.Result, error) {
		return grading.Result{Score: req.MaxMarks / 2, Explanation: "partially correct"}, nil
	}}
	return e
}

func (e *env) orchestrator(t *testing.T, opts ...Option) *Orchestrator {
	t.Helper()
	base := []Option{WithRetry(3, time.Millisecond)}
	return NewOrchestrator(
		e.scripts, e.answers, e.questions, e.blobs,
		e.extractor, e.segmenter, e.grader, flags.NewEngine(),
		slog.Default(), append(base, opts...)...,
	)
}

func (e *env) status(t *testing.T) constants.ProcessingStatus {
	t.Helper()
	s, err := e.scripts.GetByID(context.Background(), e.scriptID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	return s.ProcessingStatus
}

// --- tests ---

func TestProcessHappyPath(t *testing.T) {
	e := newEnv(t)
	if err := e.orchestrator(t).Process(context.Background(), e.scriptID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if got := e.status(t); got != constants.StatusGradingComplete {
		t.Fatalf("status = %v, want grading_complete", got)
	}

	script, _ := e.scripts.GetByID(context.Background(), e.scriptID)
	if script.FullExtractedText == nil || *script.FullExtractedText == "" {
		t.Error("full extracted text not persisted")
	}
	if script.OverallConfidence == nil || *script.OverallConfidence != 0.9 {
		t.Errorf("overall confidence = %v, want 0.9", script.OverallConfidence)
	}
	if script.ConfidenceLabel == nil || *script.ConfidenceLabel != segmentation.LabelHigh {
		t.Errorf("label = %v, want High", script.ConfidenceLabel)
	}

	answers, _ := e.answers.ListByScript(context.Background(), e.scriptID)
	if len(answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(answers))
	}
	for _, a := range answers {
		if a.AssignedGrade == nil {
			t.Errorf("answer %s has no grade", a.ID)
		}
		if a.LLMExplanation == nil {
			t.Errorf("answer %s has no explanation", a.ID)
		}
	}
}

func TestProcessHoldsUnidentifiedScript(t *testing.T) {
	e := newEnv(t)
	held := &entity.AnswerScript{
		ID:               uuid.New(),
		ExaminationID:    e.examID,
		ImagePath:        "scripts/s1.jpg",
		ProcessingStatus: constants.StatusUploaded,
		Version:          1,
	}
	e.scripts.put(held)

	err := e.orchestrator(t).Process(context.Background(), held.ID)
	if !errors.Is(err, common.ErrIdentificationUnresolved) {
		t.Fatalf("err = %v, want ErrIdentificationUnresolved", err)
	}

	s, _ := e.scripts.GetByID(context.Background(), held.ID)
	if s.ProcessingStatus != constants.StatusUploaded {
		t.Fatalf("status = %v, held script must stay uploaded", s.ProcessingStatus)
	}
}

func TestProcessPartialGradingFailure(t *testing.T) {
	e := newEnv(t)
	e.grader.fn = func(req grading.Request) (grading.Result, error) {
		if req.QuestionText == e.q2.Text {
			return grading.Result{}, errors.New("model rejected input")
		}
		return grading.Result{Score: 8, Explanation: "good"}, nil
	}

	if err := e.orchestrator(t).Process(context.Background(), e.scriptID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	// the barrier still closes: failed answer is flagged, script completes
	if got := e.status(t); got != constants.StatusGradingComplete {
		t.Fatalf("status = %v, want grading_complete", got)
	}

	answers, _ := e.answers.ListByScript(context.Background(), e.scriptID)
	var failed, graded int
	for _, a := range answers {
		switch {
		case a.HasFlag(constants.FlagGradingFailed):
			failed++
			if a.AssignedGrade != nil {
				t.Error("failed answer should have no grade")
			}
		case a.AssignedGrade != nil:
			graded++
		}
	}
	if failed != 1 || graded != 1 {
		t.Fatalf("failed = %d, graded = %d, want 1 and 1", failed, graded)
	}

	script, _ := e.scripts.GetByID(context.Background(), e.scriptID)
	if !script.HasFlag(constants.FlagGradingFailed) {
		t.Error("grading_failed not rolled up to script flags")
	}
}

func TestProcessTransientRetrySucceeds(t *testing.T) {
	e := newEnv(t)
	var attempts int
	var mu sync.Mutex
	e.grader.fn = func(req grading.Request) (grading.Result, error) {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts == 1 {
			return grading.Result{}, &common.TransientError{Cause: errors.New("timeout")}
		}
		return grading.Result{Score: 5, Explanation: "ok"}, nil
	}

	if err := e.orchestrator(t, WithGradeConcurrency(1)).Process(context.Background(), e.scriptID); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := e.status(t); got != constants.StatusGradingComplete {
		t.Fatalf("status = %v, want grading_complete", got)
	}

	answers, _ := e.answers.ListByScript(context.Background(), e.scriptID)
	for _, a := range answers {
		if a.HasFlag(constants.FlagGradingFailed) {
			t.Error("transient failure must not flag grading_failed after retry success")
		}
	}
}

func TestProcessOCRFailureAbsorbsToError(t *testing.T) {
	e := newEnv(t)
	e.extractor.fn = func() (ocr.TextExtractionResult, error) {
		return ocr.TextExtractionResult{}, &common.TransientError{Cause: errors.New("engine crash")}
	}

	err := e.orchestrator(t).Process(context.Background(), e.scriptID)
	if err == nil {
		t.Fatal("Process should report the stage failure")
	}
	if got := e.status(t); got != constants.StatusError {
		t.Fatalf("status = %v, want error", got)
	}
	script, _ := e.scripts.GetByID(context.Background(), e.scriptID)
	if script.ErrorReason == nil || *script.ErrorReason == "" {
		t.Error("error reason not recorded")
	}
}

func TestProcessZeroFragmentsStillCompletes(t *testing.T) {
	e := newEnv(t)
	e.segmenter.fn = func(string, []*entity.Question) ([]segmentation.Fragment, error) {
		return nil, nil
	}

	if err := e.orchestrator(t).Process(context.Background(), e.scriptID); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := e.status(t); got != constants.StatusGradingComplete {
		t.Fatalf("status = %v, want grading_complete", got)
	}
	script, _ := e.scripts.GetByID(context.Background(), e.scriptID)
	if script.OverallConfidence == nil || *script.OverallConfidence != 0 {
		t.Errorf("overall confidence = %v, want 0 for empty answer set", script.OverallConfidence)
	}
}

func TestProcessStaleResultDiscarded(t *testing.T) {
	e := newEnv(t)
	// a resubmission lands while OCR is in flight; the stage's swap must lose
	e.extractor.fn = func() (ocr.TextExtractionResult, error) {
		if _, err := e.scripts.Resubmit(context.Background(), e.scriptID); err != nil {
			t.Errorf("Resubmit: %v", err)
		}
		return ocr.TextExtractionResult{FullText: "stale text"}, nil
	}

	if err := e.orchestrator(t).Process(context.Background(), e.scriptID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	script, _ := e.scripts.GetByID(context.Background(), e.scriptID)
	if script.ProcessingStatus != constants.StatusUploaded {
		t.Fatalf("status = %v, want uploaded (new submission owns the script)", script.ProcessingStatus)
	}
	if script.Version != 2 {
		t.Fatalf("version = %d, want 2", script.Version)
	}
	if script.FullExtractedText != nil {
		t.Error("stale OCR text must not be persisted")
	}
}

func TestProcessResumesFromPersistedStatus(t *testing.T) {
	e := newEnv(t)
	studentID := uuid.New()
	text := "1) water moves"
	e.scripts.put(&entity.AnswerScript{
		ID:                e.scriptID,
		ExaminationID:     e.examID,
		StudentID:         &studentID,
		ImagePath:         "scripts/s1.jpg",
		ProcessingStatus:  constants.StatusOCRComplete,
		Version:           1,
		FullExtractedText: &text,
	})

	if err := e.orchestrator(t).Process(context.Background(), e.scriptID); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := e.status(t); got != constants.StatusGradingComplete {
		t.Fatalf("status = %v, want grading_complete", got)
	}
}
