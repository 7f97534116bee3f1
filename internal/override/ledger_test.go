package override

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

// fakes embed the repository interfaces so only the methods the ledger touches
// need real bodies; anything else panics loudly.

type fakeAnswers struct {
	repository.AnswerRepository
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Answer
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

type fakeScripts struct {
	repository.AnswerScriptRepository
	mu    sync.Mutex
	items map[uuid.UUID]*entity.AnswerScript
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

func (f *fakeScripts) CorrectIdentification(_ context.Context, id, studentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return common.ErrNotFound
	}
	s.StudentID = &studentID
	return nil
}

type memAudit struct {
	mu              sync.Mutex
	overrides       []OverrideRecord
	identifications []IdentificationRecord
	appendErr       error
}

func (m *memAudit) AppendOverride(_ context.Context, rec OverrideRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides = append(m.overrides, rec)
	return nil
}

func (m *memAudit) AppendIdentification(_ context.Context, rec IdentificationRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identifications = append(m.identifications, rec)
	return nil
}

func (m *memAudit) ListOverrides(_ context.Context, answerID uuid.UUID) ([]OverrideRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []OverrideRecord
	for _, r := range m.overrides {
		if r.AnswerID == answerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memAudit) Close() error { return nil }

type fixture struct {
	ledger  *Ledger
	answers *fakeAnswers
	scripts *fakeScripts
	audit   *memAudit

	schoolID uuid.UUID
	scriptID uuid.UUID
	answerID uuid.UUID
}

func newFixture(status constants.ProcessingStatus, answerFlags ...constants.FlagKind) *fixture {
	schoolID := uuid.New()
	scriptID := uuid.New()
	answerID := uuid.New()

	scripts := &fakeScripts{items: map[uuid.UUID]*entity.AnswerScript{
		scriptID: {ID: scriptID, SchoolID: schoolID, ProcessingStatus: status, Version: 1},
	}}
	grade := 6.0
	answers := &fakeAnswers{items: map[uuid.UUID]*entity.Answer{
		answerID: {ID: answerID, AnswerScriptID: scriptID, AssignedGrade: &grade, Flags: answerFlags},
	}}
	audit := &memAudit{}

	return &fixture{
		ledger:   NewLedger(answers, scripts, audit, slog.Default()),
		answers:  answers,
		scripts:  scripts,
		audit:    audit,
		schoolID: schoolID,
		scriptID: scriptID,
		answerID: answerID,
	}
}

func (f *fixture) ctx() context.Context {
	return common.WithPrincipal(context.Background(), common.Principal{
		UserID:   uuid.New(),
		Role:     common.RoleTeacher,
		SchoolID: f.schoolID,
	})
}

func TestOverrideHappyPath(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)

	got, err := f.ledger.Override(f.ctx(), OverrideRequest{
		AnswerID:      f.answerID,
		ManualGrade:   9,
		Justification: "rubric allows alternate phrasing",
	})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if !got.IsOverridden || got.ManualGrade == nil || *got.ManualGrade != 9 {
		t.Fatalf("answer not overridden: %+v", got)
	}
	if got.AssignedGrade == nil || *got.AssignedGrade != 6 {
		t.Error("assigned grade must stay untouched")
	}
	if g, ok := got.EffectiveGrade(); !ok || g != 9 {
		t.Errorf("EffectiveGrade = %v, want manual 9", g)
	}

	recs := f.audit.overrides
	if len(recs) != 1 {
		t.Fatalf("audit records = %d, want 1", len(recs))
	}
	if recs[0].ManualGrade != 9 || recs[0].Justification == "" {
		t.Errorf("audit record incomplete: %+v", recs[0])
	}
	if recs[0].PreviousGrade != nil {
		t.Errorf("previous manual grade = %v, want nil on first override", recs[0].PreviousGrade)
	}
}

func TestOverrideRequiresJustification(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)

	for _, j := range []string{"", "   ", "\t\n"} {
		_, err := f.ledger.Override(f.ctx(), OverrideRequest{AnswerID: f.answerID, ManualGrade: 5, Justification: j})
		if !errors.Is(err, common.ErrValidation) {
			t.Errorf("justification %q: err = %v, want ErrValidation", j, err)
		}
	}
	if len(f.audit.overrides) != 0 {
		t.Error("rejected override must not reach the audit log")
	}
}

func TestOverridePreconditions(t *testing.T) {
	tests := []struct {
		name    string
		status  constants.ProcessingStatus
		flags   []constants.FlagKind
		wantErr bool
	}{
		{"grading_complete allowed", constants.StatusGradingComplete, nil, false},
		{"grading_pending with failed answer allowed", constants.StatusGradingPending, []constants.FlagKind{constants.FlagGradingFailed}, false},
		{"grading_pending without failure rejected", constants.StatusGradingPending, nil, true},
		{"ocr_pending rejected", constants.StatusOCRPending, nil, true},
		{"uploaded rejected", constants.StatusUploaded, nil, true},
		{"error rejected", constants.StatusError, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.status, tt.flags...)
			_, err := f.ledger.Override(f.ctx(), OverrideRequest{
				AnswerID: f.answerID, ManualGrade: 4, Justification: "second marker disagrees",
			})
			if tt.wantErr {
				if !errors.Is(err, common.ErrInvalidOverride) {
					t.Fatalf("err = %v, want ErrInvalidOverride", err)
				}
			} else if err != nil {
				t.Fatalf("Override: %v", err)
			}
		})
	}
}

func TestOverrideLastWriteWinsWithFullHistory(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)
	ctx := f.ctx()

	if _, err := f.ledger.Override(ctx, OverrideRequest{AnswerID: f.answerID, ManualGrade: 7, Justification: "first pass"}); err != nil {
		t.Fatalf("first Override: %v", err)
	}
	got, err := f.ledger.Override(ctx, OverrideRequest{AnswerID: f.answerID, ManualGrade: 8.5, Justification: "moderation meeting"})
	if err != nil {
		t.Fatalf("second Override: %v", err)
	}
	if *got.ManualGrade != 8.5 {
		t.Fatalf("manual grade = %v, want last write 8.5", *got.ManualGrade)
	}

	hist, err := f.ledger.History(ctx, f.answerID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	if hist[1].PreviousGrade == nil || *hist[1].PreviousGrade != 7 {
		t.Errorf("second record previous grade = %v, want 7", hist[1].PreviousGrade)
	}
}

func TestOverrideRejectsWrongSchool(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)
	ctx := common.WithPrincipal(context.Background(), common.Principal{
		UserID:   uuid.New(),
		Role:     common.RoleTeacher,
		SchoolID: uuid.New(), // different tenant
	})

	_, err := f.ledger.Override(ctx, OverrideRequest{AnswerID: f.answerID, ManualGrade: 5, Justification: "x"})
	if !errors.Is(err, common.ErrInvalidOverride) {
		t.Fatalf("err = %v, want ErrInvalidOverride", err)
	}
}

func TestOverrideMissingPrincipal(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)
	_, err := f.ledger.Override(context.Background(), OverrideRequest{AnswerID: f.answerID, ManualGrade: 5, Justification: "x"})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestOverrideAuditFailureSurfaces(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)
	f.audit.appendErr = errors.New("disk full")

	_, err := f.ledger.Override(f.ctx(), OverrideRequest{AnswerID: f.answerID, ManualGrade: 5, Justification: "x"})
	if err == nil {
		t.Fatal("audit append failure must not be swallowed")
	}
}

func TestCorrectIdentificationAudited(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)
	prior := uuid.New()
	f.scripts.items[f.scriptID].StudentID = &prior
	newStudent := uuid.New()

	got, err := f.ledger.CorrectIdentification(f.ctx(), f.scriptID, newStudent, "wrong sheet attached")
	if err != nil {
		t.Fatalf("CorrectIdentification: %v", err)
	}
	if got.StudentID == nil || *got.StudentID != newStudent {
		t.Fatalf("student = %v, want %v", got.StudentID, newStudent)
	}

	if len(f.audit.identifications) != 1 {
		t.Fatalf("identification audit records = %d, want 1", len(f.audit.identifications))
	}
	rec := f.audit.identifications[0]
	if rec.PreviousStudentID == nil || *rec.PreviousStudentID != prior {
		t.Errorf("previous student = %v, want %v", rec.PreviousStudentID, prior)
	}
	if rec.NewStudentID != newStudent {
		t.Errorf("new student = %v, want %v", rec.NewStudentID, newStudent)
	}
}

func TestConcurrentOverridesSerialize(t *testing.T) {
	f := newFixture(constants.StatusGradingComplete)
	ctx := f.ctx()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := f.ledger.Override(ctx, OverrideRequest{
				AnswerID:      f.answerID,
				ManualGrade:   float64(n),
				Justification: "concurrent moderation",
			})
			if err != nil {
				t.Errorf("Override: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if len(f.audit.overrides) != 8 {
		t.Fatalf("audit records = %d, want every override recorded", len(f.audit.overrides))
	}
	final, _ := f.answers.GetByID(ctx, f.answerID)
	if final.ManualGrade == nil {
		t.Fatal("manual grade missing after concurrent overrides")
	}
	// last write wins: the final grade matches the last audit record
	last := f.audit.overrides[len(f.audit.overrides)-1]
	if *final.ManualGrade != last.ManualGrade {
		t.Fatalf("final grade %v does not match last audit record %v", *final.ManualGrade, last.ManualGrade)
	}
}
