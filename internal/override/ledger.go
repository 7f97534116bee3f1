package override

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

// Ledger applies manual grade overrides and post-grading identification
// corrections. Writes to the same script are serialized so concurrent
// overrides resolve last-write-wins with a complete audit trail.
type Ledger struct {
	answers repository.AnswerRepository
	scripts repository.AnswerScriptRepository
	audit   AuditStore
	locks   keyedMutex
	log     *slog.Logger
}

func NewLedger(answers repository.AnswerRepository, scripts repository.AnswerScriptRepository, audit AuditStore, log *slog.Logger) *Ledger {
	return &Ledger{
		answers: answers,
		scripts: scripts,
		audit:   audit,
		log:     log.With(slog.String("component", "override_ledger")),
	}
}

// OverrideRequest carries one manual grade override.
type OverrideRequest struct {
	AnswerID      uuid.UUID
	ManualGrade   float64
	Justification string
}

// Override sets a manual grade on an answer. The assigned grade and LLM
// explanation are preserved alongside the override. Allowed only when the
// script is grading_complete, or grading_pending with this answer marked
// grading_failed.
func (l *Ledger) Override(ctx context.Context, req OverrideRequest) (*entity.Answer, error) {
	if strings.TrimSpace(req.Justification) == "" {
		return nil, fmt.Errorf("%w: override justification must not be empty", common.ErrValidation)
	}

	principal, ok := common.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: missing principal", common.ErrInvalidInput)
	}

	answer, err := l.answers.GetByID(ctx, req.AnswerID)
	if err != nil {
		return nil, err
	}
	script, err := l.scripts.GetByID(ctx, answer.AnswerScriptID)
	if err != nil {
		return nil, err
	}
	if !principal.CanManage(script.SchoolID) {
		return nil, fmt.Errorf("%w: principal may not override grades for this school", common.ErrInvalidOverride)
	}

	unlock := l.locks.lock(script.ID)
	defer unlock()

	// Re-read under the lock so the precondition check, the previous-grade
	// snapshot, and the write all see the same state.
	script, err = l.scripts.GetByID(ctx, answer.AnswerScriptID)
	if err != nil {
		return nil, err
	}
	answer, err = l.answers.GetByID(ctx, req.AnswerID)
	if err != nil {
		return nil, err
	}
	if err := overridable(script, answer); err != nil {
		return nil, err
	}

	prev := answer.ManualGrade
	updated, err := l.answers.SetOverride(ctx, req.AnswerID, req.ManualGrade, req.Justification)
	if err != nil {
		return nil, err
	}

	if err := l.audit.AppendOverride(ctx, OverrideRecord{
		AnswerID:      req.AnswerID,
		ScriptID:      script.ID,
		ActorID:       principal.UserID,
		PreviousGrade: prev,
		ManualGrade:   req.ManualGrade,
		Justification: req.Justification,
	}); err != nil {
		l.log.Error("ledger.audit_append_failed",
			slog.String("answer_id", req.AnswerID.String()),
			slog.String("error", err.Error()))
		return nil, common.WrapError(err, "append override audit record")
	}

	l.log.Info("ledger.override_applied",
		slog.String("answer_id", req.AnswerID.String()),
		slog.String("script_id", script.ID.String()),
		slog.String("actor_id", principal.UserID.String()),
		slog.Float64("manual_grade", req.ManualGrade))
	return updated, nil
}

// History returns the full override record for an answer, oldest first.
func (l *Ledger) History(ctx context.Context, answerID uuid.UUID) ([]OverrideRecord, error) {
	return l.audit.ListOverrides(ctx, answerID)
}

// CorrectIdentification reassigns a script to a different student after the
// initial resolution, recording the correction.
func (l *Ledger) CorrectIdentification(ctx context.Context, scriptID, studentID uuid.UUID, reason string) (*entity.AnswerScript, error) {
	principal, ok := common.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: missing principal", common.ErrInvalidInput)
	}

	unlock := l.locks.lock(scriptID)
	defer unlock()

	script, err := l.scripts.GetByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if !principal.CanManage(script.SchoolID) {
		return nil, fmt.Errorf("%w: principal may not correct identification for this school", common.ErrInvalidOverride)
	}

	prev := script.StudentID
	if err := l.scripts.CorrectIdentification(ctx, scriptID, studentID); err != nil {
		return nil, err
	}

	if err := l.audit.AppendIdentification(ctx, IdentificationRecord{
		ScriptID:          scriptID,
		PreviousStudentID: prev,
		NewStudentID:      studentID,
		ActorID:           principal.UserID,
		Reason:            reason,
	}); err != nil {
		l.log.Error("ledger.audit_append_failed",
			slog.String("script_id", scriptID.String()),
			slog.String("error", err.Error()))
		return nil, common.WrapError(err, "append identification audit record")
	}

	l.log.Info("ledger.identification_corrected",
		slog.String("script_id", scriptID.String()),
		slog.String("student_id", studentID.String()),
		slog.String("actor_id", principal.UserID.String()))
	return l.scripts.GetByID(ctx, scriptID)
}

func overridable(script *entity.AnswerScript, answer *entity.Answer) error {
	switch script.ProcessingStatus {
	case constants.StatusGradingComplete:
		return nil
	case constants.StatusGradingPending:
		if answer.HasFlag(constants.FlagGradingFailed) {
			return nil
		}
		return fmt.Errorf("%w: script is still grading and this answer has not failed grading", common.ErrInvalidOverride)
	default:
		return fmt.Errorf("%w: script must finish grading before overrides", common.ErrInvalidOverride)
	}
}

// keyedMutex serializes work per script ID.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uuid.UUID]*entry)
	}
	e, ok := k.locks[id]
	if !ok {
		e = &entry{}
		k.locks[id] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
