package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answer"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// CreateAnswerRequest is one segmented fragment to persist as an Answer row.
type CreateAnswerRequest struct {
	QuestionID             uuid.UUID
	ExtractedText          string
	SegmentationConfidence *float64
	SegmentationMethod     constants.SegmentationMethod
	SpatialLocation        *entity.SpatialLocation
}

// AnswerRepository persists per-question answers. Segmentation confidence is
// write-once: a re-segmentation supersedes prior rows instead of mutating them.
type AnswerRepository interface {
	CreateBatch(ctx context.Context, scriptID uuid.UUID, frags []CreateAnswerRequest) ([]*entity.Answer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error)
	ListByScript(ctx context.Context, scriptID uuid.UUID) ([]*entity.Answer, error)
	SetGrade(ctx context.Context, id uuid.UUID, grade float64, explanation string, flags []constants.FlagKind) error
	AddFlags(ctx context.Context, id uuid.UUID, flags []constants.FlagKind) error
	SetOverride(ctx context.Context, id uuid.UUID, manualGrade float64, justification string) (*entity.Answer, error)
	SupersedeByScript(ctx context.Context, scriptID uuid.UUID) error
}

type answerRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAnswerRepository(entc *ent.Client, log *slog.Logger) AnswerRepository {
	if log == nil {
		log = slog.Default()
	}
	return &answerRepo{ent: entc, log: log}
}

func (r *answerRepo) CreateBatch(ctx context.Context, scriptID uuid.UUID, frags []CreateAnswerRequest) ([]*entity.Answer, error) {
	builders := make([]*ent.AnswerCreate, 0, len(frags))
	for _, f := range frags {
		b := r.ent.Answer.
			Create().
			SetAnswerScriptID(scriptID).
			SetQuestionID(f.QuestionID).
			SetExtractedText(f.ExtractedText).
			SetNillableSegmentationConfidence(f.SegmentationConfidence).
			SetSegmentationMethod(string(f.SegmentationMethod))
		if f.SpatialLocation != nil {
			if raw, err := json.Marshal(f.SpatialLocation); err == nil {
				b.SetSpatialLocation(raw)
			}
		}
		builders = append(builders, b)
	}
	rows, err := r.ent.Answer.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.log.Error("answer create batch failed", "script_id", scriptID, "count", len(frags), "err", err)
		return nil, err
	}
	r.log.Info("answers created", "script_id", scriptID, "count", len(rows))
	out := make([]*entity.Answer, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityAnswer(row))
	}
	return out, nil
}

func (r *answerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error) {
	row, err := r.ent.Answer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityAnswer(row), nil
}

// ListByScript returns the active (non-superseded) answers for a script.
func (r *answerRepo) ListByScript(ctx context.Context, scriptID uuid.UUID) ([]*entity.Answer, error) {
	rows, err := r.ent.Answer.
		Query().
		Where(
			answer.AnswerScriptIDEQ(scriptID),
			answer.SupersededEQ(false),
		).
		Order(ent.Asc(answer.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Answer, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityAnswer(row))
	}
	return out, nil
}

func (r *answerRepo) SetGrade(ctx context.Context, id uuid.UUID, grade float64, explanation string, flags []constants.FlagKind) error {
	u := r.ent.Answer.
		UpdateOneID(id).
		SetAssignedGrade(grade).
		SetLlmExplanation(explanation)
	if len(flags) > 0 {
		u.AppendFlags(fromFlagKinds(flags))
	}
	if _, err := u.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("answer set grade failed", "answer_id", id, "err", err)
		return err
	}
	return nil
}

func (r *answerRepo) AddFlags(ctx context.Context, id uuid.UUID, flags []constants.FlagKind) error {
	if len(flags) == 0 {
		return nil
	}
	row, err := r.ent.Answer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	merged := mergeFlags(row.Flags, fromFlagKinds(flags))
	if len(merged) == len(row.Flags) {
		return nil
	}
	_, err = r.ent.Answer.UpdateOneID(id).SetFlags(merged).Save(ctx)
	return err
}

// SetOverride records a manual grade. The assigned grade and LLM explanation
// are never modified by an override.
func (r *answerRepo) SetOverride(ctx context.Context, id uuid.UUID, manualGrade float64, justification string) (*entity.Answer, error) {
	row, err := r.ent.Answer.
		UpdateOneID(id).
		SetManualGrade(manualGrade).
		SetIsOverridden(true).
		SetOverrideJustification(justification).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("answer override failed", "answer_id", id, "err", err)
		return nil, err
	}
	r.log.Info("answer overridden", "answer_id", id, "manual_grade", manualGrade)
	return toEntityAnswer(row), nil
}

func (r *answerRepo) SupersedeByScript(ctx context.Context, scriptID uuid.UUID) error {
	n, err := r.ent.Answer.
		Update().
		Where(
			answer.AnswerScriptIDEQ(scriptID),
			answer.SupersededEQ(false),
		).
		SetSuperseded(true).
		Save(ctx)
	if err != nil {
		r.log.Error("answer supersede failed", "script_id", scriptID, "err", err)
		return err
	}
	if n > 0 {
		r.log.Info("answers superseded", "script_id", scriptID, "count", n)
	}
	return nil
}
