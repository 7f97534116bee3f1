package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/question"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// QuestionRepository reads examination questions. The pipeline never writes them.
type QuestionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	ListByExamination(ctx context.Context, examinationID uuid.UUID) ([]*entity.Question, error)
}

type questionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewQuestionRepository(entc *ent.Client, log *slog.Logger) QuestionRepository {
	if log == nil {
		log = slog.Default()
	}
	return &questionRepo{ent: entc, log: log}
}

func (r *questionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	row, err := r.ent.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityQuestion(row), nil
}

func (r *questionRepo) ListByExamination(ctx context.Context, examinationID uuid.UUID) ([]*entity.Question, error) {
	rows, err := r.ent.Question.
		Query().
		Where(question.ExaminationIDEQ(examinationID)).
		Order(ent.Asc(question.FieldQuestionNumber)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityQuestion(row))
	}
	return out, nil
}
