package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// ExaminationRepository reads examination metadata.
type ExaminationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Examination, error)
}

type examinationRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExaminationRepository(entc *ent.Client, log *slog.Logger) ExaminationRepository {
	if log == nil {
		log = slog.Default()
	}
	return &examinationRepo{ent: entc, log: log}
}

func (r *examinationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Examination, error) {
	row, err := r.ent.Examination.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &entity.Examination{
		ID:        row.ID,
		SchoolID:  row.SchoolID,
		TeacherID: row.TeacherID,
		Title:     row.Title,
		Subject:   row.Subject,
		CreatedAt: row.CreatedAt,
	}, nil
}
