package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/examination"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/student"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// RosterRepository validates candidate codes decoded from scripts against the
// known student roster for a school/examination scope.
type RosterRepository interface {
	// FindStudent resolves a candidate code within the given scope. Returns
	// common.ErrNotFound when the code matches no roster entry, or when the
	// examination does not belong to the school.
	FindStudent(ctx context.Context, schoolID, examinationID uuid.UUID, candidateCode string) (uuid.UUID, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error)
}

type rosterRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRosterRepository(entc *ent.Client, log *slog.Logger) RosterRepository {
	if log == nil {
		log = slog.Default()
	}
	return &rosterRepo{ent: entc, log: log}
}

func (r *rosterRepo) FindStudent(ctx context.Context, schoolID, examinationID uuid.UUID, candidateCode string) (uuid.UUID, error) {
	code := strings.TrimSpace(candidateCode)
	if code == "" {
		return uuid.Nil, common.ErrNotFound
	}

	// The examination anchors the tenant scope; a code from another school's
	// roster must not match.
	ok, err := r.ent.Examination.
		Query().
		Where(
			examination.IDEQ(examinationID),
			examination.SchoolIDEQ(schoolID),
		).
		Exist(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, common.ErrNotFound
	}

	row, err := r.ent.Student.
		Query().
		Where(
			student.SchoolIDEQ(schoolID),
			student.StudentCodeEQ(code),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.Nil, common.ErrNotFound
		}
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (r *rosterRepo) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	row, err := r.ent.Student.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &entity.Student{
		ID:          row.ID,
		SchoolID:    row.SchoolID,
		Name:        row.Name,
		StudentCode: row.StudentCode,
	}, nil
}
