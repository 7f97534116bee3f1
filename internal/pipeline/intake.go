package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/blobstore"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/identify"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

// Enqueuer hands a script to the background workers. Implemented by
// async.ScriptQueue.
type Enqueuer interface {
	Enqueue(scriptID uuid.UUID) error
}

// Intake registers uploaded script images: validation, content-hash dedup,
// blob storage, identification, and handoff to the worker queue.
type Intake struct {
	scripts  repository.AnswerScriptRepository
	exams    repository.ExaminationRepository
	roster   repository.RosterRepository
	resolver *identify.Resolver
	blobs    blobstore.Store
	queue    Enqueuer
	log      *slog.Logger
}

func NewIntake(
	scripts repository.AnswerScriptRepository,
	exams repository.ExaminationRepository,
	roster repository.RosterRepository,
	resolver *identify.Resolver,
	blobs blobstore.Store,
	queue Enqueuer,
	log *slog.Logger,
) *Intake {
	return &Intake{
		scripts:  scripts,
		exams:    exams,
		roster:   roster,
		resolver: resolver,
		blobs:    blobs,
		queue:    queue,
		log:      log.With(slog.String("component", "intake")),
	}
}

// SubmitRequest is one uploaded script image.
type SubmitRequest struct {
	ExaminationID             uuid.UUID
	Filename                  string
	Data                      []byte
	StudentCodeHint           *string
	ScriptNumber              int
	CustomInstructions        *string
	EnableMisconductDetection bool
}

// Submit registers an upload and starts processing. Re-uploading identical
// bytes for the same examination returns the existing script instead of a
// duplicate. An unresolved identity is not an error here: the script is held
// in uploaded awaiting Identify.
func (in *Intake) Submit(ctx context.Context, req SubmitRequest) (*entity.AnswerScript, error) {
	principal, ok := common.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: missing principal", common.ErrInvalidInput)
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", common.ErrValidation)
	}
	if !constants.AllowedExt(filepath.Ext(req.Filename)) {
		return nil, fmt.Errorf("%w: unsupported file type %q", common.ErrValidation, req.Filename)
	}

	exam, err := in.exams.GetByID(ctx, req.ExaminationID)
	if err != nil {
		return nil, err
	}
	if !principal.CanManage(exam.SchoolID) {
		return nil, fmt.Errorf("%w: examination belongs to another school", common.ErrInvalidInput)
	}

	hash := blobstore.ContentHash(req.Data)
	if existing, err := in.scripts.FindByHash(ctx, req.ExaminationID, hash); err == nil {
		in.log.Info("intake.duplicate_upload",
			slog.String("script_id", existing.ID.String()),
			slog.String("examination_id", req.ExaminationID.String()))
		return existing, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	// Identify before storing so the blob path can carry the student slot.
	var (
		studentID *uuid.UUID
		method    constants.IdentificationMethod
	)
	res, err := in.resolver.Resolve(ctx, identify.Scope{
		SchoolID:      exam.SchoolID,
		ExaminationID: req.ExaminationID,
	}, req.Data, req.StudentCodeHint)
	switch {
	case err == nil:
		studentID, method = &res.StudentID, res.Method
	case errors.Is(err, common.ErrIdentificationUnresolved):
		in.log.Info("intake.identity_unresolved",
			slog.String("examination_id", req.ExaminationID.String()))
	default:
		return nil, err
	}

	path := blobstore.ScriptPath(exam.TeacherID, studentID, req.ExaminationID, time.Now(), req.Filename)
	if _, err := in.blobs.Put(ctx, path, req.Data); err != nil {
		return nil, common.WrapError(err, "store script image")
	}

	script, err := in.scripts.Create(ctx, repository.CreateScriptRequest{
		ExaminationID:             req.ExaminationID,
		SchoolID:                  exam.SchoolID,
		TeacherID:                 exam.TeacherID,
		ImagePath:                 path,
		ContentHash:               hash,
		ScriptNumber:              req.ScriptNumber,
		CustomInstructions:        req.CustomInstructions,
		EnableMisconductDetection: req.EnableMisconductDetection,
	})
	if err != nil {
		return nil, err
	}

	if studentID != nil {
		if err := in.scripts.SetIdentification(ctx, script.ID, *studentID, method); err != nil {
			return nil, err
		}
		if err := in.queue.Enqueue(script.ID); err != nil {
			return nil, err
		}
	}

	in.log.Info("intake.submitted",
		slog.String("script_id", script.ID.String()),
		slog.String("examination_id", req.ExaminationID.String()),
		slog.Bool("identified", studentID != nil))
	return in.scripts.GetByID(ctx, script.ID)
}

// Identify manually assigns a held script to a roster student by code and
// releases it into the pipeline.
func (in *Intake) Identify(ctx context.Context, scriptID uuid.UUID, studentCode string) (*entity.AnswerScript, error) {
	script, err := in.scripts.GetByID(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if script.ProcessingStatus != constants.StatusUploaded {
		return nil, fmt.Errorf("%w: script already entered processing", common.ErrInvalidTransition)
	}

	studentID, err := in.roster.FindStudent(ctx, script.SchoolID, script.ExaminationID, studentCode)
	if err != nil {
		return nil, err
	}
	if err := in.scripts.SetIdentification(ctx, scriptID, studentID, constants.IdentManual); err != nil {
		return nil, err
	}
	if err := in.queue.Enqueue(scriptID); err != nil {
		return nil, err
	}

	in.log.Info("intake.identified_manually",
		slog.String("script_id", scriptID.String()),
		slog.String("student_id", studentID.String()))
	return in.scripts.GetByID(ctx, scriptID)
}

// Resubmit bumps the script version, clears stage outputs, and re-runs the
// pipeline. In-flight results for the prior version lose their swap.
func (in *Intake) Resubmit(ctx context.Context, scriptID uuid.UUID) (*entity.AnswerScript, error) {
	script, err := in.scripts.Resubmit(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	if script.Identified() {
		if err := in.queue.Enqueue(scriptID); err != nil {
			return nil, err
		}
	}
	in.log.Info("intake.resubmitted",
		slog.String("script_id", scriptID.String()),
		slog.Int("version", script.Version))
	return script, nil
}
