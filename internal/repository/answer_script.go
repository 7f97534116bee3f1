package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent/answerscript"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// CreateScriptRequest carries everything needed to register an uploaded script.
type CreateScriptRequest struct {
	ExaminationID             uuid.UUID
	SchoolID                  uuid.UUID
	TeacherID                 uuid.UUID
	ImagePath                 string
	ContentHash               []byte
	ScriptNumber              int
	CustomInstructions        *string
	EnableMisconductDetection bool
}

// SegmentationOutcome is the script-level result of the segmentation stage.
type SegmentationOutcome struct {
	CombinedText      string
	OverallConfidence float64
	PredominantMethod constants.SegmentationMethod
	ConfidenceLabel   string
}

// AnswerScriptRepository persists answer scripts and enforces the processing
// state machine at the storage boundary: every stage transition is a
// compare-and-swap on (status, version), so a script that was cancelled or
// re-submitted mid-flight fails the swap and the stale stage result is
// discarded by the caller.
type AnswerScriptRepository interface {
	Create(ctx context.Context, req CreateScriptRequest) (*entity.AnswerScript, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AnswerScript, error)
	FindByHash(ctx context.Context, examinationID uuid.UUID, hash []byte) (*entity.AnswerScript, error)
	ListByExamination(ctx context.Context, examinationID uuid.UUID) ([]*entity.AnswerScript, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.AnswerScript, error)

	// SetIdentification records the resolver's decision on a script still in
	// uploaded. CorrectIdentification re-points an already-identified script;
	// the caller is responsible for authorization and audit logging.
	SetIdentification(ctx context.Context, id, studentID uuid.UUID, method constants.IdentificationMethod) error
	CorrectIdentification(ctx context.Context, id, studentID uuid.UUID) error

	BeginOCR(ctx context.Context, id uuid.UUID, version int) error
	FinishOCR(ctx context.Context, id uuid.UUID, version int, fullText string) error
	FinishSegmentation(ctx context.Context, id uuid.UUID, version int, out SegmentationOutcome) error
	FinishGrading(ctx context.Context, id uuid.UUID, version int, flags []constants.FlagKind) error
	MarkError(ctx context.Context, id uuid.UUID, version int, reason string) error

	Resubmit(ctx context.Context, id uuid.UUID) (*entity.AnswerScript, error)
	ListStuck(ctx context.Context, updatedBefore time.Time) ([]uuid.UUID, error)
}

type answerScriptRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAnswerScriptRepository(entc *ent.Client, log *slog.Logger) AnswerScriptRepository {
	if log == nil {
		log = slog.Default()
	}
	return &answerScriptRepo{ent: entc, log: log}
}

func (r *answerScriptRepo) Create(ctx context.Context, req CreateScriptRequest) (*entity.AnswerScript, error) {
	num := req.ScriptNumber
	if num < 1 {
		num = 1
	}
	row, err := r.ent.AnswerScript.
		Create().
		SetExaminationID(req.ExaminationID).
		SetSchoolID(req.SchoolID).
		SetTeacherID(req.TeacherID).
		SetImagePath(req.ImagePath).
		SetContentHash(req.ContentHash).
		SetScriptNumber(num).
		SetNillableCustomInstructions(req.CustomInstructions).
		SetEnableMisconductDetection(req.EnableMisconductDetection).
		Save(ctx)
	if err != nil {
		r.log.Error("answer_script create failed", "examination_id", req.ExaminationID, "err", err)
		return nil, err
	}
	r.log.Info("answer_script created", "script_id", row.ID, "examination_id", req.ExaminationID)
	return toEntityScript(row), nil
}

func (r *answerScriptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AnswerScript, error) {
	row, err := r.ent.AnswerScript.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityScript(row), nil
}

func (r *answerScriptRepo) FindByHash(ctx context.Context, examinationID uuid.UUID, hash []byte) (*entity.AnswerScript, error) {
	row, err := r.ent.AnswerScript.
		Query().
		Where(
			answerscript.ExaminationIDEQ(examinationID),
			answerscript.ContentHashEQ(hash),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityScript(row), nil
}

func (r *answerScriptRepo) ListByExamination(ctx context.Context, examinationID uuid.UUID) ([]*entity.AnswerScript, error) {
	rows, err := r.ent.AnswerScript.
		Query().
		Where(answerscript.ExaminationIDEQ(examinationID)).
		Order(ent.Asc(answerscript.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AnswerScript, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityScript(row))
	}
	return out, nil
}

func (r *answerScriptRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.AnswerScript, error) {
	rows, err := r.ent.AnswerScript.
		Query().
		Where(answerscript.StudentIDEQ(studentID)).
		Order(ent.Asc(answerscript.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AnswerScript, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityScript(row))
	}
	return out, nil
}

func (r *answerScriptRepo) SetIdentification(ctx context.Context, id, studentID uuid.UUID, method constants.IdentificationMethod) error {
	n, err := r.ent.AnswerScript.
		Update().
		Where(
			answerscript.IDEQ(id),
			answerscript.ProcessingStatusEQ(string(constants.StatusUploaded)),
		).
		SetStudentID(studentID).
		SetIdentificationMethod(string(method)).
		Save(ctx)
	if err != nil {
		r.log.Error("answer_script identify failed", "script_id", id, "err", err)
		return err
	}
	if n == 0 {
		return r.explainMiss(ctx, id, constants.StatusUploaded, -1)
	}
	r.log.Info("answer_script identified", "script_id", id, "student_id", studentID, "method", method)
	return nil
}

func (r *answerScriptRepo) CorrectIdentification(ctx context.Context, id, studentID uuid.UUID) error {
	_, err := r.ent.AnswerScript.
		UpdateOneID(id).
		SetStudentID(studentID).
		SetIdentificationMethod(string(constants.IdentManual)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("answer_script identification correction failed", "script_id", id, "err", err)
		return err
	}
	r.log.Info("answer_script identification corrected", "script_id", id, "student_id", studentID)
	return nil
}

func (r *answerScriptRepo) BeginOCR(ctx context.Context, id uuid.UUID, version int) error {
	return r.transition(ctx, id, version, constants.StatusUploaded, constants.StatusOCRPending, nil)
}

func (r *answerScriptRepo) FinishOCR(ctx context.Context, id uuid.UUID, version int, fullText string) error {
	return r.transition(ctx, id, version, constants.StatusOCRPending, constants.StatusOCRComplete,
		func(u *ent.AnswerScriptUpdate) {
			u.SetFullExtractedText(fullText)
		})
}

func (r *answerScriptRepo) FinishSegmentation(ctx context.Context, id uuid.UUID, version int, out SegmentationOutcome) error {
	return r.transition(ctx, id, version, constants.StatusOCRComplete, constants.StatusGradingPending,
		func(u *ent.AnswerScriptUpdate) {
			u.SetCombinedExtractedText(out.CombinedText).
				SetOverallConfidence(out.OverallConfidence).
				SetPredominantMethod(string(out.PredominantMethod)).
				SetConfidenceLabel(out.ConfidenceLabel)
		})
}

func (r *answerScriptRepo) FinishGrading(ctx context.Context, id uuid.UUID, version int, flags []constants.FlagKind) error {
	return r.transition(ctx, id, version, constants.StatusGradingPending, constants.StatusGradingComplete,
		func(u *ent.AnswerScriptUpdate) {
			if len(flags) > 0 {
				u.AppendFlags(fromFlagKinds(flags))
			}
		})
}

func (r *answerScriptRepo) MarkError(ctx context.Context, id uuid.UUID, version int, reason string) error {
	n, err := r.ent.AnswerScript.
		Update().
		Where(
			answerscript.IDEQ(id),
			answerscript.VersionEQ(version),
			answerscript.ProcessingStatusNotIn(
				string(constants.StatusError),
				string(constants.StatusGradingComplete),
			),
		).
		SetProcessingStatus(string(constants.StatusError)).
		SetErrorReason(reason).
		Save(ctx)
	if err != nil {
		r.log.Error("answer_script mark error failed", "script_id", id, "err", err)
		return err
	}
	if n == 0 {
		return r.explainMiss(ctx, id, "", version)
	}
	r.log.Warn("answer_script errored", "script_id", id, "reason", reason)
	return nil
}

// Resubmit restarts the lifecycle: back to uploaded with a bumped version and
// cleared stage outputs. Prior answers are superseded by the caller; the old
// rows stay for audit.
func (r *answerScriptRepo) Resubmit(ctx context.Context, id uuid.UUID) (*entity.AnswerScript, error) {
	row, err := r.ent.AnswerScript.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	updated, err := r.ent.AnswerScript.
		UpdateOneID(id).
		SetProcessingStatus(string(constants.StatusUploaded)).
		SetVersion(row.Version + 1).
		ClearFullExtractedText().
		ClearCombinedExtractedText().
		ClearOverallConfidence().
		ClearPredominantMethod().
		ClearConfidenceLabel().
		ClearErrorReason().
		ClearFlags().
		Save(ctx)
	if err != nil {
		r.log.Error("answer_script resubmit failed", "script_id", id, "err", err)
		return nil, err
	}
	r.log.Info("answer_script resubmitted", "script_id", id, "version", updated.Version)
	return toEntityScript(updated), nil
}

func (r *answerScriptRepo) ListStuck(ctx context.Context, updatedBefore time.Time) ([]uuid.UUID, error) {
	rows, err := r.ent.AnswerScript.
		Query().
		Where(
			answerscript.ProcessingStatusIn(
				string(constants.StatusOCRPending),
				string(constants.StatusOCRComplete),
				string(constants.StatusGradingPending),
			),
			answerscript.UpdatedAtLT(updatedBefore),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// transition performs the CAS edge from -> to for (id, version).
func (r *answerScriptRepo) transition(
	ctx context.Context,
	id uuid.UUID,
	version int,
	from, to constants.ProcessingStatus,
	apply func(*ent.AnswerScriptUpdate),
) error {
	u := r.ent.AnswerScript.
		Update().
		Where(
			answerscript.IDEQ(id),
			answerscript.ProcessingStatusEQ(string(from)),
			answerscript.VersionEQ(version),
		).
		SetProcessingStatus(string(to))
	if apply != nil {
		apply(u)
	}
	n, err := u.Save(ctx)
	if err != nil {
		r.log.Error("answer_script transition failed", "script_id", id, "from", from, "to", to, "err", err)
		return err
	}
	if n == 0 {
		return r.explainMiss(ctx, id, from, version)
	}
	r.log.Info("answer_script transitioned", "script_id", id, "from", from, "to", to, "version", version)
	return nil
}

// explainMiss classifies a zero-row CAS: missing row, stale version, or an
// illegal edge. expectVersion < 0 skips the version check.
func (r *answerScriptRepo) explainMiss(ctx context.Context, id uuid.UUID, from constants.ProcessingStatus, expectVersion int) error {
	row, err := r.ent.AnswerScript.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	if expectVersion >= 0 && row.Version != expectVersion {
		return common.ErrStaleScript
	}
	if from != "" && constants.ProcessingStatus(row.ProcessingStatus) != from {
		return common.ErrInvalidTransition
	}
	return common.ErrInvalidTransition
}

func mergeFlags(existing, add []string) []string {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]string, 0, len(existing)+len(add))
	for _, f := range existing {
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			merged = append(merged, f)
		}
	}
	for _, f := range add {
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			merged = append(merged, f)
		}
	}
	return merged
}
