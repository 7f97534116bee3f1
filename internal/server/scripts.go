package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	v1 "github.com/InsightEd01/script-sense-grade-ai-sub001/gen/proto/scriptsense/v1"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/override"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/pipeline"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

type ScriptSenseService struct {
	v1.UnimplementedScriptSenseServiceServer
	intake  *pipeline.Intake
	ledger  *override.Ledger
	scripts repository.AnswerScriptRepository
	answers repository.AnswerRepository
	logger  *slog.Logger
}

func NewScriptSenseService(
	intake *pipeline.Intake,
	ledger *override.Ledger,
	scripts repository.AnswerScriptRepository,
	answers repository.AnswerRepository,
	logger *slog.Logger,
) *ScriptSenseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScriptSenseService{
		intake:  intake,
		ledger:  ledger,
		scripts: scripts,
		answers: answers,
		logger:  logger,
	}
}

func (s *ScriptSenseService) SubmitScript(ctx context.Context, req *v1.SubmitScriptRequest) (*v1.SubmitScriptResponse, error) {
	examID, err := parseUUID(req.GetExaminationId(), "examination_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetFilename()) == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}

	sub := pipeline.SubmitRequest{
		ExaminationID:             examID,
		Filename:                  req.GetFilename(),
		Data:                      req.GetData(),
		ScriptNumber:              int(req.GetScriptNumber()),
		EnableMisconductDetection: req.GetEnableMisconductDetection(),
	}
	if hint := strings.TrimSpace(req.GetStudentCodeHint()); hint != "" {
		sub.StudentCodeHint = &hint
	}
	if ci := strings.TrimSpace(req.GetCustomInstructions()); ci != "" {
		sub.CustomInstructions = &ci
	}

	script, err := s.intake.Submit(ctx, sub)
	if err != nil {
		s.logger.Warn("submit script failed", "examination_id", examID, "error", err)
		return nil, toStatus(err)
	}
	return &v1.SubmitScriptResponse{Script: toProtoScript(script)}, nil
}

func (s *ScriptSenseService) ResolveIdentity(ctx context.Context, req *v1.ResolveIdentityRequest) (*v1.ResolveIdentityResponse, error) {
	scriptID, err := parseUUID(req.GetScriptId(), "script_id")
	if err != nil {
		return nil, err
	}

	// Held scripts identify by roster code; identified scripts correct by
	// explicit student id through the audited ledger path.
	switch {
	case strings.TrimSpace(req.GetStudentCode()) != "":
		script, err := s.intake.Identify(ctx, scriptID, strings.TrimSpace(req.GetStudentCode()))
		if err != nil {
			return nil, toStatus(err)
		}
		return &v1.ResolveIdentityResponse{Script: toProtoScript(script)}, nil
	case strings.TrimSpace(req.GetStudentId()) != "":
		studentID, err := parseUUID(req.GetStudentId(), "student_id")
		if err != nil {
			return nil, err
		}
		script, err := s.ledger.CorrectIdentification(ctx, scriptID, studentID, req.GetReason())
		if err != nil {
			return nil, toStatus(err)
		}
		return &v1.ResolveIdentityResponse{Script: toProtoScript(script)}, nil
	default:
		return nil, status.Error(codes.InvalidArgument, "student_code or student_id is required")
	}
}

func (s *ScriptSenseService) OverrideGrade(ctx context.Context, req *v1.OverrideGradeRequest) (*v1.OverrideGradeResponse, error) {
	answerID, err := parseUUID(req.GetAnswerId(), "answer_id")
	if err != nil {
		return nil, err
	}

	answer, err := s.ledger.Override(ctx, override.OverrideRequest{
		AnswerID:      answerID,
		ManualGrade:   req.GetManualGrade(),
		Justification: req.GetJustification(),
	})
	if err != nil {
		s.logger.Warn("override failed", "answer_id", answerID, "error", err)
		return nil, toStatus(err)
	}
	return &v1.OverrideGradeResponse{Answer: toProtoAnswer(answer)}, nil
}

func (s *ScriptSenseService) GetAnswerScript(ctx context.Context, req *v1.GetAnswerScriptRequest) (*v1.GetAnswerScriptResponse, error) {
	scriptID, err := parseUUID(req.GetScriptId(), "script_id")
	if err != nil {
		return nil, err
	}
	script, err := s.scripts.GetByID(ctx, scriptID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &v1.GetAnswerScriptResponse{Script: toProtoScript(script)}, nil
}

func (s *ScriptSenseService) ListAnswerScripts(ctx context.Context, req *v1.ListAnswerScriptsRequest) (*v1.ListAnswerScriptsResponse, error) {
	hasExam := strings.TrimSpace(req.GetExaminationId()) != ""
	hasStudent := strings.TrimSpace(req.GetStudentId()) != ""
	if hasExam == hasStudent {
		return nil, status.Error(codes.InvalidArgument, "exactly one of examination_id or student_id is required")
	}

	var (
		scripts []*entity.AnswerScript
		err     error
	)
	if hasExam {
		examID, perr := parseUUID(req.GetExaminationId(), "examination_id")
		if perr != nil {
			return nil, perr
		}
		scripts, err = s.scripts.ListByExamination(ctx, examID)
	} else {
		studentID, perr := parseUUID(req.GetStudentId(), "student_id")
		if perr != nil {
			return nil, perr
		}
		scripts, err = s.scripts.ListByStudent(ctx, studentID)
	}
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*v1.AnswerScript, 0, len(scripts))
	for _, sc := range scripts {
		out = append(out, toProtoScript(sc))
	}
	return &v1.ListAnswerScriptsResponse{Scripts: out}, nil
}

func (s *ScriptSenseService) ListAnswers(ctx context.Context, req *v1.ListAnswersRequest) (*v1.ListAnswersResponse, error) {
	scriptID, err := parseUUID(req.GetScriptId(), "script_id")
	if err != nil {
		return nil, err
	}
	answers, err := s.answers.ListByScript(ctx, scriptID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*v1.Answer, 0, len(answers))
	for _, a := range answers {
		out = append(out, toProtoAnswer(a))
	}
	return &v1.ListAnswersResponse{Answers: out}, nil
}

func (s *ScriptSenseService) ResubmitScript(ctx context.Context, req *v1.ResubmitScriptRequest) (*v1.ResubmitScriptResponse, error) {
	scriptID, err := parseUUID(req.GetScriptId(), "script_id")
	if err != nil {
		return nil, err
	}
	script, err := s.intake.Resubmit(ctx, scriptID)
	if err != nil {
		return nil, toStatus(err)
	}
	if script.ProcessingStatus != constants.StatusUploaded {
		s.logger.Warn("resubmit left unexpected status", "script_id", scriptID, "status", script.ProcessingStatus)
	}
	return &v1.ResubmitScriptResponse{Script: toProtoScript(script)}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
