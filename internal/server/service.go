package server

import (
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/InsightEd01/script-sense-grade-ai-sub001/gen/proto/scriptsense/v1"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

// toStatus maps domain errors onto gRPC codes at the API boundary.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidOverride),
		errors.Is(err, common.ErrInvalidTransition),
		errors.Is(err, common.ErrIdentificationUnresolved),
		errors.Is(err, common.ErrStaleScript):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toProtoScript(s *entity.AnswerScript) *v1.AnswerScript {
	out := &v1.AnswerScript{
		Id:                        s.ID.String(),
		ExaminationId:             s.ExaminationID.String(),
		ProcessingStatus:          string(s.ProcessingStatus),
		Version:                   int32(s.Version),
		ScriptNumber:              int32(s.ScriptNumber),
		ImagePath:                 s.ImagePath,
		EnableMisconductDetection: s.EnableMisconductDetection,
		UploadedAt:                s.UploadedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                 s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.StudentID != nil {
		out.StudentId = s.StudentID.String()
	}
	if s.IdentificationMethod != nil {
		out.IdentificationMethod = string(*s.IdentificationMethod)
	}
	if s.FullExtractedText != nil {
		out.FullExtractedText = *s.FullExtractedText
	}
	if s.OverallConfidence != nil {
		out.OverallConfidence = *s.OverallConfidence
	}
	if s.PredominantMethod != nil {
		out.PredominantMethod = string(*s.PredominantMethod)
	}
	if s.ConfidenceLabel != nil {
		out.ConfidenceLabel = *s.ConfidenceLabel
	}
	if s.ErrorReason != nil {
		out.ErrorReason = *s.ErrorReason
	}
	for _, f := range s.Flags {
		out.Flags = append(out.Flags, string(f))
	}
	return out
}

func toProtoAnswer(a *entity.Answer) *v1.Answer {
	out := &v1.Answer{
		Id:             a.ID.String(),
		AnswerScriptId: a.AnswerScriptID.String(),
		QuestionId:     a.QuestionID.String(),
		ExtractedText:  a.ExtractedText,
		IsOverridden:   a.IsOverridden,
	}
	if a.SegmentationConfidence != nil {
		out.SegmentationConfidence = *a.SegmentationConfidence
	}
	if a.SegmentationMethod != nil {
		out.SegmentationMethod = string(*a.SegmentationMethod)
	}
	if a.AssignedGrade != nil {
		out.AssignedGrade = *a.AssignedGrade
		out.HasAssignedGrade = true
	}
	if a.ManualGrade != nil {
		out.ManualGrade = *a.ManualGrade
	}
	if a.OverrideJustification != nil {
		out.OverrideJustification = *a.OverrideJustification
	}
	if a.LLMExplanation != nil {
		out.LlmExplanation = *a.LLMExplanation
	}
	for _, f := range a.Flags {
		out.Flags = append(out.Flags, string(f))
	}
	return out
}
