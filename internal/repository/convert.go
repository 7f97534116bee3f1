package repository

import (
	"encoding/json"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/entity"
)

func toFlagKinds(raw []string) []constants.FlagKind {
	if len(raw) == 0 {
		return nil
	}
	out := make([]constants.FlagKind, 0, len(raw))
	for _, s := range raw {
		out = append(out, constants.FlagKind(s))
	}
	return out
}

func fromFlagKinds(flags []constants.FlagKind) []string {
	if len(flags) == 0 {
		return nil
	}
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, string(f))
	}
	return out
}

func toEntityScript(row *ent.AnswerScript) *entity.AnswerScript {
	s := &entity.AnswerScript{
		ID:                        row.ID,
		ExaminationID:             row.ExaminationID,
		SchoolID:                  row.SchoolID,
		TeacherID:                 row.TeacherID,
		StudentID:                 row.StudentID,
		ImagePath:                 row.ImagePath,
		ContentHash:               row.ContentHash,
		ScriptNumber:              row.ScriptNumber,
		ProcessingStatus:          constants.ProcessingStatus(row.ProcessingStatus),
		Version:                   row.Version,
		FullExtractedText:         row.FullExtractedText,
		CombinedExtractedText:     row.CombinedExtractedText,
		CustomInstructions:        row.CustomInstructions,
		EnableMisconductDetection: row.EnableMisconductDetection,
		Flags:                     toFlagKinds(row.Flags),
		OverallConfidence:         row.OverallConfidence,
		ConfidenceLabel:           row.ConfidenceLabel,
		ErrorReason:               row.ErrorReason,
		UploadedAt:                row.UploadedAt,
		UpdatedAt:                 row.UpdatedAt,
	}
	if row.IdentificationMethod != nil {
		m := constants.IdentificationMethod(*row.IdentificationMethod)
		s.IdentificationMethod = &m
	}
	if row.PredominantMethod != nil {
		m := constants.SegmentationMethod(*row.PredominantMethod)
		s.PredominantMethod = &m
	}
	return s
}

func toEntityAnswer(row *ent.Answer) *entity.Answer {
	a := &entity.Answer{
		ID:                     row.ID,
		AnswerScriptID:         row.AnswerScriptID,
		QuestionID:             row.QuestionID,
		ExtractedText:          row.ExtractedText,
		SegmentationConfidence: row.SegmentationConfidence,
		AssignedGrade:          row.AssignedGrade,
		ManualGrade:            row.ManualGrade,
		IsOverridden:           row.IsOverridden,
		OverrideJustification:  row.OverrideJustification,
		LLMExplanation:         row.LlmExplanation,
		Flags:                  toFlagKinds(row.Flags),
		Superseded:             row.Superseded,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}
	if row.SegmentationMethod != nil {
		m := constants.SegmentationMethod(*row.SegmentationMethod)
		a.SegmentationMethod = &m
	}
	if len(row.SpatialLocation) > 0 {
		var loc entity.SpatialLocation
		if err := json.Unmarshal(row.SpatialLocation, &loc); err == nil {
			a.SpatialLocation = &loc
		}
	}
	return a
}

func toEntityQuestion(row *ent.Question) *entity.Question {
	return &entity.Question{
		ID:                row.ID,
		ExaminationID:     row.ExaminationID,
		QuestionNumber:    row.QuestionNumber,
		Text:              row.Text,
		ModelAnswer:       row.ModelAnswer,
		ModelAnswerSource: constants.ModelAnswerSource(row.ModelAnswerSource),
		Marks:             row.Marks,
		Tolerance:         row.Tolerance,
	}
}
