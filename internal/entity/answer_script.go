package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
)

// AnswerScript represents one uploaded answer sheet for data transfer between layers.
type AnswerScript struct {
	ID                        uuid.UUID                      `json:"id"`
	ExaminationID             uuid.UUID                      `json:"examination_id"`
	SchoolID                  uuid.UUID                      `json:"school_id"`
	TeacherID                 uuid.UUID                      `json:"teacher_id"`
	StudentID                 *uuid.UUID                     `json:"student_id,omitempty"`
	ImagePath                 string                         `json:"image_path"`
	ContentHash               []byte                         `json:"content_hash,omitempty"`
	ScriptNumber              int                            `json:"script_number"`
	ProcessingStatus          constants.ProcessingStatus     `json:"processing_status"`
	Version                   int                            `json:"version"`
	IdentificationMethod      *constants.IdentificationMethod `json:"identification_method,omitempty"`
	FullExtractedText         *string                        `json:"full_extracted_text,omitempty"`
	CombinedExtractedText     *string                        `json:"combined_extracted_text,omitempty"`
	CustomInstructions        *string                        `json:"custom_instructions,omitempty"`
	EnableMisconductDetection bool                           `json:"enable_misconduct_detection"`
	Flags                     []constants.FlagKind           `json:"flags,omitempty"`
	OverallConfidence         *float64                       `json:"overall_confidence,omitempty"`
	PredominantMethod         *constants.SegmentationMethod  `json:"predominant_method,omitempty"`
	ConfidenceLabel           *string                        `json:"confidence_label,omitempty"`
	ErrorReason               *string                        `json:"error_reason,omitempty"`
	UploadedAt                time.Time                      `json:"uploaded_at"`
	UpdatedAt                 time.Time                      `json:"updated_at"`
}

// Identified reports whether the script has been resolved to a student.
func (s *AnswerScript) Identified() bool {
	return s.StudentID != nil && *s.StudentID != uuid.Nil
}

// HasFlag reports whether the script-level flag set contains kind.
func (s *AnswerScript) HasFlag(kind constants.FlagKind) bool {
	for _, f := range s.Flags {
		if f == kind {
			return true
		}
	}
	return false
}
