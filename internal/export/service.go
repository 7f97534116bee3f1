package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/constants"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// examination results exports.
type Service struct {
	scripts   repository.AnswerScriptRepository
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
	exams     repository.ExaminationRepository
	roster    repository.RosterRepository
	logger    *slog.Logger
}

func NewService(
	scripts repository.AnswerScriptRepository,
	answers repository.AnswerRepository,
	questions repository.QuestionRepository,
	exams repository.ExaminationRepository,
	roster repository.RosterRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		scripts:   scripts,
		answers:   answers,
		questions: questions,
		exams:     exams,
		roster:    roster,
		logger:    logger,
	}
}

// ExportResultsXLSX returns an XLSX workbook (as bytes) with one row per
// script: student, status, per-question effective grades, total, and flags.
// Unidentified scripts export with an empty student column. Overridden grades
// count at their manual value.
func (s *Service) ExportResultsXLSX(ctx context.Context, examinationID uuid.UUID) ([]byte, error) {
	start := time.Now()

	exam, err := s.exams.GetByID(ctx, examinationID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.ListByExamination(ctx, examinationID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	scripts, err := s.scripts.ListByExamination(ctx, examinationID)
	if err != nil {
		return nil, fmt.Errorf("query scripts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Student", "Student Code", "Status", "Confidence"}
	for _, q := range questions {
		headers = append(headers, fmt.Sprintf("Q%d (/%v)", q.QuestionNumber, q.Marks))
	}
	headers = append(headers, "Total", "Flags")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sc := range scripts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		studentName, studentCode := "", ""
		if sc.StudentID != nil {
			if st, err := s.roster.GetStudent(ctx, *sc.StudentID); err == nil {
				studentName, studentCode = st.Name, st.StudentCode
			}
		}
		write(1, studentName)
		write(2, studentCode)
		write(3, string(sc.ProcessingStatus))
		if sc.ConfidenceLabel != nil {
			write(4, *sc.ConfidenceLabel)
		} else {
			write(4, "")
		}

		grades := make(map[uuid.UUID]float64)
		total := 0.0
		if sc.ProcessingStatus == constants.StatusGradingComplete {
			answers, err := s.answers.ListByScript(ctx, sc.ID)
			if err != nil {
				return nil, fmt.Errorf("query answers: %w", err)
			}
			for _, a := range answers {
				if g, ok := a.EffectiveGrade(); ok {
					grades[a.QuestionID] = g
					total += g
				}
			}
		}
		for i, q := range questions {
			if g, ok := grades[q.ID]; ok {
				write(5+i, g)
			} else {
				write(5+i, "")
			}
		}
		write(5+len(questions), total)

		flagCell := ""
		for i, fl := range sc.Flags {
			if i > 0 {
				flagCell += ", "
			}
			flagCell += string(fl)
		}
		write(6+len(questions), flagCell)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 26) // student
	_ = f.SetColWidth(sheet, "B", "B", 14) // code
	_ = f.SetColWidth(sheet, "C", "C", 18) // status
	_ = f.SetColWidth(sheet, "D", "D", 12) // confidence

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"examination_id", examinationID.String(),
		"title", exam.Title,
		"rows", len(scripts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
