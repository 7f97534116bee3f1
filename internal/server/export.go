package server

import (
	"context"
	"fmt"

	"log/slog"

	v1 "github.com/InsightEd01/script-sense-grade-ai-sub001/gen/proto/scriptsense/v1"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportResults(ctx context.Context, req *v1.ExportResultsRequest) (*v1.ExportResultsResponse, error) {
	examID, err := parseUUID(req.GetExaminationId(), "examination_id")
	if err != nil {
		return nil, err
	}

	data, err := s.svc.ExportResultsXLSX(ctx, examID)
	if err != nil {
		s.logger.Warn("export results failed", "examination_id", examID, "error", err)
		return nil, toStatus(err)
	}
	return &v1.ExportResultsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("results_%s.xlsx", examID),
	}, nil
}
