package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
)

const reportPathPrefix = "/reports/"

type ReportService struct {
	reports ports.ReportRepository
	clock   Clock
}

func NewReportService(reports ports.ReportRepository, clock Clock) *ReportService {
	if clock == nil {
		clock = SystemClock()
	}
	return &ReportService{reports: reports, clock: clock}
}

// Create builds an immutable report; the PDF URL is derived from the title
// (lower-cased, whitespace runs joined with hyphens).
func (s *ReportService) Create(ctx context.Context, ownerID uuid.UUID, auditID *uuid.UUID, title string) (*domain.Report, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidReportTitle
	}

	report := &domain.Report{
		ID:          uuid.New(),
		AuditID:     auditID,
		Title:       title,
		GeneratedAt: s.clock.Now(),
		PDFURL:      pdfURL(title),
		OwnerID:     ownerID,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Report, error) {
	return s.reports.ListByOwner(ctx, ownerID)
}

func pdfURL(title string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	return reportPathPrefix + slug + ".pdf"
}
