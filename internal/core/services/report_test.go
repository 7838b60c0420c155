package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bias-audit-service/internal/core/domain"
	"bias-audit-service/internal/core/services"
	"bias-audit-service/internal/testutil"
)

func TestReportService_Create_DerivesPDFURL(t *testing.T) {
	reports := new(testutil.MockReportRepo)
	clock := testutil.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := services.NewReportService(reports, clock)

	reports.On("Create", mock.Anything, mock.AnythingOfType("*domain.Report")).Return(nil)

	auditID := uuid.New()
	report, err := svc.Create(context.Background(), uuid.New(), &auditID, "Credit Model Audit Report")
	require.NoError(t, err)

	assert.Equal(t, "/reports/credit-model-audit-report.pdf", report.PDFURL)
	assert.Equal(t, clock.Now(), report.GeneratedAt)
	assert.Equal(t, &auditID, report.AuditID)
}

func TestReportService_Create_CollapsesWhitespaceRuns(t *testing.T) {
	reports := new(testutil.MockReportRepo)
	svc := services.NewReportService(reports, testutil.NewFakeClock(time.Now()))

	reports.On("Create", mock.Anything, mock.AnythingOfType("*domain.Report")).Return(nil)

	report, err := svc.Create(context.Background(), uuid.New(), nil, "HR   Screening\tAnalysis")
	require.NoError(t, err)
	assert.Equal(t, "/reports/hr-screening-analysis.pdf", report.PDFURL)
}

func TestReportService_Create_EmptyTitle(t *testing.T) {
	svc := services.NewReportService(new(testutil.MockReportRepo), testutil.NewFakeClock(time.Now()))

	_, err := svc.Create(context.Background(), uuid.New(), nil, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidReportTitle)
}

func TestReportService_List(t *testing.T) {
	reports := new(testutil.MockReportRepo)
	svc := services.NewReportService(reports, testutil.NewFakeClock(time.Now()))

	ownerID := uuid.New()
	reports.On("ListByOwner", mock.Anything, ownerID).Return([]*domain.Report{{ID: uuid.New(), OwnerID: ownerID}}, nil)

	got, err := svc.List(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
