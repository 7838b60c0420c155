package memstore

import (
	"time"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

func floatPtr(f float64) *float64 { return &f }

// Seed loads the demo data set: one owner, two models, a completed and an
// in-progress audit, metrics for the completed audit and two reports. Only
// meant for demo deployments and local development.
func Seed(store *Store, ownerID uuid.UUID) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()

	owner := &domain.User{
		ID:       ownerID,
		Username: "demo@biasguard.com",
		Password: "password123",
	}
	store.users[owner.ID] = owner

	creditModel := &domain.Model{
		ID:          uuid.New(),
		Name:        "Credit Scoring Model",
		Description: "ML model for credit risk assessment",
		UploadedAt:  now.Add(-48 * time.Hour),
		Status:      domain.ModelStatusCompleted,
		OwnerID:     ownerID,
	}
	hrModel := &domain.Model{
		ID:          uuid.New(),
		Name:        "HR Screening Model",
		Description: "Automated resume screening system",
		UploadedAt:  now.Add(-24 * time.Hour),
		Status:      domain.ModelStatusProcessing,
		OwnerID:     ownerID,
	}
	store.models[creditModel.ID] = creditModel
	store.models[hrModel.ID] = hrModel

	completedAt := now.Add(-24 * time.Hour)
	doneAudit := &domain.Audit{
		ID:            uuid.New(),
		ModelID:       &creditModel.ID,
		OwnerID:       ownerID,
		Status:        domain.AuditStatusCompleted,
		Progress:      100,
		CreatedAt:     now.Add(-48 * time.Hour),
		CompletedAt:   &completedAt,
		FairnessScore: floatPtr(0.873),
	}
	runningAudit := &domain.Audit{
		ID:        uuid.New(),
		ModelID:   &hrModel.ID,
		OwnerID:   ownerID,
		Status:    domain.AuditStatusInProgress,
		Progress:  65,
		CreatedAt: now.Add(-12 * time.Hour),
	}
	store.audits[doneAudit.ID] = doneAudit
	store.audits[runningAudit.ID] = runningAudit

	metrics := &domain.FairnessMetrics{
		ID:                uuid.New(),
		AuditID:           doneAudit.ID,
		DemographicParity: floatPtr(0.73),
		EqualOpportunity:  floatPtr(0.85),
		Calibration:       floatPtr(0.52),
		Accuracy:          floatPtr(0.952),
		Precision:         floatPtr(0.937),
		Recall:            floatPtr(0.955),
		F1Score:           floatPtr(0.946),
		ConfusionMatrix:   domain.ConfusionMatrix{TrueNegatives: 850, FalsePositives: 45, FalseNegatives: 32, TruePositives: 673},
		GroupMetrics: map[string]domain.GroupMetric{
			"Group A": {Score: 0.85, Count: 450},
			"Group B": {Score: 0.73, Count: 380},
			"Group C": {Score: 0.52, Count: 270},
		},
	}
	store.metrics[metrics.ID] = metrics

	creditReport := &domain.Report{
		ID:          uuid.New(),
		AuditID:     &doneAudit.ID,
		Title:       "Credit Model Audit Report",
		GeneratedAt: now.Add(-2 * time.Hour),
		PDFURL:      "/reports/credit-model-audit-report.pdf",
		OwnerID:     ownerID,
	}
	hrReport := &domain.Report{
		ID:          uuid.New(),
		AuditID:     &doneAudit.ID,
		Title:       "HR Screening Analysis Report",
		GeneratedAt: now.Add(-24 * time.Hour),
		PDFURL:      "/reports/hr-screening-analysis-report.pdf",
		OwnerID:     ownerID,
	}
	store.reports[creditReport.ID] = creditReport
	store.reports[hrReport.ID] = hrReport
}
