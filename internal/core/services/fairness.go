package services

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
)

// FairnessMetricsService stores externally computed metric sets. Nothing is
// derived here; scores arrive from whatever computed them and are kept
// opaquely, keyed by audit.
type FairnessMetricsService struct {
	fairness ports.FairnessMetricsRepository
	audits   ports.AuditRepository
}

func NewFairnessMetricsService(fairness ports.FairnessMetricsRepository, audits ports.AuditRepository) *FairnessMetricsService {
	return &FairnessMetricsService{fairness: fairness, audits: audits}
}

func (s *FairnessMetricsService) Record(ctx context.Context, metrics *domain.FairnessMetrics) (*domain.FairnessMetrics, error) {
	for _, score := range []*float64{
		metrics.DemographicParity,
		metrics.EqualOpportunity,
		metrics.Calibration,
		metrics.Accuracy,
		metrics.Precision,
		metrics.Recall,
		metrics.F1Score,
	} {
		if score != nil && (*score < 0 || *score > 1) {
			return nil, domain.ErrInvalidFairnessScore
		}
	}
	for _, g := range metrics.GroupMetrics {
		if g.Score < 0 || g.Score > 1 {
			return nil, domain.ErrInvalidFairnessScore
		}
	}

	// Reference by id only; the audit must exist but no cascade follows.
	if _, err := s.audits.GetByID(ctx, metrics.AuditID); err != nil {
		return nil, err
	}

	metrics.ID = uuid.New()
	if err := s.fairness.Create(ctx, metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (s *FairnessMetricsService) GetByAudit(ctx context.Context, auditID uuid.UUID) (*domain.FairnessMetrics, error) {
	return s.fairness.GetByAuditID(ctx, auditID)
}
