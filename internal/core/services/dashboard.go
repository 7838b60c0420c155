package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
)

// DashboardStats is the aggregate view the dashboard header renders.
type DashboardStats struct {
	TotalModels   int
	ActiveAudits  int
	FairnessScore float64
	RiskAlerts    int
}

// DashboardService computes real aggregates from the store: model count,
// in-progress audit count, mean fairness score across completed audits
// (as a 0-100 value, one decimal) and the number of completed audits whose
// score falls below the risk threshold.
type DashboardService struct {
	models        ports.ModelRepository
	audits        ports.AuditRepository
	riskThreshold float64
}

func NewDashboardService(models ports.ModelRepository, audits ports.AuditRepository, riskThreshold float64) *DashboardService {
	return &DashboardService{models: models, audits: audits, riskThreshold: riskThreshold}
}

func (s *DashboardService) Stats(ctx context.Context, ownerID uuid.UUID) (*DashboardStats, error) {
	models, err := s.models.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	audits, err := s.audits.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalModels: len(models)}

	var scoreSum float64
	var completed int
	for _, a := range audits {
		switch a.Status {
		case domain.AuditStatusInProgress:
			stats.ActiveAudits++
		case domain.AuditStatusCompleted:
			if a.FairnessScore != nil {
				completed++
				scoreSum += *a.FairnessScore
				if *a.FairnessScore < s.riskThreshold {
					stats.RiskAlerts++
				}
			}
		}
	}

	if completed > 0 {
		stats.FairnessScore = math.Round(scoreSum/float64(completed)*1000) / 10
	}

	return stats, nil
}
