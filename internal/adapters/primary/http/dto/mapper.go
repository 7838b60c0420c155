package dto

import (
	"time"

	"bias-audit-service/internal/core/domain"
	"bias-audit-service/internal/core/services"
)

func ToModelResponse(m *domain.Model) ModelResponse {
	return ModelResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		UploadedAt:  m.UploadedAt.Format(time.RFC3339),
		Status:      string(m.Status),
		OwnerID:     m.OwnerID,
	}
}

func ToAuditResponse(a *domain.Audit) AuditResponse {
	resp := AuditResponse{
		ID:            a.ID,
		ModelID:       a.ModelID,
		Status:        string(a.Status),
		Progress:      a.Progress,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		FairnessScore: a.FairnessScore,
		OwnerID:       a.OwnerID,
	}
	if a.CompletedAt != nil {
		completed := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}

func ToFairnessMetricsResponse(m *domain.FairnessMetrics) FairnessMetricsResponse {
	groups := make(map[string]GroupMetricDTO, len(m.GroupMetrics))
	for name, g := range m.GroupMetrics {
		groups[name] = GroupMetricDTO{Score: g.Score, Count: g.Count}
	}
	return FairnessMetricsResponse{
		ID:                m.ID,
		AuditID:           m.AuditID,
		DemographicParity: m.DemographicParity,
		EqualOpportunity:  m.EqualOpportunity,
		Calibration:       m.Calibration,
		Accuracy:          m.Accuracy,
		Precision:         m.Precision,
		Recall:            m.Recall,
		F1Score:           m.F1Score,
		ConfusionMatrix: ConfusionMatrixDTO{
			TN: m.ConfusionMatrix.TrueNegatives,
			FP: m.ConfusionMatrix.FalsePositives,
			FN: m.ConfusionMatrix.FalseNegatives,
			TP: m.ConfusionMatrix.TruePositives,
		},
		GroupMetrics: groups,
	}
}

// ToFairnessMetrics maps an ingestion request to the domain record. The id
// is assigned by the service.
func ToFairnessMetrics(req *CreateFairnessMetricsRequest) *domain.FairnessMetrics {
	groups := make(map[string]domain.GroupMetric, len(req.GroupMetrics))
	for name, g := range req.GroupMetrics {
		groups[name] = domain.GroupMetric{Score: g.Score, Count: g.Count}
	}
	return &domain.FairnessMetrics{
		AuditID:           req.AuditID,
		DemographicParity: req.DemographicParity,
		EqualOpportunity:  req.EqualOpportunity,
		Calibration:       req.Calibration,
		Accuracy:          req.Accuracy,
		Precision:         req.Precision,
		Recall:            req.Recall,
		F1Score:           req.F1Score,
		ConfusionMatrix: domain.ConfusionMatrix{
			TrueNegatives:  req.ConfusionMatrix.TN,
			FalsePositives: req.ConfusionMatrix.FP,
			FalseNegatives: req.ConfusionMatrix.FN,
			TruePositives:  req.ConfusionMatrix.TP,
		},
		GroupMetrics: groups,
	}
}

func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		AuditID:     r.AuditID,
		Title:       r.Title,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		PDFURL:      r.PDFURL,
		OwnerID:     r.OwnerID,
	}
}

func ToUploadedFileResponse(f *domain.UploadedFile) UploadedFileResponse {
	return UploadedFileResponse{
		ID:         f.ID,
		ModelID:    f.ModelID,
		Filename:   f.Filename,
		Size:       f.Size,
		UploadedAt: f.UploadedAt.Format(time.RFC3339),
		Processed:  f.Processed,
	}
}

func ToDashboardStatsResponse(s *services.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalModels:   s.TotalModels,
		ActiveAudits:  s.ActiveAudits,
		FairnessScore: s.FairnessScore,
		RiskAlerts:    s.RiskAlerts,
	}
}
