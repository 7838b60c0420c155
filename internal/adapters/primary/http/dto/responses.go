package dto

import (
	"github.com/google/uuid"
)

type ModelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UploadedAt  string    `json:"uploadedAt"`
	Status      string    `json:"status"`
	OwnerID     uuid.UUID `json:"ownerId"`
}

type AuditResponse struct {
	ID            uuid.UUID  `json:"id"`
	ModelID       *uuid.UUID `json:"modelId"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	CreatedAt     string     `json:"createdAt"`
	CompletedAt   *string    `json:"completedAt"`
	FairnessScore *float64   `json:"fairnessScore"`
	OwnerID       uuid.UUID  `json:"ownerId"`
}

type AuditDetailResponse struct {
	Audit   AuditResponse            `json:"audit"`
	Metrics *FairnessMetricsResponse `json:"metrics,omitempty"`
}

type FairnessMetricsResponse struct {
	ID                uuid.UUID                 `json:"id"`
	AuditID           uuid.UUID                 `json:"auditId"`
	DemographicParity *float64                  `json:"demographicParity"`
	EqualOpportunity  *float64                  `json:"equalOpportunity"`
	Calibration       *float64                  `json:"calibration"`
	Accuracy          *float64                  `json:"accuracy"`
	Precision         *float64                  `json:"precision"`
	Recall            *float64                  `json:"recall"`
	F1Score           *float64                  `json:"f1Score"`
	ConfusionMatrix   ConfusionMatrixDTO        `json:"confusionMatrix"`
	GroupMetrics      map[string]GroupMetricDTO `json:"groupMetrics"`
}

type ReportResponse struct {
	ID          uuid.UUID  `json:"id"`
	AuditID     *uuid.UUID `json:"auditId"`
	Title       string     `json:"title"`
	GeneratedAt string     `json:"generatedAt"`
	PDFURL      string     `json:"pdfUrl"`
	OwnerID     uuid.UUID  `json:"ownerId"`
}

type UploadedFileResponse struct {
	ID         uuid.UUID  `json:"id"`
	ModelID    *uuid.UUID `json:"modelId"`
	Filename   string     `json:"filename"`
	Size       int64      `json:"size"`
	UploadedAt string     `json:"uploadedAt"`
	Processed  bool       `json:"processed"`
}

type DashboardStatsResponse struct {
	TotalModels   int     `json:"totalModels"`
	ActiveAudits  int     `json:"activeAudits"`
	FairnessScore float64 `json:"fairnessScore"`
	RiskAlerts    int     `json:"riskAlerts"`
}
