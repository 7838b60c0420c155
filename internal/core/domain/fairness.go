package domain

import (
	"github.com/google/uuid"
)

// ConfusionMatrix holds the four cells of a binary classification outcome.
type ConfusionMatrix struct {
	TrueNegatives  int `json:"tn"`
	FalsePositives int `json:"fp"`
	FalseNegatives int `json:"fn"`
	TruePositives  int `json:"tp"`
}

// GroupMetric is a per-demographic-group fairness score and sample count.
type GroupMetric struct {
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// FairnessMetrics is the externally computed metric set attached to one
// audit. The service stores it opaquely; none of the values are derived
// here. At most one record exists per audit.
type FairnessMetrics struct {
	ID                uuid.UUID              `json:"id"`
	AuditID           uuid.UUID              `json:"audit_id"`
	DemographicParity *float64               `json:"demographic_parity"`
	EqualOpportunity  *float64               `json:"equal_opportunity"`
	Calibration       *float64               `json:"calibration"`
	Accuracy          *float64               `json:"accuracy"`
	Precision         *float64               `json:"precision"`
	Recall            *float64               `json:"recall"`
	F1Score           *float64               `json:"f1_score"`
	ConfusionMatrix   ConfusionMatrix        `json:"confusion_matrix"`
	GroupMetrics      map[string]GroupMetric `json:"group_metrics"`
}
