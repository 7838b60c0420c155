package dto

import (
	"github.com/google/uuid"
)

// Request bodies use the camelCase field names of the public API contract.

type CreateModelRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type CreateAuditRequest struct {
	ModelID *uuid.UUID `json:"modelId"`
}

type CreateReportRequest struct {
	AuditID *uuid.UUID `json:"auditId"`
	Title   string     `json:"title" binding:"required,max=200"`
}

type UploadFileRequest struct {
	ModelID  *uuid.UUID `json:"modelId"`
	Filename string     `json:"filename" binding:"required"`
	Size     int64      `json:"size" binding:"gte=0"`
}

type ConfusionMatrixDTO struct {
	TN int `json:"tn" binding:"gte=0"`
	FP int `json:"fp" binding:"gte=0"`
	FN int `json:"fn" binding:"gte=0"`
	TP int `json:"tp" binding:"gte=0"`
}

type GroupMetricDTO struct {
	Score float64 `json:"score"`
	Count int     `json:"count" binding:"gte=0"`
}

type CreateFairnessMetricsRequest struct {
	AuditID           uuid.UUID                 `json:"auditId" binding:"required"`
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
