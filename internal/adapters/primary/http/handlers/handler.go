package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bias-audit-service/internal/core/services"
)

type Handler struct {
	modelSvc     *services.ModelService
	auditSvc     *services.AuditService
	fairnessSvc  *services.FairnessMetricsService
	reportSvc    *services.ReportService
	fileSvc      *services.FileService
	dashboardSvc *services.DashboardService

	// ownerID scopes every owner-bound read and write. There is no
	// authentication surface; the demo deployment serves a single owner.
	ownerID uuid.UUID
}

func New(
	modelSvc *services.ModelService,
	auditSvc *services.AuditService,
	fairnessSvc *services.FairnessMetricsService,
	reportSvc *services.ReportService,
	fileSvc *services.FileService,
	dashboardSvc *services.DashboardService,
	ownerID uuid.UUID,
) *Handler {
	return &Handler{
		modelSvc:     modelSvc,
		auditSvc:     auditSvc,
		fairnessSvc:  fairnessSvc,
		reportSvc:    reportSvc,
		fileSvc:      fileSvc,
		dashboardSvc: dashboardSvc,
		ownerID:      ownerID,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Dashboard
	r.GET("/dashboard/stats", h.GetDashboardStats)

	// Models
	r.GET("/models", h.ListModels)
	r.POST("/models", h.CreateModel)

	// Audits
	r.GET("/audits", h.ListAudits)
	r.POST("/audits", h.CreateAudit)
	r.GET("/audits/:id", h.GetAudit)

	// Fairness metrics
	r.GET("/fairness-metrics/:auditId", h.GetFairnessMetrics)
	r.POST("/fairness-metrics", h.CreateFairnessMetrics)

	// Reports
	r.GET("/reports", h.ListReports)
	r.POST("/reports", h.CreateReport)

	// Files
	r.POST("/upload", h.UploadFile)
	r.GET("/files/:modelId", h.ListFiles)
}
