package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/adapters/primary/http/dto"
)

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.reportSvc.List(c.Request.Context(), h.ownerID)
	if err != nil {
		log.WithError(err).Error("list reports failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ToReportResponse(r))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportSvc.Create(c.Request.Context(), h.ownerID, req.AuditID, req.Title)
	if err != nil {
		log.WithError(err).Error("create report failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}
