package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/adapters/primary/http/dto"
)

func (h *Handler) ListAudits(c *gin.Context) {
	audits, err := h.auditSvc.List(c.Request.Context(), h.ownerID)
	if err != nil {
		log.WithError(err).Error("list audits failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.AuditResponse, 0, len(audits))
	for _, a := range audits {
		items = append(items, dto.ToAuditResponse(a))
	}
	c.JSON(http.StatusOK, items)
}

// CreateAudit returns the pending audit synchronously; the staged progress
// applies behind the tracker's scheduled mutations.
func (h *Handler) CreateAudit(c *gin.Context) {
	var req dto.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audit, err := h.auditSvc.Create(c.Request.Context(), h.ownerID, req.ModelID)
	if err != nil {
		log.WithError(err).Error("create audit failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuditResponse(audit))
}

func (h *Handler) GetAudit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audit id"})
		return
	}

	audit, metrics, err := h.auditSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	resp := dto.AuditDetailResponse{Audit: dto.ToAuditResponse(audit)}
	if metrics != nil {
		m := dto.ToFairnessMetricsResponse(metrics)
		resp.Metrics = &m
	}
	c.JSON(http.StatusOK, resp)
}
