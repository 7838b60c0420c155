package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetFairnessMetrics(c *gin.Context) {
	auditID, err := uuid.Parse(c.Param("auditId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audit id"})
		return
	}

	metrics, err := h.fairnessSvc.GetByAudit(c.Request.Context(), auditID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFairnessMetricsResponse(metrics))
}

func (h *Handler) CreateFairnessMetrics(c *gin.Context) {
	var req dto.CreateFairnessMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics, err := h.fairnessSvc.Record(c.Request.Context(), dto.ToFairnessMetrics(&req))
	if err != nil {
		log.WithError(err).Error("record fairness metrics failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFairnessMetricsResponse(metrics))
}
