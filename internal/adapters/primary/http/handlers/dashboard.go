package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardSvc.Stats(c.Request.Context(), h.ownerID)
	if err != nil {
		log.WithError(err).Error("dashboard stats failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
