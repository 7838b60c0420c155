package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bias-audit-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrAuditNotFound),
		errors.Is(err, domain.ErrMetricsNotFound),
		errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrFileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrMetricsAlreadyExist):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrInvalidReportTitle),
		errors.Is(err, domain.ErrInvalidFilename),
		errors.Is(err, domain.ErrNegativeFileSize),
		errors.Is(err, domain.ErrInvalidProgress),
		errors.Is(err, domain.ErrInvalidFairnessScore),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrAuditAlreadyTerminal),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
