package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bias-audit-service/internal/adapters/primary/http/dto"
)

// UploadFile records the upload metadata and returns processed=false; the
// processed flag flips after the simulated processing delay.
func (h *Handler) UploadFile(c *gin.Context) {
	var req dto.UploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := h.fileSvc.Upload(c.Request.Context(), req.ModelID, req.Filename, req.Size)
	if err != nil {
		log.WithError(err).Error("upload file failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadedFileResponse(file))
}

func (h *Handler) ListFiles(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("modelId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	files, err := h.fileSvc.ListByModel(c.Request.Context(), modelID)
	if err != nil {
		log.WithError(err).Error("list files failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.UploadedFileResponse, 0, len(files))
	for _, f := range files {
		items = append(items, dto.ToUploadedFileResponse(f))
	}
	c.JSON(http.StatusOK, items)
}
