package domain

import (
	"time"

	"github.com/google/uuid"
)

type ModelStatus string

const (
	ModelStatusPending    ModelStatus = "pending"
	ModelStatusProcessing ModelStatus = "processing"
	ModelStatusCompleted  ModelStatus = "completed"
	ModelStatusFailed     ModelStatus = "failed"
)

// Model is an uploaded ML model under audit. Its status is independent of
// any audit's lifecycle.
type Model struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UploadedAt  time.Time   `json:"uploaded_at"`
	Status      ModelStatus `json:"status"`
	OwnerID     uuid.UUID   `json:"owner_id"`
}
