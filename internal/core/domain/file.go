package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile records a file upload against a model. Processed flips
// false -> true exactly once and never reverts.
type UploadedFile struct {
	ID         uuid.UUID  `json:"id"`
	ModelID    *uuid.UUID `json:"model_id"`
	Filename   string     `json:"filename"`
	Size       int64      `json:"size"`
	UploadedAt time.Time  `json:"uploaded_at"`
	Processed  bool       `json:"processed"`
}
