package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is an immutable generated report, optionally tied to an audit.
type Report struct {
	ID          uuid.UUID  `json:"id"`
	AuditID     *uuid.UUID `json:"audit_id"`
	Title       string     `json:"title"`
	GeneratedAt time.Time  `json:"generated_at"`
	PDFURL      string     `json:"pdf_url"`
	OwnerID     uuid.UUID  `json:"owner_id"`
}
