package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditStatus string

const (
	AuditStatusPending    AuditStatus = "pending"
	AuditStatusInProgress AuditStatus = "in_progress"
	AuditStatusCompleted  AuditStatus = "completed"
	AuditStatusFailed     AuditStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s AuditStatus) IsTerminal() bool {
	return s == AuditStatusCompleted || s == AuditStatusFailed
}

// CanTransition reports whether the status may move forward to next.
// Allowed: pending -> in_progress -> completed, and -> failed from any
// non-terminal status.
func (s AuditStatus) CanTransition(next AuditStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case AuditStatusInProgress:
		return s == AuditStatusPending
	case AuditStatusCompleted:
		return s == AuditStatusInProgress
	case AuditStatusFailed:
		return true
	default:
		return false
	}
}

// Audit is the central lifecycle entity: one evaluation run over a model,
// advancing through staged progress until completion or failure.
type Audit struct {
	ID            uuid.UUID   `json:"id"`
	ModelID       *uuid.UUID  `json:"model_id"`
	OwnerID       uuid.UUID   `json:"owner_id"`
	Status        AuditStatus `json:"status"`
	Progress      int         `json:"progress"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at"`
	FairnessScore *float64    `json:"fairness_score"`
}

// AuditPatch is a partial-merge update: nil fields are left unchanged.
type AuditPatch struct {
	Status        *AuditStatus
	Progress      *int
	CompletedAt   *time.Time
	FairnessScore *float64
}
