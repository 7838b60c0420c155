package ports

import (
	"context"

	"github.com/google/uuid"
)

// EventPublisher is an optional output port: lifecycle events are published
// when a broker is configured and silently skipped otherwise. Publish
// failures never fail the operation that triggered them.
type EventPublisher interface {
	PublishAuditCreated(ctx context.Context, auditID uuid.UUID) error
	PublishAuditProgress(ctx context.Context, auditID uuid.UUID, progress int) error
	PublishAuditCompleted(ctx context.Context, auditID uuid.UUID, fairnessScore float64) error
	PublishFileProcessed(ctx context.Context, fileID uuid.UUID) error
}
