package ports

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

// Repositories are the output ports over the entity store. Every read
// returns a copy of the stored record; callers never see internal state.
// Updates on missing ids are silent no-ops reporting applied=false.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ModelRepository interface {
	Create(ctx context.Context, model *domain.Model) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Model, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Model, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ModelStatus) (bool, error)
}

type AuditRepository interface {
	Create(ctx context.Context, audit *domain.Audit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Audit, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Audit, error)
	// Update applies the patch as one atomic merge.
	Update(ctx context.Context, id uuid.UUID, patch domain.AuditPatch) (bool, error)
}

type FairnessMetricsRepository interface {
	Create(ctx context.Context, metrics *domain.FairnessMetrics) error
	GetByAuditID(ctx context.Context, auditID uuid.UUID) (*domain.FairnessMetrics, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Report, error)
}

type FileRepository interface {
	Create(ctx context.Context, file *domain.UploadedFile) error
	ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.UploadedFile, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) (bool, error)
}
