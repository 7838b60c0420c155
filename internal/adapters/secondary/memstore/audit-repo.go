package memstore

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

type AuditRepository struct {
	store *Store
}

func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{store: store}
}

func (r *AuditRepository) Create(ctx context.Context, audit *domain.Audit) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.audits[audit.ID] = copyAudit(audit)
	return nil
}

func (r *AuditRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Audit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.audits[id]
	if !ok {
		return nil, domain.ErrAuditNotFound
	}
	return copyAudit(a), nil
}

func (r *AuditRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Audit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	audits := make([]*domain.Audit, 0)
	for _, a := range r.store.audits {
		if a.OwnerID == ownerID {
			audits = append(audits, copyAudit(a))
		}
	}
	return audits, nil
}

// Update merges the patch under the store lock so concurrent patches never
// interleave field-by-field. A patch against a missing id is a no-op
// reporting applied=false.
func (r *AuditRepository) Update(ctx context.Context, id uuid.UUID, patch domain.AuditPatch) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.audits[id]
	if !ok {
		return false, nil
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Progress != nil {
		a.Progress = *patch.Progress
	}
	if patch.CompletedAt != nil {
		t := *patch.CompletedAt
		a.CompletedAt = &t
	}
	if patch.FairnessScore != nil {
		s := *patch.FairnessScore
		a.FairnessScore = &s
	}
	return true, nil
}
