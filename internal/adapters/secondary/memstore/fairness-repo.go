package memstore

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

type FairnessMetricsRepository struct {
	store *Store
}

func NewFairnessMetricsRepository(store *Store) *FairnessMetricsRepository {
	return &FairnessMetricsRepository{store: store}
}

func (r *FairnessMetricsRepository) Create(ctx context.Context, metrics *domain.FairnessMetrics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// At most one metric set per audit.
	for _, m := range r.store.metrics {
		if m.AuditID == metrics.AuditID {
			return domain.ErrMetricsAlreadyExist
		}
	}
	r.store.metrics[metrics.ID] = copyMetrics(metrics)
	return nil
}

func (r *FairnessMetricsRepository) GetByAuditID(ctx context.Context, auditID uuid.UUID) (*domain.FairnessMetrics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.metrics {
		if m.AuditID == auditID {
			return copyMetrics(m), nil
		}
	}
	return nil, domain.ErrMetricsNotFound
}
