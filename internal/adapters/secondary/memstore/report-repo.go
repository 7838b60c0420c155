package memstore

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

type ReportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.reports[report.ID] = copyReport(report)
	return nil
}

func (r *ReportRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reports := make([]*domain.Report, 0)
	for _, rep := range r.store.reports {
		if rep.OwnerID == ownerID {
			reports = append(reports, copyReport(rep))
		}
	}
	return reports, nil
}
