package memstore

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
)

type ModelRepository struct {
	store *Store
}

func NewModelRepository(store *Store) *ModelRepository {
	return &ModelRepository{store: store}
}

func (r *ModelRepository) Create(ctx context.Context, model *domain.Model) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.models[model.ID] = copyModel(model)
	return nil
}

func (r *ModelRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Model, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.models[id]
	if !ok {
		return nil, domain.ErrModelNotFound
	}
	return copyModel(m), nil
}

func (r *ModelRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Model, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	models := make([]*domain.Model, 0)
	for _, m := range r.store.models {
		if m.OwnerID == ownerID {
			models = append(models, copyModel(m))
		}
	}
	return models, nil
}

// UpdateStatus reports false without error when the model no longer exists.
func (r *ModelRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ModelStatus) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.models[id]
	if !ok {
		return false, nil
	}
	m.Status = status
	return true, nil
}
