package services

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
)

type ModelService struct {
	models ports.ModelRepository
	clock  Clock
}

func NewModelService(models ports.ModelRepository, clock Clock) *ModelService {
	if clock == nil {
		clock = SystemClock()
	}
	return &ModelService{models: models, clock: clock}
}

func (s *ModelService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*domain.Model, error) {
	if name == "" {
		return nil, domain.ErrInvalidModelName
	}

	model := &domain.Model{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		UploadedAt:  s.clock.Now(),
		Status:      domain.ModelStatusPending,
		OwnerID:     ownerID,
	}

	if err := s.models.Create(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *ModelService) Get(ctx context.Context, id uuid.UUID) (*domain.Model, error) {
	return s.models.GetByID(ctx, id)
}

func (s *ModelService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Model, error) {
	return s.models.ListByOwner(ctx, ownerID)
}

// UpdateStatus is a silent no-op when the model no longer exists.
func (s *ModelService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ModelStatus) error {
	_, err := s.models.UpdateStatus(ctx, id, status)
	return err
}
