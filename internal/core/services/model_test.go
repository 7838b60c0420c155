package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bias-audit-service/internal/core/domain"
	"bias-audit-service/internal/core/services"
	"bias-audit-service/internal/testutil"
)

func TestModelService_Create(t *testing.T) {
	models := new(testutil.MockModelRepo)
	clock := testutil.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := services.NewModelService(models, clock)

	models.On("Create", mock.Anything, mock.AnythingOfType("*domain.Model")).Return(nil)

	ownerID := uuid.New()
	model, err := svc.Create(context.Background(), ownerID, "Credit Scoring Model", "risk assessment")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, model.ID)
	assert.Equal(t, domain.ModelStatusPending, model.Status)
	assert.Equal(t, clock.Now(), model.UploadedAt)
	assert.Equal(t, ownerID, model.OwnerID)
	models.AssertExpectations(t)
}

func TestModelService_Create_EmptyName(t *testing.T) {
	svc := services.NewModelService(new(testutil.MockModelRepo), testutil.NewFakeClock(time.Now()))

	_, err := svc.Create(context.Background(), uuid.New(), "", "desc")
	assert.ErrorIs(t, err, domain.ErrInvalidModelName)
}

func TestModelService_UpdateStatus_MissingModel(t *testing.T) {
	models := new(testutil.MockModelRepo)
	svc := services.NewModelService(models, testutil.NewFakeClock(time.Now()))

	id := uuid.New()
	models.On("UpdateStatus", mock.Anything, id, domain.ModelStatusProcessing).Return(false, nil)

	// Missing ids are silently skipped, not surfaced.
	assert.NoError(t, svc.UpdateStatus(context.Background(), id, domain.ModelStatusProcessing))
}
