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

func newAuditService(audits *testutil.MockAuditRepo, fairness *testutil.MockFairnessRepo, clock *testutil.FakeClock) (*services.AuditService, *services.AuditTracker) {
	tracker := services.NewAuditTracker(audits, nil, clock, nil)
	svc := services.NewAuditService(audits, fairness, tracker, nil, clock, 0.82)
	return svc, tracker
}

func TestAuditService_Create_ReturnsPendingSynchronously(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	fairness := new(testutil.MockFairnessRepo)
	clock := testutil.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc, _ := newAuditService(audits, fairness, clock)

	audits.On("Create", mock.Anything, mock.AnythingOfType("*domain.Audit")).Return(nil)

	modelID := uuid.New()
	audit, err := svc.Create(context.Background(), uuid.New(), &modelID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, audit.ID)
	assert.Equal(t, domain.AuditStatusPending, audit.Status)
	assert.Equal(t, 0, audit.Progress)
	assert.Nil(t, audit.CompletedAt)
	assert.Nil(t, audit.FairnessScore)
	assert.Equal(t, clock.Now(), audit.CreatedAt)
	// Three lifecycle stages are armed but none has run.
	assert.Equal(t, 3, clock.PendingTimers())
	audits.AssertExpectations(t)
}

func TestAuditService_Create_UniqueIDs(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	fairness := new(testutil.MockFairnessRepo)
	clock := testutil.NewFakeClock(time.Now())
	svc, _ := newAuditService(audits, fairness, clock)

	audits.On("Create", mock.Anything, mock.AnythingOfType("*domain.Audit")).Return(nil)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 50; i++ {
		audit, err := svc.Create(context.Background(), uuid.New(), nil)
		require.NoError(t, err)
		assert.False(t, seen[audit.ID])
		seen[audit.ID] = true
	}
}

func TestAuditService_Get_WithMetrics(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	fairness := new(testutil.MockFairnessRepo)
	svc, _ := newAuditService(audits, fairness, testutil.NewFakeClock(time.Now()))

	id := uuid.New()
	audits.On("GetByID", mock.Anything, id).Return(&domain.Audit{ID: id, Status: domain.AuditStatusCompleted}, nil)
	fairness.On("GetByAuditID", mock.Anything, id).Return(&domain.FairnessMetrics{ID: uuid.New(), AuditID: id}, nil)

	audit, metrics, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, audit.ID)
	require.NotNil(t, metrics)
	assert.Equal(t, id, metrics.AuditID)
}

func TestAuditService_Get_MetricsAbsent(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	fairness := new(testutil.MockFairnessRepo)
	svc, _ := newAuditService(audits, fairness, testutil.NewFakeClock(time.Now()))

	id := uuid.New()
	audits.On("GetByID", mock.Anything, id).Return(&domain.Audit{ID: id}, nil)
	fairness.On("GetByAuditID", mock.Anything, id).Return(nil, domain.ErrMetricsNotFound)

	audit, metrics, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, audit)
	assert.Nil(t, metrics)
}

func TestAuditService_Get_NotFound(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	fairness := new(testutil.MockFairnessRepo)
	svc, _ := newAuditService(audits, fairness, testutil.NewFakeClock(time.Now()))

	id := uuid.New()
	audits.On("GetByID", mock.Anything, id).Return(nil, domain.ErrAuditNotFound)

	_, _, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrAuditNotFound)
}

func TestAuditService_UpdateProgress_OutOfRange(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	svc, _ := newAuditService(audits, new(testutil.MockFairnessRepo), testutil.NewFakeClock(time.Now()))

	assert.ErrorIs(t, svc.UpdateProgress(context.Background(), uuid.New(), 101, ""), domain.ErrInvalidProgress)
	assert.ErrorIs(t, svc.UpdateProgress(context.Background(), uuid.New(), -1, ""), domain.ErrInvalidProgress)
}

func TestAuditService_Complete_InvalidScore(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	svc, _ := newAuditService(audits, new(testutil.MockFairnessRepo), testutil.NewFakeClock(time.Now()))

	assert.ErrorIs(t, svc.Complete(context.Background(), uuid.New(), 1.5), domain.ErrInvalidFairnessScore)
}

func TestAuditService_Fail(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	svc, _ := newAuditService(audits, new(testutil.MockFairnessRepo), testutil.NewFakeClock(time.Now()))

	id := uuid.New()
	audits.On("GetByID", mock.Anything, id).Return(&domain.Audit{ID: id, Status: domain.AuditStatusInProgress}, nil)
	audits.On("Update", mock.Anything, id, mock.AnythingOfType("domain.AuditPatch")).Return(true, nil)

	require.NoError(t, svc.Fail(context.Background(), id))
	audits.AssertExpectations(t)
}

func TestAuditService_Fail_AlreadyTerminal(t *testing.T) {
	audits := new(testutil.MockAuditRepo)
	svc, _ := newAuditService(audits, new(testutil.MockFairnessRepo), testutil.NewFakeClock(time.Now()))

	id := uuid.New()
	audits.On("GetByID", mock.Anything, id).Return(&domain.Audit{ID: id, Status: domain.AuditStatusCompleted}, nil)

	assert.ErrorIs(t, svc.Fail(context.Background(), id), domain.ErrAuditAlreadyTerminal)
}
