package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bias-audit-service/internal/core/domain"
)

func newAudit(ownerID uuid.UUID) *domain.Audit {
	return &domain.Audit{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Status:    domain.AuditStatusPending,
		Progress:  0,
		CreatedAt: time.Now(),
	}
}

func TestAuditRepository_CreateAndGet(t *testing.T) {
	repo := NewAuditRepository(New())
	ownerID := uuid.New()
	audit := newAudit(ownerID)

	require.NoError(t, repo.Create(context.Background(), audit))

	got, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.ID, got.ID)
	assert.Equal(t, domain.AuditStatusPending, got.Status)
}

func TestAuditRepository_GetReturnsCopy(t *testing.T) {
	repo := NewAuditRepository(New())
	audit := newAudit(uuid.New())
	require.NoError(t, repo.Create(context.Background(), audit))

	got, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)

	// Mutating the returned record must not leak into the store.
	got.Status = domain.AuditStatusFailed
	got.Progress = 99

	again, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditStatusPending, again.Status)
	assert.Equal(t, 0, again.Progress)
}

func TestAuditRepository_CreateStoresCopy(t *testing.T) {
	repo := NewAuditRepository(New())
	audit := newAudit(uuid.New())
	require.NoError(t, repo.Create(context.Background(), audit))

	audit.Progress = 77

	got, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Progress)
}

func TestAuditRepository_UpdateMissingIDIsNoOp(t *testing.T) {
	store := New()
	repo := NewAuditRepository(store)
	audit := newAudit(uuid.New())
	require.NoError(t, repo.Create(context.Background(), audit))

	progress := 50
	applied, err := repo.Update(context.Background(), uuid.New(), domain.AuditPatch{Progress: &progress})
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Progress)
}

func TestAuditRepository_PartialMerge(t *testing.T) {
	repo := NewAuditRepository(New())
	audit := newAudit(uuid.New())
	require.NoError(t, repo.Create(context.Background(), audit))

	progress := 25
	status := domain.AuditStatusInProgress
	applied, err := repo.Update(context.Background(), audit.ID, domain.AuditPatch{Progress: &progress, Status: &status})
	require.NoError(t, err)
	assert.True(t, applied)

	// Progress-only patch leaves status untouched.
	progress = 65
	_, err = repo.Update(context.Background(), audit.ID, domain.AuditPatch{Progress: &progress})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditStatusInProgress, got.Status)
	assert.Equal(t, 65, got.Progress)
	assert.Nil(t, got.CompletedAt)
}

func TestAuditRepository_ConcurrentMergesAtomic(t *testing.T) {
	repo := NewAuditRepository(New())
	audit := newAudit(uuid.New())
	require.NoError(t, repo.Create(context.Background(), audit))

	// Each writer patches a progress/score pair that must stay together.
	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			progress := n
			score := float64(n)
			_, err := repo.Update(context.Background(), audit.ID, domain.AuditPatch{
				Progress:      &progress,
				FairnessScore: &score,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), audit.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FairnessScore)
	assert.Equal(t, float64(got.Progress), *got.FairnessScore)
}

func TestAuditRepository_ListByOwner(t *testing.T) {
	repo := NewAuditRepository(New())
	ownerID := uuid.New()
	require.NoError(t, repo.Create(context.Background(), newAudit(ownerID)))
	require.NoError(t, repo.Create(context.Background(), newAudit(ownerID)))
	require.NoError(t, repo.Create(context.Background(), newAudit(uuid.New())))

	audits, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, audits, 2)
}

func TestFileRepository_MarkProcessed(t *testing.T) {
	repo := NewFileRepository(New())
	modelID := uuid.New()
	file := &domain.UploadedFile{ID: uuid.New(), ModelID: &modelID, Filename: "data.csv", Size: 10, UploadedAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), file))

	applied, err := repo.MarkProcessed(context.Background(), file.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	files, err := repo.ListByModel(context.Background(), modelID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].Processed)

	// Marking again keeps it processed; the flag never reverts.
	_, err = repo.MarkProcessed(context.Background(), file.ID)
	require.NoError(t, err)
	files, _ = repo.ListByModel(context.Background(), modelID)
	assert.True(t, files[0].Processed)
}

func TestFileRepository_MarkProcessedMissingID(t *testing.T) {
	repo := NewFileRepository(New())

	applied, err := repo.MarkProcessed(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestFairnessMetricsRepository_OnePerAudit(t *testing.T) {
	repo := NewFairnessMetricsRepository(New())
	auditID := uuid.New()

	first := &domain.FairnessMetrics{ID: uuid.New(), AuditID: auditID}
	require.NoError(t, repo.Create(context.Background(), first))

	second := &domain.FairnessMetrics{ID: uuid.New(), AuditID: auditID}
	assert.ErrorIs(t, repo.Create(context.Background(), second), domain.ErrMetricsAlreadyExist)
}

func TestFairnessMetricsRepository_GetByAuditID_NotFound(t *testing.T) {
	repo := NewFairnessMetricsRepository(New())

	_, err := repo.GetByAuditID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrMetricsNotFound)
}

func TestFairnessMetricsRepository_CopiesGroupMetrics(t *testing.T) {
	repo := NewFairnessMetricsRepository(New())
	auditID := uuid.New()
	metrics := &domain.FairnessMetrics{
		ID:           uuid.New(),
		AuditID:      auditID,
		GroupMetrics: map[string]domain.GroupMetric{"Group A": {Score: 0.85, Count: 450}},
	}
	require.NoError(t, repo.Create(context.Background(), metrics))

	got, err := repo.GetByAuditID(context.Background(), auditID)
	require.NoError(t, err)
	got.GroupMetrics["Group A"] = domain.GroupMetric{Score: 0.1, Count: 1}

	again, err := repo.GetByAuditID(context.Background(), auditID)
	require.NoError(t, err)
	assert.Equal(t, 0.85, again.GroupMetrics["Group A"].Score)
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	repo := NewUserRepository(New())

	require.NoError(t, repo.Create(context.Background(), &domain.User{ID: uuid.New(), Username: "demo@biasguard.com"}))
	err := repo.Create(context.Background(), &domain.User{ID: uuid.New(), Username: "demo@biasguard.com"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestSeed(t *testing.T) {
	store := New()
	ownerID := uuid.New()
	Seed(store, ownerID)

	models, err := NewModelRepository(store).ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, models, 2)

	audits, err := NewAuditRepository(store).ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, audits, 2)

	reports, err := NewReportRepository(store).ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	var completed *domain.Audit
	for _, a := range audits {
		if a.Status == domain.AuditStatusCompleted {
			completed = a
		}
	}
	require.NotNil(t, completed)

	metrics, err := NewFairnessMetricsRepository(store).GetByAuditID(context.Background(), completed.ID)
	require.NoError(t, err)
	assert.Equal(t, 850, metrics.ConfusionMatrix.TrueNegatives)
}
