package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bias-audit-service/internal/core/domain"
)

// MockUserRepo is a mock of UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockModelRepo is a mock of ModelRepository.
type MockModelRepo struct {
	mock.Mock
}

func (m *MockModelRepo) Create(ctx context.Context, model *domain.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Model, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

func (m *MockModelRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Model, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Model), args.Error(1)
}

func (m *MockModelRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ModelStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

// MockAuditRepo is a mock of AuditRepository.
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Create(ctx context.Context, audit *domain.Audit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

func (m *MockAuditRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Audit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Audit), args.Error(1)
}

func (m *MockAuditRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Audit, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Audit), args.Error(1)
}

func (m *MockAuditRepo) Update(ctx context.Context, id uuid.UUID, patch domain.AuditPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

// MockFairnessRepo is a mock of FairnessMetricsRepository.
type MockFairnessRepo struct {
	mock.Mock
}

func (m *MockFairnessRepo) Create(ctx context.Context, metrics *domain.FairnessMetrics) error {
	args := m.Called(ctx, metrics)
	return args.Error(0)
}

func (m *MockFairnessRepo) GetByAuditID(ctx context.Context, auditID uuid.UUID) (*domain.FairnessMetrics, error) {
	args := m.Called(ctx, auditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FairnessMetrics), args.Error(1)
}

// MockReportRepo is a mock of ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Report, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

// MockFileRepo is a mock of FileRepository.
type MockFileRepo struct {
	mock.Mock
}

func (m *MockFileRepo) Create(ctx context.Context, file *domain.UploadedFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepo) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.UploadedFile, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UploadedFile), args.Error(1)
}

func (m *MockFileRepo) MarkProcessed(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher is a mock of EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAuditCreated(ctx context.Context, auditID uuid.UUID) error {
	args := m.Called(ctx, auditID)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishAuditProgress(ctx context.Context, auditID uuid.UUID, progress int) error {
	args := m.Called(ctx, auditID, progress)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishAuditCompleted(ctx context.Context, auditID uuid.UUID, fairnessScore float64) error {
	args := m.Called(ctx, auditID, fairnessScore)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishFileProcessed(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
