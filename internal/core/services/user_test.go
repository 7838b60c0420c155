package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bias-audit-service/internal/adapters/secondary/memstore"
	"bias-audit-service/internal/core/domain"
	"bias-audit-service/internal/core/services"
	"bias-audit-service/internal/testutil"
)

func newUserService() *services.UserService {
	return services.NewUserService(memstore.NewUserRepository(memstore.New()))
}

func TestUserService_Create(t *testing.T) {
	svc := newUserService()

	user, err := svc.Create(context.Background(), "alice@biasguard.com", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@biasguard.com", user.Username)

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(context.Background(), "", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(context.Background(), "alice@biasguard.com", "secret")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "alice@biasguard.com", "other")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_GetByUsername(t *testing.T) {
	svc := newUserService()

	created, err := svc.Create(context.Background(), "alice@biasguard.com", "secret")
	require.NoError(t, err)

	got, err := svc.GetByUsername(context.Background(), "alice@biasguard.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByUsername(context.Background(), "nobody@biasguard.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := new(testutil.MockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("store closed"))
	svc := services.NewUserService(repo)

	_, err := svc.Create(context.Background(), "alice@biasguard.com", "secret")
	assert.Error(t, err)
	repo.AssertExpectations(t)
}
