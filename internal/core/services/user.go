package services

import (
	"context"

	"github.com/google/uuid"

	"bias-audit-service/internal/core/domain"
	ports "bias-audit-service/internal/core/ports/output"
)

// UserService covers the ownership root. There is no authentication; users
// are created by seeding or by tooling so entity owner references resolve.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	user := &domain.User{
		ID:       uuid.New(),
		Username: username,
		Password: password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}
