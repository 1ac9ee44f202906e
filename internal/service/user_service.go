package service

import (
	"context"

	"github.com/spec-kit/places-service/internal/domain"
	"github.com/spec-kit/places-service/internal/repository"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// UserService serves member profiles.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all members.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.TranslateStorageError("user", err)
	}
	return users, nil
}

// GetByID returns one member.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStorageError("user", err)
	}
	return user, nil
}

// UpdateProfile updates the caller's own name and about fields.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, name, about string) (*domain.User, error) {
	user, err := s.users.UpdateProfile(ctx, callerID, name, about)
	if err != nil {
		return nil, apperrors.TranslateStorageError("user", err)
	}
	return user, nil
}

// UpdateAvatar updates the caller's own avatar.
func (s *UserService) UpdateAvatar(ctx context.Context, callerID, avatar string) (*domain.User, error) {
	user, err := s.users.UpdateAvatar(ctx, callerID, avatar)
	if err != nil {
		return nil, apperrors.TranslateStorageError("user", err)
	}
	return user, nil
}
