package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/places-service/internal/auth"
	"github.com/spec-kit/places-service/internal/config"
	"github.com/spec-kit/places-service/internal/domain"
	"github.com/spec-kit/places-service/internal/events"
	"github.com/spec-kit/places-service/internal/repository"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// One constant message for unknown email and wrong password alike, so a
// caller cannot probe which emails are registered.
const loginFailedMessage = "incorrect email or password"

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
		dispatcher: dispatcher,
	}
}

// Register creates a new member account. Omitted profile fields fall back to
// the domain defaults; a duplicate email surfaces as a conflict.
func (s *AuthService) Register(ctx context.Context, email, password, name, about, avatar string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		About:        about,
		Avatar:       avatar,
	}
	if user.Name == "" {
		user.Name = domain.DefaultUserName
	}
	if user.About == "" {
		user.About = domain.DefaultUserAbout
	}
	if user.Avatar == "" {
		user.Avatar = domain.DefaultUserAvatar
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.TranslateStorageError("user", err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		SubjectID: user.ID,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{UserID: user.ID, Email: user.Email},
	})
	return user, nil
}

// Login authenticates a member and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthenticated(loginFailedMessage)
		}
		return "", time.Time{}, apperrors.TranslateStorageError("user", err)
	}

	if !auth.ComparePassword(user.PasswordHash, password) {
		return "", time.Time{}, apperrors.NewUnauthenticated(loginFailedMessage)
	}

	return s.tokenMgr.GenerateToken(user.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, event)
	}
}
