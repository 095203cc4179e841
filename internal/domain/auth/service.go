package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/tx"
	"ventapos/pkg/logger"
)

// LoginResult carries the issued token and its expiry.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

// Service provides authentication operations.
type Service struct {
	users     UserRepository
	txManager tx.Manager
	jwt       *JWTService
}

// NewService creates a new auth service.
func NewService(users UserRepository, txManager tx.Manager, jwt *JWTService) *Service {
	return &Service{
		users:     users,
		txManager: txManager,
		jwt:       jwt,
	}
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// Same error for unknown user and bad password.
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn(ctx, "failed login attempt", "username", username)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	user.RecordSuccessfulLogin()
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.users.Update(ctx, user)
	})
	if err != nil {
		// Login still succeeds; the timestamp is best-effort.
		logger.Warn(ctx, "failed to record login time", "username", username, "error", err)
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Username, user.Role)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password, displayName, role string) (*User, error) {
	if len(password) < 8 {
		return nil, apperror.NewValidation("password must be at least 8 characters").
			WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := NewUser(username, string(hash), role)
	user.DisplayName = displayName
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	if existing, err := s.users.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, apperror.NewDuplicate("user", "username", username)
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user registered", "username", username, "role", role)
	return user, nil
}
