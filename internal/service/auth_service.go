package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/repository"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike; callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// AuthService coordinates registration, login and token issuance.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService builds the service. The token manager is created here from
// the configured signing key; config.Load already guarantees the key exists.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		bcryptCost: cfg.BcryptCost,
		logger:     logger,
	}
}

// Register creates a new account with the Customer role.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleCustomer},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	return user, nil
}

// Login verifies credentials against the stored hash and issues a token
// carrying the user's identity and role claims.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(auth.Principal{
		ID:    user.ID,
		Email: user.Email,
		Roles: user.Roles,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	return user, token, expiresAt, nil
}

// SeedDefaults provisions the bootstrap admin and customer accounts when
// their emails are absent. Accounts without a configured password are
// skipped.
func (s *AuthService) SeedDefaults(ctx context.Context, seed config.SeedConfig) error {
	accounts := []struct {
		name     string
		email    string
		password string
		role     domain.Role
	}{
		{"System Admin", seed.AdminEmail, seed.AdminPassword, domain.RoleAdmin},
		{"Demo Customer", seed.CustomerEmail, seed.CustomerPassword, domain.RoleCustomer},
	}

	for _, account := range accounts {
		if account.password == "" {
			continue
		}
		if _, err := s.users.GetByEmail(ctx, account.email); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		hash, err := auth.HashPassword(account.password, s.bcryptCost)
		if err != nil {
			return err
		}
		user := &domain.User{
			FullName:     account.name,
			Email:        account.email,
			PasswordHash: hash,
			Roles:        []domain.Role{account.role},
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("seeded account", zap.String("email", account.email), zap.String("role", string(account.role)))
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
