package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/user/domain"
	"github.com/reelmedia/reel/internal/user/repository"
	"github.com/reelmedia/reel/pkg/auth"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/events"
	"github.com/reelmedia/reel/pkg/interfaces"
)

// AuthService handles registration, login and token verification.
type AuthService struct {
	repo     repository.Repository
	tokens   *auth.TokenManager
	eventBus interfaces.EventBus
	logger   interfaces.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	repo repository.Repository,
	tokens *auth.TokenManager,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Register creates a new account. A taken username is a conflict and
// never touches the existing account's credentials.
func (s *AuthService) Register(ctx context.Context, username, password string, role auth.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, errors.BadRequest("username and password are required")
	}
	if !role.Valid() {
		return nil, errors.BadRequest("role must be user or admin")
	}

	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, errors.Conflict("username already taken")
	}

	user := &domain.User{
		ID:       uuid.New(),
		Username: username,
		Role:     role,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		interfaces.String("user_id", user.ID.String()),
		interfaces.String("username", user.Username),
		interfaces.String("role", string(user.Role)))

	s.eventBus.PublishAsync(ctx, events.NewAggregateEvent(events.UserRegistered, user.ID.String(), map[string]interface{}{
		"username": user.Username,
		"role":     string(user.Role),
	}))

	return user, nil
}

// Login verifies credentials and issues a session token. Missing
// fields, unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, errors.Unauthorized("invalid credentials")
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", nil, errors.Unauthorized("invalid credentials")
		}
		return "", nil, err
	}

	if !user.CheckPassword(password) {
		return "", nil, errors.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in",
		interfaces.String("user_id", user.ID.String()),
		interfaces.String("username", user.Username))

	s.eventBus.PublishAsync(ctx, events.NewAggregateEvent(events.UserLoggedIn, user.ID.String(), map[string]interface{}{
		"username": user.Username,
	}))

	return token, user, nil
}

// VerifyToken checks a raw session token and returns its claims.
func (s *AuthService) VerifyToken(raw string) (*auth.Claims, error) {
	return s.tokens.Verify(raw)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}
