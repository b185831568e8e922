// Package user implements the user directory: account registration,
// username resolution, and credential verification.
package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// Service defines all user-directory operations.
type Service interface {
	// Register creates a new account. The password is stored as a bcrypt hash.
	Register(ctx context.Context, username, password string) (*models.User, error)

	// Resolve looks up an account by exact username. Returns (nil, nil)
	// when the username is unknown; absence is not an error.
	Resolve(ctx context.Context, username string) (*models.User, error)

	// ResolveID looks up an account by ID. Returns (nil, nil) when absent.
	ResolveID(ctx context.Context, id int) (*models.User, error)

	// VerifyCredentials reports whether the password matches the stored
	// credential. Unknown usernames verify as false, not as an error.
	VerifyCredentials(ctx context.Context, username, password string) (bool, error)

	// RotatePassword replaces the stored credential. This is the only
	// permitted mutation of a user record.
	RotatePassword(ctx context.Context, username, newPassword string) error
}

// repository defines the data access methods needed by the user service.
// This interface is private to the service layer.
type repository interface {
	InsertUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, username, password string) error
}

type service struct {
	repo repository
}

// NewService creates a new user directory service.
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.repo.InsertUser(ctx, u); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return u, nil
}

func (s *service) Resolve(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, nil
	}
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *service) ResolveID(ctx context.Context, id int) (*models.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *service) RotatePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdateUserPassword(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("failed to rotate password: %w", err)
	}
	return nil
}
