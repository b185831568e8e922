package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// InsertUser inserts a new user and populates user.ID.
// A username conflict is reported as models.ErrDuplicateUsername.
func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, created_at`,
		user.Username, user.Password,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user '%s': %w", user.Username, err)
	}
	return nil
}

// GetUserByID retrieves a user by ID. Returns (nil, nil) when absent.
func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by exact, case-sensitive username.
// Returns (nil, nil) when absent.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", username, err)
	}
	return user, nil
}

// UpdateUserPassword replaces a user's stored credential.
func (s *Store) UpdateUserPassword(ctx context.Context, username, password string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET password = $1 WHERE username = $2`,
		password, username,
	)
	if err != nil {
		return fmt.Errorf("failed to update password for '%s': %w", username, err)
	}
	return nil
}

// DeleteUser removes a user by ID.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
