package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sql.DB
}

// InsertUser inserts a new user and populates user.ID.
// A username conflict is reported as models.ErrDuplicateUsername.
func (r *UserRepo) InsertUser(ctx context.Context, user *models.User) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		user.Username, user.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user '%s': %w", user.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID after insert: %w", err)
	}
	user.ID = int(id)
	return nil
}

// GetUserByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *UserRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = ?`,
		id,
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by exact, case-sensitive username.
// Returns (nil, nil) when absent.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", username, err)
	}
	return user, nil
}

// UpdateUserPassword replaces a user's stored credential. This is the only
// permitted mutation of a user record.
func (r *UserRepo) UpdateUserPassword(ctx context.Context, username, password string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = ? WHERE username = ?`,
		password, username,
	)
	if err != nil {
		return fmt.Errorf("failed to update password for '%s': %w", username, err)
	}
	return nil
}

// DeleteUser removes a user by ID.
func (r *UserRepo) DeleteUser(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
