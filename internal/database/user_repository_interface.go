package database

import (
	"context"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// UserReader defines read operations for users.
type UserReader interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	InsertUser(ctx context.Context, user *models.User) error
	UpdateUserPassword(ctx context.Context, username, password string) error
	DeleteUser(ctx context.Context, id int) error
}

// UserRepository combines all user-related operations.
type UserRepository interface {
	UserReader
	UserWriter
}
