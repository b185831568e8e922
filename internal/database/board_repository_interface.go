package database

import (
	"context"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// BoardReader defines read operations for boards.
type BoardReader interface {
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	GetBoardByTitleAndOwner(ctx context.Context, title string, ownerID int) (*models.Board, error)
	GetBoardsByOwner(ctx context.Context, ownerID int) ([]*models.Board, error)
	GetBoardsByUsername(ctx context.Context, username string) ([]*models.Board, error)
}

// BoardWriter defines write operations for boards.
type BoardWriter interface {
	InsertBoard(ctx context.Context, board *models.Board) error
	UpdateBoard(ctx context.Context, board *models.Board) error
	DeleteBoard(ctx context.Context, id int) error
	DeleteBoardsByOwner(ctx context.Context, ownerID int) error
}

// BoardRepository combines all board-related operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}
