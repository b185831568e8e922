// Package board implements board operations: find-or-create, lookup,
// listing by owner, and cascading deletion.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// Service defines all board-related business operations.
type Service interface {
	// CreateBoard finds or creates the board with the given natural key.
	// Calling it twice with equal title/owner yields exactly one stored
	// board; the second call returns the same ID as the first.
	CreateBoard(ctx context.Context, title string, ownerID int) (*models.Board, error)

	// GetBoardByTitleAndOwner returns the exact match, or (nil, nil)
	// when absent.
	GetBoardByTitleAndOwner(ctx context.Context, title string, ownerID int) (*models.Board, error)

	// GetBoardByID returns the board, or (nil, nil) when absent.
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)

	// GetBoardsByUsername lists all boards owned by the named user. An
	// unknown username or a user with no boards yields an empty slice,
	// never an error.
	GetBoardsByUsername(ctx context.Context, username string) ([]*models.Board, error)

	// DeleteBoard deletes every to-do on the board, then the board
	// itself, in one transaction. A nonexistent ID is a no-op.
	DeleteBoard(ctx context.Context, id int) error

	// DeleteAllBoardsByOwner applies the same cascade to every board the
	// user owns.
	DeleteAllBoardsByOwner(ctx context.Context, ownerID int) error
}

// repository defines the data access methods needed by the board service.
// This interface is private to the service layer.
type repository interface {
	InsertBoard(ctx context.Context, board *models.Board) error
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	GetBoardByTitleAndOwner(ctx context.Context, title string, ownerID int) (*models.Board, error)
	GetBoardsByUsername(ctx context.Context, username string) ([]*models.Board, error)
	DeleteBoard(ctx context.Context, id int) error
	DeleteBoardsByOwner(ctx context.Context, ownerID int) error
}

type service struct {
	repo repository
}

// NewService creates a new board service.
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// CreateBoard is check-then-act with a conflict fallback: if a concurrent
// caller wins the insert race, the store reports the unique-constraint
// violation and we re-read the winner's row instead of failing.
func (s *service) CreateBoard(ctx context.Context, title string, ownerID int) (*models.Board, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if ownerID <= 0 {
		return nil, ErrInvalidOwnerID
	}

	existing, err := s.repo.GetBoardByTitleAndOwner(ctx, title, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing board: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	board := &models.Board{Title: title, OwnerID: ownerID}
	err = s.repo.InsertBoard(ctx, board)
	if errors.Is(err, models.ErrDuplicateBoard) {
		// Lost the race: another caller inserted between our check and
		// our insert. Return their row.
		winner, readErr := s.repo.GetBoardByTitleAndOwner(ctx, title, ownerID)
		if readErr != nil {
			return nil, fmt.Errorf("failed to re-read board after conflict: %w", readErr)
		}
		if winner == nil {
			return nil, fmt.Errorf("board conflict reported but row not found: %w", err)
		}
		return winner, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

func (s *service) GetBoardByTitleAndOwner(ctx context.Context, title string, ownerID int) (*models.Board, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidOwnerID
	}
	return s.repo.GetBoardByTitleAndOwner(ctx, title, ownerID)
}

func (s *service) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetBoardByID(ctx, id)
}

func (s *service) GetBoardsByUsername(ctx context.Context, username string) ([]*models.Board, error) {
	return s.repo.GetBoardsByUsername(ctx, username)
}

func (s *service) DeleteBoard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}
	return s.repo.DeleteBoard(ctx, id)
}

func (s *service) DeleteAllBoardsByOwner(ctx context.Context, ownerID int) error {
	if ownerID <= 0 {
		return ErrInvalidOwnerID
	}
	return s.repo.DeleteBoardsByOwner(ctx, ownerID)
}
