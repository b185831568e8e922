// Package share implements the cross-user sharing protocol: copying a
// to-do into another user's board of the same title, with provenance and
// at-most-once semantics per (title, original creator) pair.
package share

import (
	"context"
	"fmt"
	"time"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// Service defines the sharing protocol.
type Service interface {
	// ShareToDo copies todo into the recipient's board titled boardTitle,
	// creating that board if needed. Repeating the identical call is a
	// no-op: at most one copy exists per (title, original creator) pair
	// per recipient board. The returned to-do is the copy, whether it was
	// just created or already present.
	//
	// The copy is frozen at first-share state: editing the source and
	// re-sharing neither creates a second copy nor updates the first.
	ShareToDo(ctx context.Context, todo *models.ToDo, boardTitle, recipientUsername string) (*models.ToDo, error)
}

// repository defines the data access methods needed by the share service.
// This interface is private to the service layer.
type repository interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetToDosByBoard(ctx context.Context, boardID int) ([]*models.ToDo, error)
	InsertToDo(ctx context.Context, todo *models.ToDo) error
}

// boardCreator is the find-or-create path of the board service. Sharing is
// the only operation allowed to auto-create a board on someone else's
// behalf, and it must reuse the exact same code path as direct creation.
type boardCreator interface {
	CreateBoard(ctx context.Context, title string, ownerID int) (*models.Board, error)
}

type service struct {
	repo   repository
	boards boardCreator
}

// NewService creates a new share service.
func NewService(repo repository, boards boardCreator) Service {
	return &service{repo: repo, boards: boards}
}

func (s *service) ShareToDo(ctx context.Context, todo *models.ToDo, boardTitle, recipientUsername string) (*models.ToDo, error) {
	if todo == nil {
		return nil, ErrNilToDo
	}

	// Resolve the recipient before touching anything; an unknown
	// recipient must leave the store untouched.
	recipient, err := s.repo.GetUserByUsername(ctx, recipientUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipient: %w", err)
	}
	if recipient == nil {
		return nil, ErrUnknownRecipient
	}

	creator, err := s.repo.GetUserByID(ctx, todo.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve creator: %w", err)
	}
	if creator == nil {
		return nil, ErrUnknownCreator
	}

	board, err := s.boards.CreateBoard(ctx, boardTitle, recipient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create recipient board: %w", err)
	}

	// Dedup: one copy per (title, original creator) pair per board.
	// Deliberately blind to every other field, so a source edited after
	// the first share never produces a second copy.
	existing, err := s.repo.GetToDosByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipient board: %w", err)
	}
	for _, t := range existing {
		if t.Title == todo.Title && t.SharedBy == creator.Username {
			return t, nil
		}
	}

	copied := &models.ToDo{
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     copyDate(todo.DueDate),
		Color:       todo.Color,
		URL:         todo.URL,
		ImagePath:   todo.ImagePath,
		Position:    todo.Position,
		Status:      todo.Status,
		CreatorID:   recipient.ID,
		BoardID:     board.ID,
		SharedBy:    creator.Username,
	}
	if err := s.repo.InsertToDo(ctx, copied); err != nil {
		return nil, fmt.Errorf("failed to insert shared copy: %w", err)
	}
	return copied, nil
}

// copyDate clones the due date so later edits to the source cannot reach
// the shared copy through the shared pointer.
func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := *t
	return &d
}
