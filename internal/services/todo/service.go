// Package todo implements the to-do lifecycle: creation, in-place update,
// deletion, listing, and completion transitions.
package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// Service defines all to-do-related business operations.
type Service interface {
	// Read operations
	GetToDo(ctx context.Context, id int) (*models.ToDo, error)
	GetToDosForBoard(ctx context.Context, boardID int) ([]*models.ToDo, error)

	// Write operations
	CreateToDo(ctx context.Context, req CreateToDoRequest) (*models.ToDo, error)
	UpdateToDo(ctx context.Context, todo *models.ToDo) error
	DeleteToDo(ctx context.Context, id int) error
	MarkCompleted(ctx context.Context, todo *models.ToDo) error
	MarkAllCompletedForBoard(ctx context.Context, boardID int) error
}

// CreateToDoRequest encapsulates data for creating a to-do. Field validity
// (non-empty title, sane dates) is the caller's responsibility; the core
// only enforces identity.
type CreateToDoRequest struct {
	Title       string
	Description string
	DueDate     *time.Time
	Color       string
	URL         string
	ImagePath   string
	Position    int
	BoardID     int
	CreatorID   int
}

// repository defines the data access methods needed by the to-do service.
// This interface is private to the service layer.
type repository interface {
	InsertToDo(ctx context.Context, todo *models.ToDo) error
	GetToDoByID(ctx context.Context, id int) (*models.ToDo, error)
	GetToDosByBoard(ctx context.Context, boardID int) ([]*models.ToDo, error)
	UpdateToDo(ctx context.Context, todo *models.ToDo) error
	DeleteToDo(ctx context.Context, id int) error
	SetToDoStatusByBoard(ctx context.Context, boardID int, status models.Status) error
}

type service struct {
	repo repository
}

// NewService creates a new to-do service.
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) GetToDo(ctx context.Context, id int) (*models.ToDo, error) {
	if id <= 0 {
		return nil, ErrInvalidToDoID
	}
	return s.repo.GetToDoByID(ctx, id)
}

func (s *service) GetToDosForBoard(ctx context.Context, boardID int) ([]*models.ToDo, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetToDosByBoard(ctx, boardID)
}

// CreateToDo inserts unconditionally; there is no dedup on the direct
// creation path.
func (s *service) CreateToDo(ctx context.Context, req CreateToDoRequest) (*models.ToDo, error) {
	if req.BoardID <= 0 {
		return nil, ErrInvalidBoardID
	}

	todo := &models.ToDo{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Color:       req.Color,
		URL:         req.URL,
		ImagePath:   req.ImagePath,
		Position:    req.Position,
		Status:      models.StatusNotCompleted,
		CreatorID:   req.CreatorID,
		BoardID:     req.BoardID,
	}
	if err := s.repo.InsertToDo(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create to-do: %w", err)
	}
	return todo, nil
}

// UpdateToDo overwrites the stored row with the caller's copy.
func (s *service) UpdateToDo(ctx context.Context, todo *models.ToDo) error {
	if todo == nil {
		return ErrNilToDo
	}
	if todo.ID <= 0 {
		return ErrInvalidToDoID
	}
	return s.repo.UpdateToDo(ctx, todo)
}

func (s *service) DeleteToDo(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidToDoID
	}
	return s.repo.DeleteToDo(ctx, id)
}

// MarkCompleted sets the in-memory status first, then persists. If the
// update fails the caller's copy is ahead of storage; the caller decides
// whether to retry or re-read.
func (s *service) MarkCompleted(ctx context.Context, todo *models.ToDo) error {
	if todo == nil {
		return ErrNilToDo
	}
	if todo.ID <= 0 {
		return ErrInvalidToDoID
	}
	todo.Status = models.StatusCompleted
	return s.repo.UpdateToDo(ctx, todo)
}

// MarkAllCompletedForBoard transitions every to-do on the board in a single
// bulk statement so no reader can observe a partially completed board.
func (s *service) MarkAllCompletedForBoard(ctx context.Context, boardID int) error {
	if boardID <= 0 {
		return ErrInvalidBoardID
	}
	return s.repo.SetToDoStatusByBoard(ctx, boardID, models.StatusCompleted)
}
