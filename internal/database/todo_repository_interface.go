package database

import (
	"context"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// ToDoReader defines read operations for to-dos.
type ToDoReader interface {
	GetToDoByID(ctx context.Context, id int) (*models.ToDo, error)
	GetToDosByBoard(ctx context.Context, boardID int) ([]*models.ToDo, error)
}

// ToDoWriter defines write operations for to-dos.
type ToDoWriter interface {
	InsertToDo(ctx context.Context, todo *models.ToDo) error
	UpdateToDo(ctx context.Context, todo *models.ToDo) error
	DeleteToDo(ctx context.Context, id int) error
	SetToDoStatusByBoard(ctx context.Context, boardID int, status models.Status) error
}

// ToDoRepository combines all to-do-related operations.
type ToDoRepository interface {
	ToDoReader
	ToDoWriter
}
