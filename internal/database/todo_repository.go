package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// ToDoRepo handles all to-do-related database operations.
type ToDoRepo struct {
	db *sql.DB
}

const todoColumns = `id, title, description, due_date, color, status, url, image_path,
	position, user_id, shared_by, board_id, created_at, updated_at`

// InsertToDo inserts a to-do unconditionally and populates todo.ID.
// There is no dedup here: duplicate prevention belongs to the sharing
// protocol, not the store.
func (r *ToDoRepo) InsertToDo(ctx context.Context, todo *models.ToDo) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (title, description, due_date, color, status, url, image_path,
			position, user_id, shared_by, board_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		todo.Title, todo.Description, nullTime(todo.DueDate), todo.Color,
		string(todo.Status), todo.URL, todo.ImagePath, todo.Position,
		todo.CreatorID, nullString(todo.SharedBy), todo.BoardID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert to-do '%s': %w", todo.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get to-do ID after insert: %w", err)
	}
	todo.ID = int(id)
	return nil
}

// GetToDoByID retrieves a to-do by its ID. Returns (nil, nil) when absent.
func (r *ToDoRepo) GetToDoByID(ctx context.Context, id int) (*models.ToDo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)

	todo, err := scanToDo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get to-do %d: %w", id, err)
	}
	return todo, nil
}

// GetToDosByBoard retrieves all to-dos on a board in insertion order.
func (r *ToDoRepo) GetToDosByBoard(ctx context.Context, boardID int) ([]*models.ToDo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE board_id = ? ORDER BY id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query to-dos for board %d: %w", boardID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	todos := make([]*models.ToDo, 0, 16)
	for rows.Next() {
		todo, err := scanToDo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan to-do row: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating to-do rows: %w", err)
	}
	return todos, nil
}

// UpdateToDo overwrites every mutable field of a to-do by ID.
func (r *ToDoRepo) UpdateToDo(ctx context.Context, todo *models.ToDo) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, description = ?, due_date = ?, color = ?, status = ?,
			url = ?, image_path = ?, position = ?, user_id = ?, shared_by = ?,
			board_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		todo.Title, todo.Description, nullTime(todo.DueDate), todo.Color,
		string(todo.Status), todo.URL, todo.ImagePath, todo.Position,
		todo.CreatorID, nullString(todo.SharedBy), todo.BoardID, todo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update to-do %d: %w", todo.ID, err)
	}
	return nil
}

// DeleteToDo removes a to-do by ID. A nonexistent ID is a no-op.
func (r *ToDoRepo) DeleteToDo(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete to-do %d: %w", id, err)
	}
	return nil
}

// SetToDoStatusByBoard sets the status of every to-do on a board in one
// statement. A single bulk UPDATE, not fetch-then-loop, so readers never
// observe a partially completed board.
func (r *ToDoRepo) SetToDoStatusByBoard(ctx context.Context, boardID int, status models.Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE todos SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE board_id = ?`,
		string(status), boardID,
	)
	if err != nil {
		return fmt.Errorf("failed to set status for board %d: %w", boardID, err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanToDo.
type scanner interface {
	Scan(dest ...any) error
}

func scanToDo(s scanner) (*models.ToDo, error) {
	todo := &models.ToDo{}
	var (
		dueDate  sql.NullTime
		status   string
		sharedBy sql.NullString
	)
	err := s.Scan(&todo.ID, &todo.Title, &todo.Description, &dueDate, &todo.Color,
		&status, &todo.URL, &todo.ImagePath, &todo.Position, &todo.CreatorID,
		&sharedBy, &todo.BoardID, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, err
	}
	todo.DueDate = NullTimeToPtr(dueDate)
	todo.Status = models.Status(status)
	todo.SharedBy = NullStringToString(sharedBy)
	return todo, nil
}
