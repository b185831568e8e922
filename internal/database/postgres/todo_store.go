package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bacheca-dev/bacheca/internal/models"
)

const todoColumns = `id, title, description, due_date, color, status, url, image_path,
	position, user_id, shared_by, board_id, created_at, updated_at`

// InsertToDo inserts a to-do unconditionally and populates todo.ID.
func (s *Store) InsertToDo(ctx context.Context, todo *models.ToDo) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO todos (title, description, due_date, color, status, url, image_path,
			position, user_id, shared_by, board_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		todo.Title, todo.Description, todo.DueDate, todo.Color,
		string(todo.Status), todo.URL, todo.ImagePath, todo.Position,
		todo.CreatorID, nullString(todo.SharedBy), todo.BoardID,
	).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert to-do '%s': %w", todo.Title, err)
	}
	return nil
}

// GetToDoByID retrieves a to-do by its ID. Returns (nil, nil) when absent.
func (s *Store) GetToDoByID(ctx context.Context, id int) (*models.ToDo, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)

	todo, err := scanToDo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get to-do %d: %w", id, err)
	}
	return todo, nil
}

// GetToDosByBoard retrieves all to-dos on a board in insertion order.
func (s *Store) GetToDosByBoard(ctx context.Context, boardID int) ([]*models.ToDo, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE board_id = $1 ORDER BY id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query to-dos for board %d: %w", boardID, err)
	}
	defer rows.Close()

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
func (s *Store) UpdateToDo(ctx context.Context, todo *models.ToDo) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE todos
		SET title = $1, description = $2, due_date = $3, color = $4, status = $5,
			url = $6, image_path = $7, position = $8, user_id = $9, shared_by = $10,
			board_id = $11, updated_at = now()
		WHERE id = $12`,
		todo.Title, todo.Description, todo.DueDate, todo.Color,
		string(todo.Status), todo.URL, todo.ImagePath, todo.Position,
		todo.CreatorID, nullString(todo.SharedBy), todo.BoardID, todo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update to-do %d: %w", todo.ID, err)
	}
	return nil
}

// DeleteToDo removes a to-do by ID. A nonexistent ID is a no-op.
func (s *Store) DeleteToDo(ctx context.Context, id int) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete to-do %d: %w", id, err)
	}
	return nil
}

// SetToDoStatusByBoard sets the status of every to-do on a board in one
// statement.
func (s *Store) SetToDoStatusByBoard(ctx context.Context, boardID int, status models.Status) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE todos SET status = $1, updated_at = now() WHERE board_id = $2`,
		string(status), boardID,
	)
	if err != nil {
		return fmt.Errorf("failed to set status for board %d: %w", boardID, err)
	}
	return nil
}

func nullString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func scanToDo(row pgx.Row) (*models.ToDo, error) {
	todo := &models.ToDo{}
	var (
		status   string
		sharedBy *string
	)
	err := row.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.DueDate,
		&todo.Color, &status, &todo.URL, &todo.ImagePath, &todo.Position,
		&todo.CreatorID, &sharedBy, &todo.BoardID, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, err
	}
	todo.Status = models.Status(status)
	if sharedBy != nil {
		todo.SharedBy = *sharedBy
	}
	return todo, nil
}
