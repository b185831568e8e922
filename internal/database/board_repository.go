package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// InsertBoard inserts a new board row and populates board.ID.
// A (title, user_id) conflict is reported as models.ErrDuplicateBoard so the
// caller can re-read the existing row instead of failing.
func (r *BoardRepo) InsertBoard(ctx context.Context, board *models.Board) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (title, user_id) VALUES (?, ?)`,
		board.Title, board.OwnerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateBoard
		}
		return fmt.Errorf("failed to insert board '%s': %w", board.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get board ID after insert: %w", err)
	}
	board.ID = int(id)
	return nil
}

// GetBoardByID retrieves a board by its ID. Returns (nil, nil) when absent.
func (r *BoardRepo) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, user_id, created_at FROM boards WHERE id = ?`,
		id,
	).Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return board, nil
}

// GetBoardByTitleAndOwner retrieves a board by its natural key.
// Absence is not an error: returns (nil, nil).
func (r *BoardRepo) GetBoardByTitleAndOwner(ctx context.Context, title string, ownerID int) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, user_id, created_at FROM boards WHERE title = ? AND user_id = ?`,
		title, ownerID,
	).Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board '%s' for owner %d: %w", title, ownerID, err)
	}
	return board, nil
}

// GetBoardsByOwner retrieves all boards owned by a user, ordered by ID.
func (r *BoardRepo) GetBoardsByOwner(ctx context.Context, ownerID int) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, user_id, created_at FROM boards WHERE user_id = ? ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards for owner %d: %w", ownerID, err)
	}
	return scanBoards(rows)
}

// GetBoardsByUsername retrieves all boards owned by the named user.
// An unknown username yields an empty slice, not an error.
func (r *BoardRepo) GetBoardsByUsername(ctx context.Context, username string) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, b.title, b.user_id, b.created_at
		FROM boards b
		JOIN users u ON b.user_id = u.id
		WHERE u.username = ?
		ORDER BY b.id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards for username '%s': %w", username, err)
	}
	return scanBoards(rows)
}

// UpdateBoard updates a board's title.
func (r *BoardRepo) UpdateBoard(ctx context.Context, board *models.Board) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE boards SET title = ? WHERE id = ?`,
		board.Title, board.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateBoard
		}
		return fmt.Errorf("failed to update board %d: %w", board.ID, err)
	}
	return nil
}

// DeleteBoard removes a board and every to-do it owns in one transaction,
// children first. Deleting a nonexistent ID is a no-op.
func (r *BoardRepo) DeleteBoard(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE board_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete to-dos for board %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete board %d: %w", id, err)
		}
		return nil
	})
}

// DeleteBoardsByOwner removes every board owned by a user along with all
// their to-dos, in one transaction, children first.
func (r *BoardRepo) DeleteBoardsByOwner(ctx context.Context, ownerID int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM todos WHERE board_id IN (SELECT id FROM boards WHERE user_id = ?)`,
			ownerID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete to-dos for owner %d: %w", ownerID, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM boards WHERE user_id = ?`, ownerID); err != nil {
			return fmt.Errorf("failed to delete boards for owner %d: %w", ownerID, err)
		}
		return nil
	})
}

func scanBoards(rows *sql.Rows) ([]*models.Board, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	boards := make([]*models.Board, 0, 8)
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		boards = append(boards, board)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating board rows: %w", err)
	}
	return boards, nil
}
