package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// InsertBoard inserts a new board row and populates board.ID.
// A (title, user_id) conflict is reported as models.ErrDuplicateBoard.
func (s *Store) InsertBoard(ctx context.Context, board *models.Board) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO boards (title, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		board.Title, board.OwnerID,
	).Scan(&board.ID, &board.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateBoard
		}
		return fmt.Errorf("failed to insert board '%s': %w", board.Title, err)
	}
	return nil
}

// GetBoardByID retrieves a board by its ID. Returns (nil, nil) when absent.
func (s *Store) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, user_id, created_at FROM boards WHERE id = $1`,
		id,
	).Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return board, nil
}

// GetBoardByTitleAndOwner retrieves a board by its natural key.
// Absence is not an error: returns (nil, nil).
func (s *Store) GetBoardByTitleAndOwner(ctx context.Context, title string, ownerID int) (*models.Board, error) {
	board := &models.Board{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, user_id, created_at FROM boards WHERE title = $1 AND user_id = $2`,
		title, ownerID,
	).Scan(&board.ID, &board.Title, &board.OwnerID, &board.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board '%s' for owner %d: %w", title, ownerID, err)
	}
	return board, nil
}

// GetBoardsByOwner retrieves all boards owned by a user, ordered by ID.
func (s *Store) GetBoardsByOwner(ctx context.Context, ownerID int) ([]*models.Board, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, user_id, created_at FROM boards WHERE user_id = $1 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards for owner %d: %w", ownerID, err)
	}
	return collectBoards(rows)
}

// GetBoardsByUsername retrieves all boards owned by the named user.
// An unknown username yields an empty slice, not an error.
func (s *Store) GetBoardsByUsername(ctx context.Context, username string) ([]*models.Board, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT b.id, b.title, b.user_id, b.created_at
		FROM boards b
		JOIN users u ON b.user_id = u.id
		WHERE u.username = $1
		ORDER BY b.id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards for username '%s': %w", username, err)
	}
	return collectBoards(rows)
}

// UpdateBoard updates a board's title.
func (s *Store) UpdateBoard(ctx context.Context, board *models.Board) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE boards SET title = $1 WHERE id = $2`,
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
func (s *Store) DeleteBoard(ctx context.Context, id int) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM todos WHERE board_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete to-dos for board %d: %w", id, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete board %d: %w", id, err)
		}
		return nil
	})
}

// DeleteBoardsByOwner removes every board owned by a user along with all
// their to-dos, in one transaction, children first.
func (s *Store) DeleteBoardsByOwner(ctx context.Context, ownerID int) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM todos WHERE board_id IN (SELECT id FROM boards WHERE user_id = $1)`,
			ownerID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete to-dos for owner %d: %w", ownerID, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM boards WHERE user_id = $1`, ownerID); err != nil {
			return fmt.Errorf("failed to delete boards for owner %d: %w", ownerID, err)
		}
		return nil
	})
}

// withTx executes fn within a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func collectBoards(rows pgx.Rows) ([]*models.Board, error) {
	defer rows.Close()

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
