// Package postgres implements the persistence store on PostgreSQL via pgx.
// It satisfies the same repository interfaces as the SQLite backend and is
// selected through configuration.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bacheca-dev/bacheca/internal/database"
)

// Store is a pgx-backed implementation of database.DataStore.
type Store struct {
	pool *pgxpool.Pool
}

var _ database.DataStore = (*Store)(nil)

// Connect opens a connection pool against dsn, verifies it, and ensures the
// schema exists.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// migrate creates the schema. Mirrors the SQLite schema in
// internal/database/migrations.go; todos.board_id carries no ON DELETE
// CASCADE for the same reason documented there.
func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS boards (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		user_id INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE(title, user_id)
	);

	CREATE TABLE IF NOT EXISTS todos (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date TIMESTAMPTZ,
		color TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'NOT_COMPLETED',
		url TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT -1,
		user_id INTEGER NOT NULL REFERENCES users(id),
		shared_by TEXT,
		board_id INTEGER NOT NULL REFERENCES boards(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_boards_user ON boards(user_id);
	CREATE INDEX IF NOT EXISTS idx_todos_board ON todos(board_id);
	CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id);
	`

	_, err := s.pool.Exec(ctx, schema)
	return err
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
