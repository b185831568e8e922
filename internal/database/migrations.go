package database

import (
	"context"
	"database/sql"
)

// Migrate creates the database schema. It is idempotent and is also used by
// the test helpers to build in-memory databases, so the schema only lives
// here.
//
// Note: todos.board_id deliberately has no ON DELETE CASCADE. Board deletion
// must enumerate and delete children first so a half-finished delete can
// never leave orphans behind a missing parent.
func Migrate(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS boards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		UNIQUE(title, user_id)
	);

	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date TIMESTAMP,
		color TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'NOT_COMPLETED',
		url TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT -1,
		user_id INTEGER NOT NULL,
		shared_by TEXT,
		board_id INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (board_id) REFERENCES boards(id)
	);

	CREATE INDEX IF NOT EXISTS idx_boards_user ON boards(user_id);
	CREATE INDEX IF NOT EXISTS idx_todos_board ON todos(board_id);
	CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}
