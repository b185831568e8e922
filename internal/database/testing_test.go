package database

import (
	"context"
	"database/sql"
	"testing"
)

// newTestDB creates an in-memory database with the full schema
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// In-memory databases vanish if the pool opens a second connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// newTestUser inserts a user row and returns its ID
func newTestUser(t *testing.T, db *sql.DB, username string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO users (username, password) VALUES (?, ?)", username, "hash")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}
