package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bacheca-dev/bacheca/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// In-memory databases vanish if the pool opens a second connection
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestUser creates a test user and returns its ID. The stored password
// is an opaque placeholder; credential checks are exercised through the user
// service, not through rows created here.
func CreateTestUser(t *testing.T, db *sql.DB, username string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, "$2a$10$test.placeholder.hash")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	userID, _ := result.LastInsertId()
	return int(userID)
}

// CreateTestBoard creates a test board owned by userID and returns its ID
func CreateTestBoard(t *testing.T, db *sql.DB, userID int, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO boards (title, user_id) VALUES (?, ?)", title, userID)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	boardID, _ := result.LastInsertId()
	return int(boardID)
}

// CreateTestToDo creates a test to-do on the given board and returns its ID
func CreateTestToDo(t *testing.T, db *sql.DB, boardID, userID int, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (title, user_id, board_id) VALUES (?, ?, ?)",
		title, userID, boardID)
	if err != nil {
		t.Fatalf("Failed to create test to-do: %v", err)
	}
	todoID, _ := result.LastInsertId()
	return int(todoID)
}

// CreateTestSharedToDo creates a to-do carrying share provenance and returns its ID
func CreateTestSharedToDo(t *testing.T, db *sql.DB, boardID, userID int, title, sharedBy string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (title, user_id, board_id, shared_by) VALUES (?, ?, ?, ?)",
		title, userID, boardID, sharedBy)
	if err != nil {
		t.Fatalf("Failed to create test shared to-do: %v", err)
	}
	todoID, _ := result.LastInsertId()
	return int(todoID)
}

// TestDate returns a fixed due date for tests that need one
func TestDate() *time.Time {
	d := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	return &d
}
