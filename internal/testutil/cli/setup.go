package cli

import (
	"database/sql"
	"testing"

	"github.com/bacheca-dev/bacheca/internal/app"
	"github.com/bacheca-dev/bacheca/internal/database"
	"github.com/bacheca-dev/bacheca/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(database.NewRepository(db))

	return db, appInstance
}

// CreateTestUser wraps testutil.CreateTestUser for CLI tests
func CreateTestUser(t *testing.T, db *sql.DB, username string) int {
	t.Helper()
	return testutil.CreateTestUser(t, db, username)
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
func CreateTestBoard(t *testing.T, db *sql.DB, userID int, title string) int {
	t.Helper()
	return testutil.CreateTestBoard(t, db, userID, title)
}

// CreateTestToDo wraps testutil.CreateTestToDo for CLI tests
func CreateTestToDo(t *testing.T, db *sql.DB, boardID, userID int, title string) int {
	t.Helper()
	return testutil.CreateTestToDo(t, db, boardID, userID, title)
}
