package todo

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bacheca-dev/bacheca/internal/testutil/cli"
)

func TestShareToDo_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	aliceID := cli.CreateTestUser(t, db, "alice")
	cli.CreateTestUser(t, db, "bob")
	boardID := cli.CreateTestBoard(t, db, aliceID, "Università")
	todoID := cli.CreateTestToDo(t, db, boardID, aliceID, "Studiare per l'esame")

	t.Run("Share creates a copy on the recipient's board", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShareCmd(),
			[]string{"--id", strconv.Itoa(todoID), "--to", "bob", "--quiet"})
		assert.NoError(t, err)

		copyIDStr := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, copyIDStr)
		assert.NotEqual(t, strconv.Itoa(todoID), copyIDStr)

		// The copy carries provenance and lives on bob's auto-created board
		var sharedBy string
		var copyBoardID int
		err = db.QueryRowContext(context.Background(),
			"SELECT shared_by, board_id FROM todos WHERE id = ?", copyIDStr).Scan(&sharedBy, &copyBoardID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", sharedBy)
		assert.NotEqual(t, boardID, copyBoardID)

		var boardTitle string
		err = db.QueryRowContext(context.Background(),
			"SELECT title FROM boards WHERE id = ?", copyBoardID).Scan(&boardTitle)
		assert.NoError(t, err)
		assert.Equal(t, "Università", boardTitle)
	})

	t.Run("Sharing again is a no-op", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShareCmd(),
			[]string{"--id", strconv.Itoa(todoID), "--to", "bob", "--quiet"})
		assert.NoError(t, err)

		var count int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM todos WHERE shared_by = ?", "alice").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Self-share is rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShareCmd(),
			[]string{"--id", strconv.Itoa(todoID), "--to", "alice", "--quiet"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "own owner")
	})

	t.Run("Unknown recipient leaves the store untouched", func(t *testing.T) {
		var todosBefore, boardsBefore int
		_ = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM todos").Scan(&todosBefore)
		_ = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM boards").Scan(&boardsBefore)

		_, err := cli.ExecuteCLICommand(t, app, ShareCmd(),
			[]string{"--id", strconv.Itoa(todoID), "--to", "nobody", "--quiet"})
		assert.Error(t, err)

		var todosAfter, boardsAfter int
		_ = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM todos").Scan(&todosAfter)
		_ = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM boards").Scan(&boardsAfter)
		assert.Equal(t, todosBefore, todosAfter)
		assert.Equal(t, boardsBefore, boardsAfter)
	})
}
