package board

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bacheca-dev/bacheca/internal/testutil/cli"
)

func TestCreateBoard_Positive(t *testing.T) {
	// Setup test DB and App
	db, app := cli.SetupCLITest(t)

	cli.CreateTestUser(t, db, "alice")

	t.Run("Create board", func(t *testing.T) {
		cmd := CreateCmd()

		output, err := cli.ExecuteCLICommand(t, app, cmd,
			[]string{"--title", "Università", "--user", "alice", "--quiet"})

		assert.NoError(t, err)

		// Verify output contains a board ID (numeric)
		boardIDStr := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, boardIDStr)

		// Verify board exists in DB
		var title string
		err = db.QueryRowContext(context.Background(),
			"SELECT title FROM boards WHERE id = ?", boardIDStr).Scan(&title)
		assert.NoError(t, err)
		assert.Equal(t, "Università", title)
	})

	t.Run("Create same board again returns existing", func(t *testing.T) {
		first, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--title", "Lavoro", "--user", "alice", "--quiet"})
		assert.NoError(t, err)

		second, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--title", "Lavoro", "--user", "alice", "--quiet"})
		assert.NoError(t, err)

		assert.Equal(t, strings.TrimSpace(first), strings.TrimSpace(second))

		var count int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM boards WHERE title = ?", "Lavoro").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(),
			[]string{"--title", "Casa", "--user", "alice", "--json"})
		assert.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])

		data, ok := result["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "Casa", data["title"])
	})
}

func TestListBoards_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	aliceID := cli.CreateTestUser(t, db, "alice")
	cli.CreateTestBoard(t, db, aliceID, "Università")
	cli.CreateTestBoard(t, db, aliceID, "Lavoro")

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(),
		[]string{"--user", "alice", "--quiet"})
	assert.NoError(t, err)

	ids := strings.Fields(strings.TrimSpace(output))
	assert.Len(t, ids, 2)
}
