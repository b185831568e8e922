package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bacheca-dev/bacheca/internal/testutil/cli"
)

func TestRegisterUser_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("Register a user", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
			[]string{"--username", "alice", "--password", "secret", "--quiet"})
		assert.NoError(t, err)

		userIDStr := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, userIDStr)

		var username, password string
		err = db.QueryRowContext(context.Background(),
			"SELECT username, password FROM users WHERE id = ?", userIDStr).Scan(&username, &password)
		assert.NoError(t, err)
		assert.Equal(t, "alice", username)
		// Stored credential is a bcrypt hash, not the clear text
		assert.NotEqual(t, "secret", password)
		assert.True(t, strings.HasPrefix(password, "$2a$"))
	})

	t.Run("Duplicate username is rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RegisterCmd(),
			[]string{"--username", "alice", "--password", "other", "--quiet"})
		assert.Error(t, err)

		var count int
		err2 := db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM users WHERE username = ?", "alice").Scan(&count)
		assert.NoError(t, err2)
		assert.Equal(t, 1, count)
	})
}
