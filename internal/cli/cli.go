package cli

import (
	"context"
	"fmt"

	"github.com/bacheca-dev/bacheca/internal/app"
	"github.com/bacheca-dev/bacheca/internal/config"
	"github.com/bacheca-dev/bacheca/internal/database"
	"github.com/bacheca-dev/bacheca/internal/database/postgres"
	"github.com/bacheca-dev/bacheca/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	ctx      context.Context
	closeFns []func() error
}

// NewCLI initializes the CLI, opening the store backend selected by the
// user's config (SQLite by default, PostgreSQL when configured).
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &CLI{ctx: ctx}

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		store, err := postgres.Connect(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		c.closeFns = append(c.closeFns, func() error { store.Close(); return nil })
		c.App = app.New(store)

	case config.BackendSQLite, "":
		path := cfg.Storage.Path
		if path == "" {
			path, err = database.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.closeFns = append(c.closeFns, db.Close)
		c.App = app.New(database.NewRepository(db))

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return c, nil
}

// GetCLIFromContext returns a CLI bound to the app instance injected into ctx
// by the test harness, or initializes a real one when none is present.
// Commands must use this instead of NewCLI so integration tests can run them
// against an in-memory store.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok {
		return &CLI{App: testApp, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.App != nil {
		if err := c.App.Close(); err != nil {
			return err
		}
	}
	for _, fn := range c.closeFns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
