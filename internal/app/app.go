package app

import (
	"github.com/bacheca-dev/bacheca/internal/database"
	boardservice "github.com/bacheca-dev/bacheca/internal/services/board"
	shareservice "github.com/bacheca-dev/bacheca/internal/services/share"
	todoservice "github.com/bacheca-dev/bacheca/internal/services/todo"
	userservice "github.com/bacheca-dev/bacheca/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Store layer (direct database access)
	store database.DataStore

	// Service layer (business logic)
	UserService  userservice.Service
	BoardService boardservice.Service
	ToDoService  todoservice.Service
	ShareService shareservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(store database.DataStore) *App {
	boards := boardservice.NewService(store)
	return &App{
		store:        store,
		UserService:  userservice.NewService(store),
		BoardService: boards,
		ToDoService:  todoservice.NewService(store),
		// The share service routes board auto-creation through the board
		// service so both paths share one find-or-create implementation.
		ShareService: shareservice.NewService(store, boards),
	}
}

// Store returns the underlying data store for direct access.
func (a *App) Store() database.DataStore {
	return a.store
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
