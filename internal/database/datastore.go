package database

// DataStore defines the unified interface for all data operations needed by
// the application. It is composed of smaller, domain-specific interfaces so
// consumers can depend on just the slice they use. Both the SQLite
// Repository and the postgres Store satisfy it.
type DataStore interface {
	BoardRepository
	ToDoRepository
	UserRepository
}
