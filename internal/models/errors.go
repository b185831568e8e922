package models

import "errors"

// Storage-level conflict errors. Both store backends map their driver's
// unique-constraint violations onto these so services can fall back to
// re-reading the winning row instead of failing the caller.
var (
	// ErrDuplicateBoard indicates a board with the same (title, owner)
	// already exists.
	ErrDuplicateBoard = errors.New("board with this title already exists for owner")

	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.New("username already registered")
)
