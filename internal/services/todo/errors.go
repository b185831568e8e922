package todo

import "errors"

// Domain errors for to-do service
var (
	ErrInvalidToDoID  = errors.New("invalid to-do ID")
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrNilToDo        = errors.New("to-do cannot be nil")
)
