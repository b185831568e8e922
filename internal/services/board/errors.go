package board

import "errors"

// Domain errors for board service
var (
	ErrEmptyTitle     = errors.New("board title cannot be empty")
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrInvalidOwnerID = errors.New("invalid owner ID")
)
