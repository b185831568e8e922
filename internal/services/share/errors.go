package share

import "errors"

// Domain errors for the sharing protocol
var (
	// ErrUnknownRecipient indicates the recipient username does not
	// resolve to an account. The share has no side effects in this case.
	ErrUnknownRecipient = errors.New("recipient user not found")

	// ErrUnknownCreator indicates the to-do's creator could not be
	// resolved, so provenance cannot be recorded.
	ErrUnknownCreator = errors.New("to-do creator not found")

	ErrNilToDo = errors.New("to-do cannot be nil")
)
