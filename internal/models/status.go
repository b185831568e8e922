package models

// Status is the completion state of a to-do.
type Status string

const (
	StatusCompleted    Status = "COMPLETED"
	StatusNotCompleted Status = "NOT_COMPLETED"
)

// Valid reports whether s is one of the two known states.
func (s Status) Valid() bool {
	return s == StatusCompleted || s == StatusNotCompleted
}

// DefaultPosition marks a to-do whose position has not been assigned yet.
const DefaultPosition = -1
