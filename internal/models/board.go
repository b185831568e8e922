package models

import "time"

// Board is a named collection of to-dos owned by one user.
// (Title, OwnerID) is unique: no user may have two boards with the same title.
type Board struct {
	ID        int
	Title     string
	OwnerID   int
	CreatedAt time.Time
}
