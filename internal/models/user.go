package models

import "time"

// User is an account in the user directory. Users own boards and create
// to-dos; they are immutable once registered except for password rotation.
type User struct {
	ID        int
	Username  string
	Password  string // bcrypt hash, managed by the user service
	CreatedAt time.Time
}
