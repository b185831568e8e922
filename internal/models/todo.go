package models

import "time"

// ToDo is a single task attached to exactly one board and attributed to one
// creator. Color, URL and ImagePath are display attributes the core does not
// interpret. Position is -1 until the owner assigns one.
type ToDo struct {
	ID          int
	Title       string
	Description string
	DueDate     *time.Time
	Color       string
	URL         string
	ImagePath   string
	Position    int
	Status      Status
	CreatorID   int
	BoardID     int

	// SharedBy names the original creator on copies that arrived via the
	// sharing protocol. Empty on to-dos the owner created directly.
	SharedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsShared reports whether this to-do is a copy produced by the sharing
// protocol rather than one the owner created directly.
func (t *ToDo) IsShared() bool {
	return t.SharedBy != ""
}
