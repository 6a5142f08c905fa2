package entity

import "time"

// Division is a destination school division. Soft-deleted, unique by name.
type Division struct {
	ID        string
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
