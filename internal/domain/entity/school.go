package entity

import "time"

// School is a destination school. Soft-deleted, unique by name.
type School struct {
	ID         string
	Name       string
	DivisionID *string // optional division binding
	Deleted    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
