package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin     = "admin"
	RoleCustodian = "property-custodian"
	RoleStaff     = "staff"
)

// User represents a system user (approver or issuer on transfers).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Name         string
	Designation  string
	Role         string // admin, property-custodian, staff
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
