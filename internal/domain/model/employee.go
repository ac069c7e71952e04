package model

import "time"

// Role controls access to mutating endpoints.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Employee is a back-office account. ID doubles as the login name.
type Employee struct {
	ID           string
	Name         string
	Email        string
	Tel          string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Deleted      bool
	DeletedAt    *time.Time
}
