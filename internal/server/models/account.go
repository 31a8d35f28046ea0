// Package models defines server-side data models persisted in the database.
package models

import "time"

// Role is the access level of an account.
type Role string

const (
	// RoleUser is the standard role every new account receives.
	RoleUser Role = "user"
	// RoleAdmin grants access to user administration.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is a registered user. PasswordHash never leaves the server.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
