package model

import "time"

// User represents an authentication user.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_At"`
	UpdatedAt    time.Time `json:"updated_At"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin: 2,
		RoleStaff: 1,
	}
	return levels[role] >= levels[minimum]
}
