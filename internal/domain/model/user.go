package model

import "time"

// Role identifies what an account may do.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents an account of any role.
type User struct {
	ID           int64
	UserName     string
	PhoneNumber  string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Actor is the authenticated identity attached to a request.
type Actor struct {
	ID   int64
	Role Role
}

// Staff reports whether the actor can use the admin surface.
func (a Actor) Staff() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}
