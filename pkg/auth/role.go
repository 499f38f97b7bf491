package auth

import (
	"github.com/google/uuid"
)

// Role is the access level carried by a user account and its tokens.
type Role string

const (
	// RoleUser grants read access to the catalog.
	RoleUser Role = "user"
	// RoleAdmin grants read and write access to the catalog.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Allow-lists consumed by the route table. Read covers every
// authenticated role, write is admin only.
var (
	ReadAccess  = []Role{RoleUser, RoleAdmin}
	WriteAccess = []Role{RoleAdmin}
)

// Principal is the authenticated identity attached to a request after
// the gate admits it.
type Principal struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
}
