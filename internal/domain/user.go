package domain

import "time"

// Role names an authorization role carried in token claims.
// Comparison is case-sensitive; roles are a flat, unordered set with no
// hierarchy between them.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

// User is the identity record behind login. Users are identified by uuid
// strings, unlike catalog entities which use store-assigned integers.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
