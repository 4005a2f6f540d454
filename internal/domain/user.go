package domain

import (
	"fmt"
	"time"
)

// Role controls access to the admin surface.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a role string from external input.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User is a storefront account. Balance is mutated only through the ledger's
// signed-delta contract; nothing else writes it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Balance   Cents     `json:"balance"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may hit the admin surface.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
