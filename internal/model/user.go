package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system. The persisted session layout is
// exactly {id, name, email, role}; the password hash and creation time never
// leave the server side.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"-"`
}

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Sanitized returns a copy safe to hand to clients or the session store:
// credential material is stripped.
func (u *User) Sanitized() *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
