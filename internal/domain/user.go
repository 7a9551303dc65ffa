package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RoleValues are the accepted account roles.
var RoleValues = []string{RoleUser, RoleAdmin}

// ValidRole reports whether s names an accepted role.
func ValidRole(s string) bool {
	return oneOf(s, RoleValues)
}

// User is a portal account. Role and facility live on the stored identity,
// not in the token payload, so every protected request resolves the user.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Facility     string    `json:"facility"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
