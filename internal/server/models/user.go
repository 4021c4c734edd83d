package models

import "time"

// Role is the coarse capability level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is an identity record. PasswordHash is a bcrypt hash, never plaintext.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
