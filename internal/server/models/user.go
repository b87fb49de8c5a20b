// Package models holds the persisted document shapes for the inkwell
// collections. Each *Doc type is stored and cached as one snapshot.
package models

import "time"

type Role string

const (
	RoleReader Role = "reader"
	RoleEditor Role = "editor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleReader || r == RoleEditor
}

// User is an account holder. PasswordHash is a bcrypt hash; the plaintext
// password is never stored. Username matching is case-sensitive.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UsersDoc is the full users collection snapshot.
type UsersDoc struct {
	Users []User `json:"users"`
}

// FindByUsername returns the user with the given username (exact match) or
// nil if absent.
func (d *UsersDoc) FindByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}
