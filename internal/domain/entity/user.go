// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. It is created once at signup and never mutated afterwards.
type User struct {
	ID           uuid.UUID // Assigned by the credential store on creation.
	Username     string    // Display name.
	Email        string    // Login key, unique across all users.
	PasswordHash string    // Output of the password hasher, never the plaintext.
	CreatedAt    time.Time // Set by the credential store on creation.
}

// PublicUser is the projection of a User that may leave the service.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// Public returns the sanitized view of u.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}
