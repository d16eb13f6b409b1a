package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and book
// ownership attribution. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID uuid.UUID `json:"id"`

	// Name is the display name of the user. Embedded into issued tokens.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	// Uniqueness is enforced by the store, not the application.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
