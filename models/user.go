package models

import "time"

// User represents an account entity used for authentication, authorization
// and profile data. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. Uniqueness is enforced by the
	// database and surfaced to callers as a duplicate-email error.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from JSON.
	PasswordHash string `json:"-"`

	// Height is the user's height in centimetres. Must be positive.
	Height float64 `json:"height"`

	// Weight is the user's weight in kilograms. Must be positive.
	Weight float64 `json:"weight"`

	// Goal is the user's fitness goal (e.g. "Maintain Weight").
	Goal string `json:"goal"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
