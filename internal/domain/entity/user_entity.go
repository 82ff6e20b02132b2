package entity

import (
	"time"
)

// User is a registered account.
// PasswordHash holds a bcrypt hash, never the plaintext password.
// Email is matched exactly as submitted: case-sensitive and untrimmed.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Credential is the email/password pair a client submits to register or log in.
type Credential struct {
	Email    string
	Password string
}
