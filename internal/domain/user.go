package domain

import "time"

// User represents a registered account. PasswordHash holds the salted
// PBKDF2 credential, never the plaintext.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
