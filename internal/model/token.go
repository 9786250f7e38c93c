package model

import "github.com/google/uuid"

// TokenManager mints and validates session tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}

// PasswordHasher hashes plaintext passwords and verifies them against
// a stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
