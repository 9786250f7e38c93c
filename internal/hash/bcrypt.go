// Package hash provides the password hashing primitive used by the
// auth service.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/asoloviev/nutritrack/internal/model"
)

// cost is the bcrypt work factor. Changing it only affects newly
// hashed passwords; existing hashes keep the cost they were created with.
const cost = 10

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher using salted bcrypt hashes.
type Bcrypt struct{}

// NewBcrypt creates a new bcrypt password hasher.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// Hash generates a salted hash from a plaintext password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether the plaintext password matches the stored hash.
func (b *Bcrypt) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
