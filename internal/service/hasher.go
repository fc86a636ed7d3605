// Package service contains the service layer for the Geocheck app
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher turns plaintext passwords into verifiable one-way hashes. bcrypt
// embeds a random per-hash salt in its output, so the stored string alone is
// enough to verify later.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns the opaque hash for plaintext. The plaintext is never logged.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// empty hash verifies as false; the caller never learns why it failed.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
