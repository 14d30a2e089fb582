// Package secrets hashes and verifies credentials stored at rest.
package secrets

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash produces a bcrypt hash of the cleartext at the default cost.
func Hash(cleartext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the cleartext matches the stored hash.
func Verify(hash, cleartext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(cleartext)) == nil
}
