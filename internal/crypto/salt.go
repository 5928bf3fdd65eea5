package crypto

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSalt returns a fresh random salt as a hex string carrying SaltBytes of
// entropy.
func NewSalt() (string, error) {
	b := make([]byte, SaltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
