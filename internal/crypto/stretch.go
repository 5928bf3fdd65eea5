package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyBytes is the PBKDF2 output size. The encoder consumes at most one
	// key byte per password character, so this also caps password length.
	KeyBytes = 32

	// SaltBytes is the entropy of a generated salt before hex encoding.
	SaltBytes = 16
)

// StretchKey derives the fixed-size key for a base secret and normalized
// metadata. The two are joined with ":" and the UTF-8 bytes of the salt
// string are fed to PBKDF2 as-is; the salt is never hex-decoded, so every
// previously issued salt string keeps producing the same key.
func StretchKey(baseSecret, normalizedMetadata, salt string, iterations int) []byte {
	input := baseSecret + ":" + normalizedMetadata
	return pbkdf2.Key([]byte(input), []byte(salt), iterations, KeyBytes, sha256.New)
}
