package crypto_test

import (
	"testing"

	"passforge/internal/crypto"
)

func BenchmarkStretchKey_DefaultIterations(b *testing.B) {
	for i := 0; i < b.N; i++ {
		crypto.StretchKey("MySimplePass123", "sunset villa5847", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6", 100000)
	}
}

func BenchmarkEncodePassword(b *testing.B) {
	key := crypto.StretchKey("secret", "metadata", "saltsaltsaltsalt", 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crypto.EncodePassword(key, crypto.KeyBytes)
	}
}
