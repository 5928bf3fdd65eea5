package harden

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"passforge/internal/crypto"
	"passforge/internal/domain"
	"passforge/internal/strength"
	"passforge/internal/util/memzero"
)

// Service derives deterministic password variants from a base secret,
// personal metadata and derivation parameters.
//
// The pipeline is:
//   - Normalize the metadata into its canonical concatenated form.
//   - Stretch base secret plus metadata through PBKDF2-HMAC-SHA256.
//   - Encode key bytes onto the fixed password alphabet, one byte per
//     character, at the three canonical lengths.
type Service struct{}

// New returns a harden service.
func New() *Service { return &Service{} }

// Harden derives all variants under a fresh random salt.
func (s *Service) Harden(baseSecret string, md domain.Metadata, iterations int) (domain.HardenResult, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return domain.HardenResult{}, fmt.Errorf("generate salt: %w", err)
	}
	return s.HardenWithSalt(baseSecret, md, salt, iterations)
}

// HardenWithSalt derives all variants under a caller-supplied salt, for
// reproducing previously issued passwords.
func (s *Service) HardenWithSalt(baseSecret string, md domain.Metadata, salt string, iterations int) (domain.HardenResult, error) {
	if err := validate(baseSecret, salt, iterations); err != nil {
		return domain.HardenResult{}, err
	}

	key := crypto.StretchKey(baseSecret, md.Normalize(), salt, iterations)
	defer memzero.Zero(key)

	result := domain.HardenResult{
		Salt:            salt,
		Iterations:      iterations,
		Algorithm:       domain.Algorithm,
		KeyHex:          hex.EncodeToString(key),
		OriginalEntropy: strength.Entropy(baseSecret),
	}
	for _, label := range domain.VariantLabels() {
		password := crypto.EncodePassword(key, label.Length())
		result.Variants = append(result.Variants, domain.Variant{
			Label:    label,
			Password: password,
			Entropy:  strength.Entropy(password),
		})
	}
	return result, nil
}

// Verify recomputes the derivation and compares the encoding at the stored
// password's length against it in constant time. The expected value is never
// returned; stored values longer than the key cannot match.
func (s *Service) Verify(baseSecret string, md domain.Metadata, salt, stored string, iterations int) (bool, error) {
	if err := validate(baseSecret, salt, iterations); err != nil {
		return false, err
	}
	if stored == "" {
		return false, domain.ErrEmptyStoredPassword
	}

	key := crypto.StretchKey(baseSecret, md.Normalize(), salt, iterations)
	defer memzero.Zero(key)

	candidate := crypto.EncodePassword(key, len(stored))
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1, nil
}

func validate(baseSecret, salt string, iterations int) error {
	if baseSecret == "" {
		return domain.ErrEmptyBaseSecret
	}
	if salt == "" {
		return domain.ErrEmptySalt
	}
	if iterations < 1 {
		return domain.ErrInvalidIterations
	}
	return nil
}

// Compile-time assertion that Service implements domain.HardenService.
var _ domain.HardenService = (*Service)(nil)
