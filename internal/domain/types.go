package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultIterations is the PBKDF2 work factor used when the caller does
	// not choose one.
	DefaultIterations = 100000

	// Algorithm labels every derivation and recovery package.
	Algorithm = "PBKDF2-HMAC-SHA256"

	// RecoveryWarning is embedded verbatim in every recovery package.
	RecoveryWarning = "Keep this file secure! Store base password separately."
)

// VariantLabel names one of the three derived password lengths.
type VariantLabel string

const (
	VariantShort  VariantLabel = "short"
	VariantMedium VariantLabel = "medium"
	VariantLong   VariantLabel = "long"
)

// Length returns the password character count for the label, zero for an
// unknown label. Each character consumes one derived key byte.
func (l VariantLabel) Length() int {
	switch l {
	case VariantShort:
		return 16
	case VariantMedium:
		return 24
	case VariantLong:
		return 32
	}
	return 0
}

// VariantLabels lists the canonical labels in derivation order.
func VariantLabels() []VariantLabel {
	return []VariantLabel{VariantShort, VariantMedium, VariantLong}
}

// ParseVariantLabel maps user input onto a canonical label.
func ParseVariantLabel(s string) (VariantLabel, error) {
	switch l := VariantLabel(strings.ToLower(strings.TrimSpace(s))); l {
	case VariantShort, VariantMedium, VariantLong:
		return l, nil
	}
	return "", fmt.Errorf("variant %q: %w", s, ErrUnknownVariant)
}

// Variant is one derived password.
type Variant struct {
	Label    VariantLabel
	Password string
	Entropy  float64
}

// HardenResult is the outcome of one full derivation.
type HardenResult struct {
	Salt       string
	Iterations int
	Algorithm  string

	// KeyHex is the full derived key for diagnostics; the raw key bytes are
	// never carried in the result.
	KeyHex string

	Variants        []Variant
	OriginalEntropy float64
}

// Variant returns the derived variant with the given label.
func (r HardenResult) Variant(label VariantLabel) (Variant, bool) {
	for _, v := range r.Variants {
		if v.Label == label {
			return v, true
		}
	}
	return Variant{}, false
}

// Rating is the qualitative strength bucket.
type Rating string

const (
	RatingVeryWeak   Rating = "Very Weak"
	RatingWeak       Rating = "Weak"
	RatingModerate   Rating = "Moderate"
	RatingStrong     Rating = "Strong"
	RatingVeryStrong Rating = "Very Strong"
)

// CrackTimeEstimate is a human-scale brute-force duration.
type CrackTimeEstimate struct {
	Numeric float64 `json:"numeric"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// StrengthAnalysis is the full strength report for a password.
type StrengthAnalysis struct {
	Length       int               `json:"length"`
	HasLowercase bool              `json:"has_lowercase"`
	HasUppercase bool              `json:"has_uppercase"`
	HasDigits    bool              `json:"has_digits"`
	HasSymbols   bool              `json:"has_symbols"`
	Entropy      float64           `json:"entropy"`
	CrackTime    CrackTimeEstimate `json:"crack_time"`
	Strength     Rating            `json:"strength"`
	Color        string            `json:"color"`
}

// RecoveryPackage is the durable artifact that, together with the user's
// re-supplied base secret and metadata, regenerates every password variant.
// It never contains the base secret or full metadata values.
type RecoveryPackage struct {
	SecretKey     string            `json:"secret_key"`
	MetadataHints map[string]string `json:"metadata_hints"`
	Iterations    int               `json:"iterations"`
	Algorithm     string            `json:"algorithm"`
	Warning       string            `json:"warning"`
}

// Validate checks the structural integrity of a loaded package.
func (p RecoveryPackage) Validate() error {
	if p.SecretKey == "" {
		return errors.New("missing secret_key")
	}
	if p.Iterations < 1 {
		return fmt.Errorf("iterations %d out of range", p.Iterations)
	}
	if p.Algorithm != Algorithm {
		return fmt.Errorf("unsupported algorithm %q", p.Algorithm)
	}
	return nil
}
