package strength

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Class sizes for the entropy model. Symbols cover the 32 ASCII punctuation
// characters.
const (
	lowerSize  = 26
	upperSize  = 26
	digitSize  = 10
	symbolSize = 32
)

const symbolSet = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// classes reports which character classes appear in password.
func classes(password string) (hasLower, hasUpper, hasDigit, hasSymbol bool) {
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(symbolSet, r):
			hasSymbol = true
		}
	}
	return
}

// Entropy returns the password's entropy in bits, rounded to two decimals:
// character count times log2 of the summed sizes of the classes present.
// Characters outside every class add length but widen no class; a password
// with no classified characters scores zero.
func Entropy(password string) float64 {
	hasLower, hasUpper, hasDigit, hasSymbol := classes(password)

	size := 0
	if hasLower {
		size += lowerSize
	}
	if hasUpper {
		size += upperSize
	}
	if hasDigit {
		size += digitSize
	}
	if hasSymbol {
		size += symbolSize
	}
	if size == 0 {
		return 0
	}

	n := utf8.RuneCountInString(password)
	return round2(float64(n) * math.Log2(float64(size)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
