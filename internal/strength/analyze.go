package strength

import (
	"unicode/utf8"

	"passforge/internal/domain"
)

// Analyze produces the full strength report for a password.
func Analyze(password string) domain.StrengthAnalysis {
	hasLower, hasUpper, hasDigit, hasSymbol := classes(password)
	entropy := Entropy(password)
	rating, color := Classify(entropy)

	return domain.StrengthAnalysis{
		Length:       utf8.RuneCountInString(password),
		HasLowercase: hasLower,
		HasUppercase: hasUpper,
		HasDigits:    hasDigit,
		HasSymbols:   hasSymbol,
		Entropy:      entropy,
		CrackTime:    CrackTime(entropy),
		Strength:     rating,
		Color:        color,
	}
}
