package strength

import "passforge/internal/domain"

// Bucket thresholds in entropy bits; each lower bound is inclusive of the
// next bucket.
const (
	weakBits       = 28
	moderateBits   = 36
	strongBits     = 60
	veryStrongBits = 80
)

// Classify buckets entropy into a qualitative rating and its display color.
func Classify(entropyBits float64) (domain.Rating, string) {
	switch {
	case entropyBits < weakBits:
		return domain.RatingVeryWeak, "red"
	case entropyBits < moderateBits:
		return domain.RatingWeak, "orange"
	case entropyBits < strongBits:
		return domain.RatingModerate, "yellow"
	case entropyBits < veryStrongBits:
		return domain.RatingStrong, "lightgreen"
	default:
		return domain.RatingVeryStrong, "green"
	}
}
