// Package strength scores passwords: entropy in bits from the character
// classes present, a brute-force duration estimate at a fixed guess rate,
// and a coarse qualitative rating.
package strength
