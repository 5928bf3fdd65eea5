// Package harden orchestrates the derivation pipeline: metadata
// normalization, PBKDF2 key stretching and alphabet encoding, plus the
// constant-time verifier built on top of it.
package harden
