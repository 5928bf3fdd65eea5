// Package crypto exposes the minimal primitives behind passforge.
//
// Contents
//
//   - PBKDF2-HMAC-SHA256 key stretching over the combined secret input
//     (StretchKey)
//   - The fixed 70-character password alphabet and key-byte encoder
//     (EncodePassword)
//   - Random hex salt generation (NewSalt)
//
// # Notes
//
// Everything here is deterministic given its inputs and performs no
// validation; services validate before calling. Callers should treat derived
// key material as sensitive and wipe it when practical.
package crypto
