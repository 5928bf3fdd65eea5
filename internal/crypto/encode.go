package crypto

// PasswordAlphabet is the fixed output alphabet: letters, digits and eight
// symbols, 70 characters. The ordering is part of the derivation contract;
// reordering it would change every issued password.
const PasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// EncodePassword maps key bytes onto PasswordAlphabet, one byte per
// character. Lengths beyond len(key) truncate silently to len(key).
func EncodePassword(key []byte, length int) string {
	if length > len(key) {
		length = len(key)
	}
	if length <= 0 {
		return ""
	}

	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = PasswordAlphabet[int(key[i])%len(PasswordAlphabet)]
	}
	return string(out)
}
