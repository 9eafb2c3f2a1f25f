// Package auth implements the session subsystem for the admin console:
// password hashing, signed session tokens, the session cookie, and the
// identity resolver the rest of the API asks "who is calling".
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades login latency for offline brute-force resistance. The
// digest is self-describing, so the cost can be retuned without breaking
// stored hashes.
const bcryptCost = 12

// HashPassword returns the bcrypt digest of plaintext.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// A malformed digest yields false, never an error to the caller.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
