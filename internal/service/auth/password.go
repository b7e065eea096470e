package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a candidate password against a stored hash.
// The login flow depends on this interface so tests can swap out real
// bcrypt work.
type PasswordVerifier interface {
	// Compare returns nil when the plaintext password matches the hash,
	// and a non-nil error otherwise. Callers must not distinguish
	// between mismatch and other failures in user-facing responses.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier is the production PasswordVerifier. Hashing happens at
// registration time in the user store; this side only verifies.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements PasswordVerifier via bcrypt's constant-time check.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
