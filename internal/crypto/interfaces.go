package crypto

// PasswordHasher is the credential boundary used by the service layer.
// Implementations must use a slow, salted, one-way algorithm; a fresh salt
// is drawn on every Hash call so identical plaintexts never produce equal
// hashes.
type PasswordHasher interface {
	// Hash derives an opaque, self-describing hash string from plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash using a
	// constant-time comparison. A malformed stored hash is an error, not
	// a mismatch.
	Verify(plaintext, stored string) (bool, error)
}
