package crypto

import "errors"

var (
	// ErrMalformedHash is returned by Verify when the stored hash string
	// cannot be parsed as a PHC-format Argon2id hash. It indicates data
	// corruption, never a wrong password.
	ErrMalformedHash = errors.New("malformed password hash")
)
