package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCPFAlreadyRegistered is returned when an attempt to register a new
	// member fails because a member with the same CPF already exists in the
	// database. The conflict is recoverable, never a crash.
	ErrCPFAlreadyRegistered = errors.New("CPF already registered")

	// ErrNoMemberWasFound is returned when a query expected to match at
	// least one member record produces an empty result set.
	ErrNoMemberWasFound = errors.New("no member was found")
)

// Errors returned by the asset storage area.
var (
	// ErrInvalidAssetName is returned when a stored name contains path
	// separators or otherwise cannot address a file inside a category area.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrAssetFileNotFound is returned when a stored name addresses no
	// physically existing file in its category area.
	ErrAssetFileNotFound = errors.New("asset file not found")
)

// Errors returned by the session store.
var (
	// ErrSessionNotFound is returned when no live session exists for the
	// presented session ID: it was never issued, has expired, or was
	// replaced by a newer login.
	ErrSessionNotFound = errors.New("session not found")
)
