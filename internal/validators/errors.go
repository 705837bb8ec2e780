package validators

import "errors"

var (
	// ErrInvalidCPF is returned when a supplied identity number fails
	// normalization, length, repeated-digit or checksum validation.
	ErrInvalidCPF = errors.New("invalid CPF")
)
