// Package validators provides input validation for member-supplied data.
//
// The central piece is the CPF validator: a pure function that normalizes
// and checksum-validates the 11-digit Brazilian national identity number
// used as the login identifier throughout the application.
package validators

import "strings"

// cpfLength is the number of digits in a normalized CPF, including the two
// trailing checksum digits.
const cpfLength = 11

// ValidateCPF normalizes and validates a raw CPF string.
//
// Normalization strips every non-digit character, so formatted input such
// as "123.456.789-09" is accepted. The normalized value must:
//   - contain exactly 11 digits;
//   - not consist of a single repeated digit (a known-invalid class that
//     nevertheless satisfies the checksum arithmetic);
//   - carry correct checksum digits at positions 10 and 11, each computed
//     as a weighted sum over the preceding digits.
//
// Returns the normalized digits-only CPF on success, or ErrInvalidCPF.
// The function is pure: no side effects, no I/O.
func ValidateCPF(raw string) (string, error) {
	cpf := normalizeCPF(raw)

	if len(cpf) != cpfLength {
		return "", ErrInvalidCPF
	}

	if allDigitsEqual(cpf) {
		return "", ErrInvalidCPF
	}

	// Two passes: the first checksum digit (position 9) covers digits 0..8,
	// the second (position 10) covers digits 0..9.
	for i := 9; i <= 10; i++ {
		sum := 0
		for num := 0; num < i; num++ {
			sum += int(cpf[num]-'0') * ((i + 1) - num)
		}
		digit := ((sum * 10) % 11) % 10
		if digit != int(cpf[i]-'0') {
			return "", ErrInvalidCPF
		}
	}

	return cpf, nil
}

// normalizeCPF removes every character outside '0'..'9'.
func normalizeCPF(raw string) string {
	var b strings.Builder
	b.Grow(cpfLength)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allDigitsEqual reports whether the string consists of one repeated digit.
func allDigitsEqual(cpf string) bool {
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			return false
		}
	}
	return true
}
