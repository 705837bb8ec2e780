package models

// ErrorResponse is the JSON body returned on every failed request.
type ErrorResponse struct {
	// Error is a short, user-facing description of what went wrong.
	// Authentication failures deliberately carry a single generic message
	// regardless of root cause.
	Error string `json:"error"`
}

// RegisterResponse is returned after a successful registration.
// Registration produces no session; the member must log in separately.
type RegisterResponse struct {
	ID  int64  `json:"id"`
	CPF string `json:"cpf"`
}

// LoginResponse is returned after a successful login alongside the
// session cookie.
type LoginResponse struct {
	DisplayName string `json:"display_name"`
}
