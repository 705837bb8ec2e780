package models

// RegistrationRequest carries everything needed to enroll a new member.
// Document and ResidenceProof are optional; a nil entry means the member
// supplied no file for that category.
type RegistrationRequest struct {
	// CPF is the raw identity number as typed by the member. It is
	// normalized and checksum-validated before use.
	CPF string

	// Password is the plaintext credential. It is hashed immediately and
	// never persisted or logged.
	Password string

	// Name, Address and Phone are required free-text profile fields.
	Name    string
	Address string
	Phone   string

	// Document is the optional identity document upload.
	Document *Upload

	// ResidenceProof is the optional proof-of-residence upload.
	ResidenceProof *Upload
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}
