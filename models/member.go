package models

import "time"

// Member represents a registered library member. One row exists per member;
// the CPF is unique across all accounts and immutable after creation.
// Sensitive fields must never be exposed outside trusted boundaries.
type Member struct {
	// ID is the internal unique identifier of the member, assigned by the
	// database at creation time.
	ID int64 `json:"id"`

	// CPF is the normalized 11-digit national identity number used as the
	// login identifier. Stored digits-only.
	CPF string `json:"cpf"`

	// PasswordHash is the salted one-way hash of the member's password.
	// It never equals or derives the plaintext and is excluded from JSON.
	PasswordHash string `json:"-"`

	// Name is the member's full display name.
	Name string `json:"name"`

	// Address is the member's free-text postal address.
	Address string `json:"address"`

	// Phone is the member's free-text contact phone.
	Phone string `json:"phone"`

	// Fines is the outstanding fine amount owed by the member.
	// Defaults to zero at creation; mutated only by the billing flow.
	Fines float64 `json:"fines"`

	// DocumentAsset is the stored name of the identity document upload,
	// empty if no document was supplied at registration.
	DocumentAsset string `json:"document_asset,omitempty"`

	// ResidenceProofAsset is the stored name of the proof-of-residence
	// upload, empty if none was supplied at registration.
	ResidenceProofAsset string `json:"residence_proof_asset,omitempty"`

	// CreatedAt is the timestamp when the member account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// AssetFor returns the stored asset name recorded for the given category.
// An empty string means no asset of that category is on file.
func (m Member) AssetFor(category AssetCategory) string {
	switch category {
	case CategoryDocument:
		return m.DocumentAsset
	case CategoryResidenceProof:
		return m.ResidenceProofAsset
	default:
		return ""
	}
}
