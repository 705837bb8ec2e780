package models

import "time"

// AssetCategory identifies one of the two fixed kinds of uploaded document.
// Each category maps to its own storage area; stored names are never shared
// between categories.
type AssetCategory string

const (
	// CategoryDocument is the member's identity document upload.
	CategoryDocument AssetCategory = "document"

	// CategoryResidenceProof is the member's proof-of-residence upload.
	CategoryResidenceProof AssetCategory = "proof_of_residence"
)

// ParseAssetCategory maps a raw request parameter to a known category.
// Any value outside the two known literals reports ok=false; callers must
// treat that as a not-found, never as a new storage area.
func ParseAssetCategory(raw string) (AssetCategory, bool) {
	switch AssetCategory(raw) {
	case CategoryDocument:
		return CategoryDocument, true
	case CategoryResidenceProof:
		return CategoryResidenceProof, true
	default:
		return "", false
	}
}

// StoredAsset describes one file sitting in a category's storage area, as
// reported by the storage listing used by the reconciliation sweep.
type StoredAsset struct {
	// Name is the generated opaque storage name.
	Name string

	// ModTime is the time the file was last written.
	ModTime time.Time
}

// Upload carries one uploaded file as received at the transport boundary.
// A nil *Upload or an empty OriginalName means "no asset supplied".
type Upload struct {
	// OriginalName is the client-declared file name. It is used only to
	// derive and validate the extension; the stored name never depends on it.
	OriginalName string

	// Content is the raw uploaded bytes.
	Content []byte
}
