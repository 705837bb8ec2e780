package store

import (
	"context"
	"io"
	"time"

	"github.com/mbastos/acervo/models"
)

// MemberRepository is the data-access layer for member accounts.
type MemberRepository interface {
	// CreateMember persists a new member row and returns it with
	// server-assigned fields populated. A duplicate CPF surfaces as
	// [ErrCPFAlreadyRegistered].
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)

	// FindMemberByCPF looks a member up by normalized CPF.
	// Returns [ErrNoMemberWasFound] on an empty result.
	FindMemberByCPF(ctx context.Context, cpf string) (models.Member, error)

	// FindMemberByID looks a member up by surrogate ID.
	// Returns [ErrNoMemberWasFound] on an empty result.
	FindMemberByID(ctx context.Context, id int64) (models.Member, error)

	// UpdateMemberFines replaces the outstanding-fines amount of a member.
	// Exposed for the external billing collaborator.
	UpdateMemberFines(ctx context.Context, id int64, fines float64) error

	// ListAssetNames returns every stored asset name referenced by any
	// member row for the given category. Used by the reconciliation sweep.
	ListAssetNames(ctx context.Context, category models.AssetCategory) ([]string, error)
}

// AssetStorage is a byte-storage area holding uploaded documents, one
// logically separate area per asset category. Files are addressed only by
// their generated opaque name; no listing capability is exposed to end
// users (List exists solely for the reconciliation sweep).
type AssetStorage interface {
	// Save persists content under name inside the category's area.
	Save(ctx context.Context, category models.AssetCategory, name string, content []byte) error

	// Open returns a reader over the stored bytes.
	// Returns [ErrAssetFileNotFound] if no such file exists.
	Open(ctx context.Context, category models.AssetCategory, name string) (io.ReadCloser, error)

	// Exists reports whether the named file physically exists.
	Exists(ctx context.Context, category models.AssetCategory, name string) (bool, error)

	// Remove deletes the named file. Removing an absent file is not an error.
	Remove(ctx context.Context, category models.AssetCategory, name string) error

	// List returns all files currently in the category's area together
	// with their last-write times.
	List(ctx context.Context, category models.AssetCategory) ([]models.StoredAsset, error)
}

// SessionStore holds the server-side state of authenticated sessions,
// keyed by opaque session ID with a TTL.
type SessionStore interface {
	// Create stores the session under its ID for the given lifetime.
	Create(ctx context.Context, session models.Session, ttl time.Duration) error

	// Get returns the live session with the given ID.
	// Returns [ErrSessionNotFound] if none exists or it has expired.
	Get(ctx context.Context, id string) (models.Session, error)

	// Delete removes the session with the given ID. Deleting an absent
	// session is not an error; the operation is idempotent.
	Delete(ctx context.Context, id string) error
}
