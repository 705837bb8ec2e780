package models

import "time"

// Session is the server-side state of one authenticated login. It is keyed
// by an opaque server-issued ID held client-side inside a signed cookie;
// the record itself lives in the session store with a TTL.
//
// A session is created only at successful login, fully replaced (never
// merged) by each new login, and deleted at logout. Absence of a session
// means "not authenticated" everywhere in the system.
type Session struct {
	// ID is the opaque session identifier issued by the server.
	ID string `json:"id"`

	// MemberID is the account the session is bound to.
	MemberID int64 `json:"member_id"`

	// DisplayName is the member's name, cached for rendering without a
	// database round trip.
	DisplayName string `json:"display_name"`

	// CreatedAt is the time the session was issued.
	CreatedAt time.Time `json:"created_at"`
}
