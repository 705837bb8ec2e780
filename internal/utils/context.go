// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and session container signing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// MemberIDCtxKey is the key under which the authenticated member's ID is
// stored in the request context by the session middleware.
var MemberIDCtxKey = contextKey("memberID")

// SessionIDCtxKey is the key under which the current session's ID is stored
// in the request context by the session middleware.
var SessionIDCtxKey = contextKey("sessionID")

// GetMemberIDFromContext retrieves the authenticated member's ID from the
// context.
//
// Returns the member ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetMemberIDFromContext(ctx context.Context) (int64, bool) {
	memberID, ok := ctx.Value(MemberIDCtxKey).(int64)
	return memberID, ok
}

// GetSessionIDFromContext retrieves the current session's ID from the
// context. The ok flag mirrors [GetMemberIDFromContext].
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
