// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/utils"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It extracts the signed session container from the session cookie, resolves
// it to a live server-side session via [service.AuthService.Authenticate],
// and — on success — stores the member ID and session ID in the request
// context under [utils.MemberIDCtxKey] and [utils.SessionIDCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent or empty ([ErrNoSessionCookie],
//     [ErrEmptySessionCookie]).
//   - The container signature or issuer does not verify.
//   - The server-side session has expired, was logged out, or was replaced
//     by a newer login.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := tokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Err(err).Msg("error occurred during session authentication")
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the session identity in the context so that downstream
		// handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.MemberIDCtxKey, session.MemberID)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, session.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
