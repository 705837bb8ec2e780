package http

import (
	"errors"
	"net/http"

	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/internal/utils"
)

// profile returns the authenticated member's account row. The credential
// hash never appears in the response body.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	memberID, ok := utils.GetMemberIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no member ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	member, err := h.services.RegistrationService.Profile(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNoMemberWasFound) {
			// The session outlived its account row.
			log.Err(err).Int64("member_id", memberID).Msg("session references an unknown member")
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during profile lookup")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, member, http.StatusOK)
}
