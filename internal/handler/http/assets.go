package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/service"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/internal/utils"
	"github.com/mbastos/acervo/models"
)

// fetchAsset streams a stored upload back to its owner.
//
// The category path segment is restricted to the two known literals; any
// other value is a plain 404, never a new storage area. Ownership is decided
// by the service layer: a mismatching name yields 403 without revealing
// whether it exists, an owned-but-missing file yields 404.
func (h *Handler) fetchAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	category, ok := models.ParseAssetCategory(chi.URLParam(r, "category"))
	if !ok {
		writeError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	requestedName := chi.URLParam(r, "name")

	memberID, ok := utils.GetMemberIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no member ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	file, err := h.services.AssetService.Fetch(ctx, memberID, category, requestedName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssetAccessDenied):
			log.Err(err).Msg("asset access denied")
			writeError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		case errors.Is(err, service.ErrAssetNotFound):
			log.Err(err).Msg("asset not found")
			writeError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		case errors.Is(err, store.ErrNoMemberWasFound):
			// The session outlived its account row; deny rather than leak.
			log.Err(err).Msg("session references an unknown member")
			writeError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during asset retrieval")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(requestedName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, file); err != nil {
		log.Err(err).Msg("error occured during streaming asset bytes")
	}
}
