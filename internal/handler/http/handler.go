package http

import (
	"net/http"
	"time"

	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/service"
	"github.com/mbastos/acervo/internal/utils"
	"github.com/mbastos/acervo/models"
)

// sessionCookieName is the name of the HttpOnly cookie carrying the signed
// session container.
const sessionCookieName = "acervo_session"

type Handler struct {
	services *service.Services

	// maxUploadBytes caps the size of an incoming registration request,
	// enforced before the multipart body is parsed.
	maxUploadBytes int64

	// sessionTTL bounds the lifetime of the session cookie; it mirrors the
	// server-side session lifetime.
	sessionTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: cfg.Storage.Assets.MaxUploadBytes,
		sessionTTL:     cfg.App.SessionTTL,
		logger:         logger,
	}
}

// writeError sends the uniform JSON error body with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// sessionCookie builds the HttpOnly cookie holding the signed session token.
// A negative maxAge produces the expired cookie used to clear client state.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
