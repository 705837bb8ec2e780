package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/member/register", h.register)
		r.Post("/api/member/login", h.login)
		r.Post("/api/member/logout", h.logout)
	})

	// routes that require a live session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/member/profile", h.profile)
		r.Get("/uploads/{category}/{name}", h.fetchAsset)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
