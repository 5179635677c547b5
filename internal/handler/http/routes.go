package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}
	router.Get("/api/version", h.getServerVersion)

	// federation endpoints, the session is never required here
	router.Get("/auth/google", h.beginGoogleAuth)
	router.Get("/auth/google/home", h.googleCallback)

	// routes where a session is optional
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/auth/user", h.currentUser)
		r.Post("/auth/user", h.currentUser)
		r.Get("/auth/logout", h.logout)
	})

	// routes with a required session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Use(h.requireSession)

		r.Post("/createnote", h.createNote)
		r.Post("/deletenote", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
