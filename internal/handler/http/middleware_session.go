package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// withSession resolves the session cookie, when present, and stores the
// identity in the request context under [utils.IdentityCtxKey]. Requests
// without a live session continue anonymously.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := h.sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.services.SessionService.Resolve(r.Context(), token)
		if errors.Is(err, service.ErrUnauthenticated) {
			log.Debug().Msg("session cookie does not map to a live session")
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.withSession").Msg("error resolving session")
			writeError(w, err)
			return
		}

		ctx := utils.WithIdentity(r.Context(), identity)
		ctx = logger.WithIdentity(ctx, identity.ExternalID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession rejects anonymous requests with 401 Unauthorized.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("session required")
			writeError(w, ErrNoSession)
			return
		}

		next.ServeHTTP(w, r)
	})
}
