package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// beginGoogleAuth redirects the browser to the provider's consent page.
func (h *Handler) beginGoogleAuth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	auth, err := h.services.FederationService.BeginAuthorization(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.beginGoogleAuth").Msg("error starting authorization")
		writeError(w, err)
		return
	}

	setStateCookie(w, auth.State)
	http.Redirect(w, r, auth.URL, http.StatusTemporaryRedirect)
}

// googleCallback completes the federation. Both outcomes end in a redirect:
// to the frontend with a session cookie, or to the failure page without one.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	params := models.CallbackParams{
		Code:          query.Get("code"),
		State:         query.Get("state"),
		ExpectedState: stateFromCookie(r),
		Error:         query.Get("error"),
	}
	clearStateCookie(w)

	session, err := h.services.FederationService.CompleteAuthorization(r.Context(), params)
	if err != nil {
		log.Err(err).Str("func", "*Handler.googleCallback").Msg("federation failed")
		http.Redirect(w, r, h.cfg.FailureRedirect, http.StatusFound)
		return
	}

	h.setSessionCookie(w, session, time.Now())
	http.Redirect(w, r, h.cfg.FrontendOrigin, http.StatusFound)
}

// currentUser returns the session identity, or an empty 200 response for
// anonymous callers.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	if identity.Notes == nil {
		identity.Notes = []models.Note{}
	}
	if _, err := utils.WriteJSON(w, identity, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.currentUser").Msg("error writing identity")
	}
}

// logout terminates the session and always clears the cookie. "success" is
// only written when a session actually existed.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	existed, err := h.services.SessionService.Terminate(r.Context(), h.sessionToken(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error terminating session")
		writeError(w, err)
		return
	}

	h.clearSessionCookie(w)
	if !existed {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if _, err = utils.WriteText(w, "success", http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error writing response")
	}
}
