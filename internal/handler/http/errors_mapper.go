package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrNoSession:          http.StatusUnauthorized,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrForbiddenIdentity:   http.StatusForbidden,
	service.ErrFederation:          http.StatusBadGateway,

	store.ErrIdentityNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError replies with the status mapped from err. Server-side failures
// never leak their message to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
