package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FederationService drives the OAuth2 authorization code flow with the
// external identity provider and turns a successful callback into a session.
type FederationService interface {
	// BeginAuthorization returns the consent URL and the anti-CSRF state the
	// transport must keep until the callback arrives.
	BeginAuthorization(ctx context.Context) (models.Authorization, error)
	// CompleteAuthorization validates the callback, resolves the identity and
	// establishes a session for it.
	CompleteAuthorization(ctx context.Context, params models.CallbackParams) (models.Session, error)
}

// SessionService issues, resolves and terminates server-side sessions.
type SessionService interface {
	Establish(ctx context.Context, identity models.Identity) (models.Session, error)
	// Resolve returns the identity bound to token, rehydrated from storage.
	// Any token that does not map to a live session yields ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (models.Identity, error)
	// Terminate ends the session carried by token and reports whether one
	// existed. Unknown or invalid tokens are not an error.
	Terminate(ctx context.Context, token string) (bool, error)
}

// NoteService mutates the note collection of the session identity.
type NoteService interface {
	CreateNote(ctx context.Context, identity models.Identity, mutation models.NoteMutation) error
	DeleteNote(ctx context.Context, identity models.Identity, mutation models.NoteMutation) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// idGenerator produces random opaque identifiers.
type idGenerator interface {
	Generate() string
}
