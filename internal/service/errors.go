package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrFederation covers every way a provider callback can fail before an
	// identity is resolved: provider-reported errors, a missing code, a state
	// mismatch, a failed exchange, or an incomplete profile.
	ErrFederation = errors.New("identity federation failed")

	ErrUnauthenticated    = errors.New("no valid session")
	ErrForbiddenIdentity  = errors.New("payload identity differs from session identity")
	ErrSessionNotCreated  = errors.New("session could not be established")
	ErrNoteMutationFailed = errors.New("note mutation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
