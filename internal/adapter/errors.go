package adapter

import "errors"

var (
	// ErrProviderExchange is returned when the authorization code cannot be
	// exchanged for a token.
	ErrProviderExchange = errors.New("identity provider code exchange failed")
	// ErrProviderProfile is returned when the profile cannot be fetched or
	// decoded.
	ErrProviderProfile = errors.New("identity provider profile lookup failed")

	ErrTokenRejected       = errors.New("provider rejected access token")
	ErrAccessDenied        = errors.New("provider denied access")
	ErrRateLimited         = errors.New("provider rate limit reached")
	ErrProviderUnavailable = errors.New("provider is unavailable")
)
