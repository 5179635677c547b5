// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter integrates the notes server with the external identity
// provider.
//
// The primary abstraction is [IdentityProvider], which decouples the
// federation service from the OAuth2 flow. The package ships a Google
// implementation ([NewGoogleIdentityProvider]) built on golang.org/x/oauth2
// for the code exchange and go-resty for the profile lookup.
//
// Error values defined in errors.go are returned wrapped so that callers can
// use [errors.Is] to tell a failed code exchange ([ErrProviderExchange]) from
// a failed profile lookup ([ErrProviderProfile]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider performs the provider side of the OAuth2 authorization
// code flow.
type IdentityProvider interface {
	// AuthorizeURL returns the consent page URL the browser is redirected to.
	// state is echoed back by the provider on the callback.
	AuthorizeURL(state string) string

	// ExchangeCallback trades the authorization code for an access token and
	// fetches the profile of the user who granted it.
	ExchangeCallback(ctx context.Context, code string) (models.Profile, error)
}
