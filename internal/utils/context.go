// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, keyed hashing,
// HTTP response writing, random identifiers, and session token generation
// and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the session-resolved identity is
// stored in the request context.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity attached by the session
// middleware.
//
// Returns the identity and an ok flag:
//   - ok == true: the request carries a resolved session
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(r.Context())
//	if !ok {
//	    // anonymous request
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
