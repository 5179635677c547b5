// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is a time-bounded server-side binding between an opaque transport
// token and an Identity.
//
// Only the identity reference is persisted; the full Identity is rehydrated
// from storage every time the session is resolved.
type Session struct {
	// ID is the random session identifier. It is carried inside Token and
	// never stored in clear text.
	ID string `json:"-"`

	// Token is the signed value placed in the session cookie.
	Token string `json:"-"`

	// IdentityID references the bound Identity by its storage key.
	IdentityID int64 `json:"-"`

	// IssuedAt is the moment the session was established.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the fixed absolute expiry of the session.
	ExpiresAt time.Time `json:"-"`
}

// SessionClaims are the JWT claims carried by the session cookie.
//
// The registered "jti" claim holds the session ID and "sub" holds the
// identity storage key.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionRecord is the persisted form of a Session.
// TokenHash is a keyed digest of the session ID.
type SessionRecord struct {
	TokenHash  string
	IdentityID int64
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// IsExpired reports whether the record is no longer valid at now. The
// expiry instant itself is already expired.
func (s SessionRecord) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the SessionRecord model.
func (s SessionRecord) TableName() string {
	return "sessions"
}
