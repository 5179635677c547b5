// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity represents one authenticated end user.
//
// An Identity is created on the first successful federation exchange for an
// ExternalID that has never been seen before and is never deleted. The JSON
// field names mirror the shape the browser application already consumes.
type Identity struct {
	// ID is the internal storage key assigned by the database.
	// Sessions reference identities by this value.
	ID int64 `json:"id"`

	// ExternalID is the opaque identifier issued by the identity provider.
	// It is the sole natural key: unique and immutable after creation.
	ExternalID string `json:"googleId"`

	// DisplayName mirrors the provider-supplied display name.
	DisplayName string `json:"name"`

	// Email mirrors the provider-supplied primary email address.
	Email string `json:"email"`

	// AvatarURL mirrors the provider-supplied profile picture URL.
	AvatarURL string `json:"avatar"`

	// Notes is the identity's note collection in insertion order.
	// Always non-nil when returned by the store.
	Notes []Note `json:"notes"`

	// CreatedAt is the moment the identity was first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment profile fields were last refreshed.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "identities"
}
