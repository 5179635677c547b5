// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when a request body cannot be decoded
	// as the expected JSON document.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrNoSession is returned when a route that requires a session is called
	// without one.
	ErrNoSession = errors.New("authentication required")
)
