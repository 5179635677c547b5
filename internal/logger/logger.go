// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes server. Loggers travel inside
// request contexts; handlers and services fetch them with [FromContext] or
// [FromRequest] so each entry carries the trace id and, once a session is
// resolved, the caller's external id.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger and is passed around by pointer.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the process logger for the given role label
// ("go-notes-server"). Entries are JSON on os.Stdout with a "role" field, a
// timestamp, and a "func" field naming the calling function. Every level is
// emitted until [SetLevel] is called.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel sets the global minimum level from its name ("debug", "info",
// "warn", ...). An empty name keeps the current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)

	return nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver with its fields. Fields added to the
// copy do not leak back into the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context by the trace id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger stored in ctx. Without one it falls back to
// zerolog's default context logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithIdentity returns a copy of ctx whose logger carries the external
// identity id of the authenticated caller, so every subsequent entry of the
// request can be attributed to a user.
func WithIdentity(ctx context.Context, externalID string) context.Context {
	l := FromContext(ctx).With().Str("external_id", externalID).Logger()
	return l.WithContext(ctx)
}
