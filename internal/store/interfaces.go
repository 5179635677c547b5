package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// IdentityRepository persists one record per end user.
type IdentityRepository interface {
	// FindOrCreate atomically returns the identity whose external id equals
	// profile.ExternalID, creating it when absent. Profile fields of an
	// existing identity are refreshed.
	FindOrCreate(ctx context.Context, profile models.Profile) (models.Identity, error)
	// FindByID returns the identity with its notes in insertion order.
	FindByID(ctx context.Context, id int64) (models.Identity, error)
}

// NoteRepository applies mutations to the note collection owned by an
// identity, addressed by the identity's external id.
type NoteRepository interface {
	// PushNote appends note to the collection.
	PushNote(ctx context.Context, externalID string, note models.Note) error
	// PullNotes removes every note whose NoteID equals noteID and returns how
	// many were removed.
	PullNotes(ctx context.Context, externalID string, noteID string) (int64, error)
}

// SessionRepository persists server-side session records.
type SessionRepository interface {
	Create(ctx context.Context, session models.SessionRecord) error
	// Find returns the record stored under tokenHash if it expires after now.
	Find(ctx context.Context, tokenHash string, now time.Time) (models.SessionRecord, error)
	// Delete removes the record and reports whether one existed.
	Delete(ctx context.Context, tokenHash string) (bool, error)
	// DeleteExpired purges every record that expired at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may succeed
// if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
