package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService applies note mutations to the identity resolved from the
// session. A payload may name the identity it targets; if it names any other
// identity the mutation is refused.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, m *metrics.Metrics, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewNoteValidator(),
		metrics:        m,
		logger:         logger,
	}
}

// CreateNote appends the note. Duplicate note ids are accepted.
func (n *noteService) CreateNote(ctx context.Context, identity models.Identity, mutation models.NoteMutation) error {
	log := logger.FromContext(ctx)

	if err := n.validateMutation(ctx, identity, mutation, validators.FieldNoteID, validators.FieldTitle, validators.FieldContent); err != nil {
		log.Warn().Err(err).Str("note_id", mutation.NoteID).Msg("note creation rejected")
		return err
	}

	if err := n.noteRepository.PushNote(ctx, identity.ExternalID, mutation.Note()); err != nil {
		log.Err(err).Str("note_id", mutation.NoteID).Msg("error appending note")
		return fmt.Errorf("%w: %w", ErrNoteMutationFailed, err)
	}

	n.metrics.ObserveNoteMutation(metrics.NoteCreated)
	return nil
}

// DeleteNote removes every note of the identity with the mutation's note id.
// Removing nothing is not an error.
func (n *noteService) DeleteNote(ctx context.Context, identity models.Identity, mutation models.NoteMutation) error {
	log := logger.FromContext(ctx)

	if err := n.validateMutation(ctx, identity, mutation, validators.FieldNoteID); err != nil {
		log.Warn().Err(err).Str("note_id", mutation.NoteID).Msg("note deletion rejected")
		return err
	}

	removed, err := n.noteRepository.PullNotes(ctx, identity.ExternalID, mutation.NoteID)
	if err != nil {
		log.Err(err).Str("note_id", mutation.NoteID).Msg("error removing notes")
		return fmt.Errorf("%w: %w", ErrNoteMutationFailed, err)
	}

	log.Debug().Str("note_id", mutation.NoteID).Int64("removed", removed).Msg("notes removed")
	n.metrics.ObserveNoteMutation(metrics.NoteDeleted)
	return nil
}

func (n *noteService) validateMutation(ctx context.Context, identity models.Identity, mutation models.NoteMutation, fields ...string) error {
	if identity.ExternalID == "" {
		return ErrUnauthenticated
	}
	if err := n.validator.Validate(ctx, mutation, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if mutation.ExternalID != "" && mutation.ExternalID != identity.ExternalID {
		return ErrForbiddenIdentity
	}
	return nil
}
