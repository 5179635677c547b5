package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by [NoteValidator.Validate].
const (
	FieldNoteID  = "note_id"
	FieldTitle   = "title"
	FieldContent = "content"
)

// MaxNoteIDLength bounds caller supplied note ids. It is the only length
// rule: title and content have no size or format limits and are refused
// only when PostgreSQL text cannot hold them (NUL, invalid UTF-8).
const MaxNoteIDLength = 256

// NoteValidator validates note mutations. Text fields are stored verbatim, so
// only what the storage cannot hold is rejected: NUL characters and invalid
// UTF-8.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.NoteMutation and *models.NoteMutation. Without
// fields, every field is validated.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteMutation:
		return v.validateMutation(ctx, value, fields...)
	case *models.NoteMutation:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMutation(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateMutation(_ context.Context, mutation models.NoteMutation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if mutation.NoteID == "" {
				return ErrInvalidNoteID
			}
			if len(mutation.NoteID) > MaxNoteIDLength {
				return ErrNoteIDTooLong
			}
			if err := validateText(mutation.NoteID); err != nil {
				return fmt.Errorf("noteId: %w", err)
			}
		case FieldTitle:
			if err := validateText(mutation.Title); err != nil {
				return fmt.Errorf("title: %w", err)
			}
		case FieldContent:
			if err := validateText(mutation.Content); err != nil {
				return fmt.Errorf("content: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateText(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidEncoding
	}
	if strings.IndexByte(s, 0) >= 0 {
		return ErrNullCharacter
	}
	return nil
}
