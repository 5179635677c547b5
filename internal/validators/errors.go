package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID   = errors.New("invalid noteId")
	ErrNoteIDTooLong   = errors.New("noteId is too long")
	ErrNullCharacter   = errors.New("text must not contain NUL characters")
	ErrInvalidEncoding = errors.New("text must be valid UTF-8")
)
