// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMutation() models.NoteMutation {
	return models.NoteMutation{
		ExternalID: "google-1",
		NoteID:     "n-1",
		Title:      "Список покупок",
		Content:    "молоко, хлеб",
	}
}

func TestNewNoteValidator(t *testing.T) {
	v := NewNoteValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()
	m := validMutation()

	assert.NoError(t, v.Validate(ctx, m))
	assert.NoError(t, v.Validate(ctx, &m))
	assert.ErrorIs(t, v.Validate(ctx, (*models.NoteMutation)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{NoteID: "n-1"}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "n-1"), ErrUnsupportedType)
}

func TestValidate_NoteMutation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *models.NoteMutation)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.NoteMutation) {}},
		{name: "empty title and content are fine", mutate: func(m *models.NoteMutation) { m.Title, m.Content = "", "" }},
		{name: "large multiline content", mutate: func(m *models.NoteMutation) { m.Title = strings.Repeat("т", 4096); m.Content = strings.Repeat("line\n", 100000) }},
		{name: "empty note id", mutate: func(m *models.NoteMutation) { m.NoteID = "" }, wantErr: ErrInvalidNoteID},
		{name: "note id at limit", mutate: func(m *models.NoteMutation) { m.NoteID = strings.Repeat("x", MaxNoteIDLength) }},
		{name: "note id over limit", mutate: func(m *models.NoteMutation) { m.NoteID = strings.Repeat("x", MaxNoteIDLength+1) }, wantErr: ErrNoteIDTooLong},
		{name: "NUL in note id", mutate: func(m *models.NoteMutation) { m.NoteID = "n\x001" }, wantErr: ErrNullCharacter},
		{name: "NUL in title", mutate: func(m *models.NoteMutation) { m.Title = "a\x00b" }, wantErr: ErrNullCharacter},
		{name: "invalid utf8 in content", mutate: func(m *models.NoteMutation) { m.Content = "\xff\xfe" }, wantErr: ErrInvalidEncoding},
		{name: "unknown field", mutate: func(*models.NoteMutation) {}, fields: []string{"owner"}, wantErr: ErrUnknownField},
		// при удалении проверяется только noteId
		{name: "scoped to note id", mutate: func(m *models.NoteMutation) { m.Content = "a\x00b" }, fields: []string{FieldNoteID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMutation()
			tt.mutate(&m)

			err := NewNoteValidator().Validate(context.Background(), m, tt.fields...)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
