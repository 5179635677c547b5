package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	notes := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(notes, nil, logger.Nop()), notes
}

func TestNoteService_CreateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, notes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mutation := models.NoteMutation{NoteID: "n1", Title: "t", Content: "c"}
	notes.EXPECT().PushNote(ctx, testIdentity.ExternalID, models.Note{NoteID: "n1", Title: "t", Content: "c"}).Return(nil)

	require.NoError(t, svc.CreateNote(ctx, testIdentity, mutation))
}

func TestNoteService_CreateNote_MatchingPayloadIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, notes := newTestNoteSvc(t, ctrl)
	notes.EXPECT().PushNote(gomock.Any(), testIdentity.ExternalID, gomock.Any()).Return(nil)

	mutation := models.NoteMutation{ExternalID: testIdentity.ExternalID, NoteID: "n1"}
	require.NoError(t, svc.CreateNote(context.Background(), testIdentity, mutation))
}

func TestNoteService_RejectsMutations(t *testing.T) {
	tests := []struct {
		name     string
		identity models.Identity
		mutation models.NoteMutation
		wantErr  error
	}{
		{"foreign payload identity", testIdentity, models.NoteMutation{ExternalID: "someone-else", NoteID: "n1"}, ErrForbiddenIdentity},
		{"empty note id", testIdentity, models.NoteMutation{Title: "t"}, ErrInvalidDataProvided},
		{"anonymous identity", models.Identity{}, models.NoteMutation{NoteID: "n1"}, ErrUnauthenticated},
		{"NUL in note id", testIdentity, models.NoteMutation{NoteID: "n\x001"}, validators.ErrNullCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// репозиторий не должен вызываться
			svc, _ := newTestNoteSvc(t, ctrl)

			assert.ErrorIs(t, svc.CreateNote(context.Background(), tt.identity, tt.mutation), tt.wantErr)
			assert.ErrorIs(t, svc.DeleteNote(context.Background(), tt.identity, tt.mutation), tt.wantErr)
		})
	}
}

func TestNoteService_CreateNote_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, notes := newTestNoteSvc(t, ctrl)
	notes.EXPECT().PushNote(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrIdentityNotFound)

	err := svc.CreateNote(context.Background(), testIdentity, models.NoteMutation{NoteID: "n1"})
	assert.ErrorIs(t, err, ErrNoteMutationFailed)
	assert.ErrorIs(t, err, store.ErrIdentityNotFound)
}

func TestNoteService_DeleteNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, notes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		notes.EXPECT().PullNotes(ctx, testIdentity.ExternalID, "n1").Return(int64(2), nil),
		notes.EXPECT().PullNotes(ctx, testIdentity.ExternalID, "n1").Return(int64(0), nil),
	)

	require.NoError(t, svc.DeleteNote(ctx, testIdentity, models.NoteMutation{NoteID: "n1"}))
	// повторное удаление не является ошибкой
	require.NoError(t, svc.DeleteNote(ctx, testIdentity, models.NoteMutation{NoteID: "n1"}))
}

func TestNoteService_DeleteNote_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, notes := newTestNoteSvc(t, ctrl)
	notes.EXPECT().PullNotes(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingStatement)

	err := svc.DeleteNote(context.Background(), testIdentity, models.NoteMutation{NoteID: "n1"})
	assert.ErrorIs(t, err, ErrNoteMutationFailed)
}
