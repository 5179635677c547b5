package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testProfile = models.Profile{
		ExternalID:  "g-100",
		Email:       "ada@example.com",
		DisplayName: "Ada",
		AvatarURL:   "https://example.com/ada.png",
	}
	testIdentityColumns = []string{"id", "external_id", "display_name", "email", "avatar_url", "created_at", "updated_at"}
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestFindOrCreate_ReturnsUpsertedRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(testIdentityColumns).
		AddRow(7, testProfile.ExternalID, testProfile.DisplayName, testProfile.Email, testProfile.AvatarURL, now, now)

	mock.ExpectQuery(`INSERT INTO identities .* ON CONFLICT \(external_id\) DO UPDATE`).
		WithArgs(testProfile.ExternalID, testProfile.DisplayName, testProfile.Email, testProfile.AvatarURL, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	identity, err := repo.FindOrCreate(testContext(), testProfile)
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, testProfile.ExternalID, identity.ExternalID)
	assert.Equal(t, testProfile.DisplayName, identity.DisplayName)
	assert.Equal(t, now, identity.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreate_WrapsDriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO identities").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindOrCreate(testContext(), testProfile)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreate_RetriesTransientError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO identities").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO identities").
		WillReturnRows(sqlmock.NewRows(testIdentityColumns).
			AddRow(1, testProfile.ExternalID, testProfile.DisplayName, testProfile.Email, testProfile.AvatarURL, now, now))

	identity, err := repo.FindOrCreate(testContext(), testProfile)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM identities WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(testContext(), 42)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_LoadsNotesInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT .* FROM identities").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(testIdentityColumns).
			AddRow(3, "g-3", "Grace", "grace@example.com", "", now, now))
	mock.ExpectQuery("SELECT note_id, title, content FROM notes WHERE identity_id = \\$1 ORDER BY seq").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "title", "content"}).
			AddRow("n1", "first", "a").
			AddRow("n2", "second", "b"))

	identity, err := repo.FindByID(testContext(), 3)
	require.NoError(t, err)
	require.Len(t, identity.Notes, 2)
	assert.Equal(t, "n1", identity.Notes[0].NoteID)
	assert.Equal(t, "n2", identity.Notes[1].NoteID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotesQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT .* FROM identities").
		WillReturnRows(sqlmock.NewRows(testIdentityColumns).
			AddRow(3, "g-3", "Grace", "grace@example.com", "", now, now))
	mock.ExpectQuery("FROM notes").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(testContext(), 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindByID_EmptyNotesIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT .* FROM identities").
		WillReturnRows(sqlmock.NewRows(testIdentityColumns).
			AddRow(3, "g-3", "Grace", "grace@example.com", "", now, now))
	mock.ExpectQuery("FROM notes").
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "title", "content"}))

	identity, err := repo.FindByID(testContext(), 3)
	require.NoError(t, err)
	assert.NotNil(t, identity.Notes)
	assert.Empty(t, identity.Notes)
}
