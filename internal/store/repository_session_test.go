package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionColumns = []string{"token_hash", "identity_id", "issued_at", "expires_at"}

func TestSessionCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	record := models.SessionRecord{TokenHash: "h", IdentityID: 5, IssuedAt: issued, ExpiresAt: issued.Add(24 * time.Hour)}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("h", int64(5), issued, issued.Add(24*time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(testContext(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionFind(t *testing.T) {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expires := issued.Add(time.Hour)

	tests := []struct {
		name    string
		now     time.Time
		noRows  bool
		wantErr error
	}{
		{name: "active", now: issued.Add(time.Minute)},
		{name: "last second", now: expires.Add(-time.Second)},
		{name: "expired at the boundary", now: expires, wantErr: ErrSessionNotFound},
		{name: "expired", now: expires.Add(time.Second), wantErr: ErrSessionNotFound},
		{name: "absent", now: issued, noRows: true, wantErr: ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSessionRepository(db, logger.Nop())

			q := mock.ExpectQuery("SELECT token_hash, identity_id, issued_at, expires_at FROM sessions WHERE token_hash = \\$1").WithArgs("h")
			if tt.noRows {
				q.WillReturnError(sql.ErrNoRows)
			} else {
				q.WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow("h", 5, issued, expires))
			}

			record, err := repo.Find(testContext(), "h", tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), record.IdentityID)
			assert.Equal(t, expires, record.ExpiresAt)
		})
	}
}

func TestSessionDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM sessions WHERE token_hash = \\$1").
		WithArgs("h").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("h").
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err := repo.Delete(testContext(), "h")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(testContext(), "h")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSessionDeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	now := time.Date(2026, 5, 1, 12, 0, 0, 750_000_000, time.FixedZone("MSK", 3*60*60))

	mock.ExpectExec("DELETE FROM sessions WHERE expires_at <= \\$1").
		WithArgs(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.DeleteExpired(testContext(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}
