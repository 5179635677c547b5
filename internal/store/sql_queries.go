package store

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/Masterminds/squirrel"
)

const (
	identitiesTable = "identities"
	notesTable      = "notes"
	sessionsTable   = "sessions"
)

var identityColumns = []string{"id", "external_id", "display_name", "email", "avatar_url", "created_at", "updated_at"}

// upsertIdentityQuery inserts the identity or refreshes the profile fields of
// the row already holding the external id. Either way the row is returned.
func (db *DB) upsertIdentityQuery(profile models.Profile, now time.Time) (string, []any, error) {
	return db.builder().
		Insert(identitiesTable).
		Columns("external_id", "display_name", "email", "avatar_url", "created_at", "updated_at").
		Values(profile.ExternalID, profile.DisplayName, profile.Email, profile.AvatarURL, now, now).
		Suffix(`ON CONFLICT (external_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at
		RETURNING id, external_id, display_name, email, avatar_url, created_at, updated_at`).
		ToSql()
}

func (db *DB) findIdentityByIDQuery(id int64) (string, []any, error) {
	return db.builder().
		Select(identityColumns...).
		From(identitiesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func (db *DB) findNotesByIdentityQuery(identityID int64) (string, []any, error) {
	return db.builder().
		Select("note_id", "title", "content").
		From(notesTable).
		Where(squirrel.Eq{"identity_id": identityID}).
		OrderBy("seq").
		ToSql()
}

// pushNoteQuery appends a note to the identity addressed by externalID.
// Nothing is inserted when no such identity exists.
func (db *DB) pushNoteQuery(externalID string, note models.Note) (string, []any, error) {
	owner := squirrel.Select("id").
		Column(squirrel.Expr("CAST(? AS TEXT)", note.NoteID)).
		Column(squirrel.Expr("CAST(? AS TEXT)", note.Title)).
		Column(squirrel.Expr("CAST(? AS TEXT)", note.Content)).
		From(identitiesTable).
		Where(squirrel.Eq{"external_id": externalID})

	return db.builder().
		Insert(notesTable).
		Columns("identity_id", "note_id", "title", "content").
		Select(owner).
		ToSql()
}

// pullNotesQuery removes every note with noteID owned by externalID.
func (db *DB) pullNotesQuery(externalID, noteID string) (string, []any, error) {
	return db.builder().
		Delete(notesTable).
		Where(squirrel.Eq{"note_id": noteID}).
		Where("identity_id IN (SELECT id FROM identities WHERE external_id = ?)", externalID).
		ToSql()
}

func (db *DB) identityExistsQuery(externalID string) (string, []any, error) {
	return db.builder().
		Select("1").
		From(identitiesTable).
		Where(squirrel.Eq{"external_id": externalID}).
		ToSql()
}

func (db *DB) createSessionQuery(session models.SessionRecord) (string, []any, error) {
	return db.builder().
		Insert(sessionsTable).
		Columns("token_hash", "identity_id", "issued_at", "expires_at").
		Values(session.TokenHash, session.IdentityID, session.IssuedAt.UTC(), session.ExpiresAt.UTC()).
		ToSql()
}

func (db *DB) findSessionQuery(tokenHash string) (string, []any, error) {
	return db.builder().
		Select("token_hash", "identity_id", "issued_at", "expires_at").
		From(sessionsTable).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
}

func (db *DB) deleteSessionQuery(tokenHash string) (string, []any, error) {
	return db.builder().
		Delete(sessionsTable).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
}

// deleteExpiredSessionsQuery compares against now truncated to whole seconds
// in UTC, the precision and zone sessions are stored with.
func (db *DB) deleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return db.builder().
		Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now.UTC().Truncate(time.Second)}).
		ToSql()
}
