package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. Every
// mutation is a single statement keyed by the owner's external id.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) PushNote(ctx context.Context, externalID string, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.pushNoteQuery(externalID, note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.PushNote").Msg("error building query")
		return wrap(ErrBuildingSQLQuery, err)
	}

	// not retried: the insert may have committed before a connection error
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.PushNote").Msg("error inserting note")
		return wrap(ErrExecutingStatement, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return wrap(ErrExecutingStatement, err)
	}
	if inserted == 0 {
		return ErrIdentityNotFound
	}

	return nil
}

// PullNotes returns 0 without error when the identity exists but owns no
// matching note, and ErrIdentityNotFound when the identity does not exist.
func (r *noteRepository) PullNotes(ctx context.Context, externalID string, noteID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.pullNotesQuery(externalID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.PullNotes").Msg("error building query")
		return 0, wrap(ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		result, err = r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.PullNotes").Msg("error deleting notes")
		return 0, wrap(ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, wrap(ErrExecutingStatement, err)
	}
	if removed > 0 {
		return removed, nil
	}

	return 0, r.ensureIdentity(ctx, externalID)
}

func (r *noteRepository) ensureIdentity(ctx context.Context, externalID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.identityExistsQuery(externalID)
	if err != nil {
		return wrap(ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ensureIdentity").Msg("error looking up identity")
		return wrap(ErrExecutingQuery, err)
	}

	return nil
}
