package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// identityRepository is the SQL implementation of [IdentityRepository].
type identityRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewIdentityRepository constructs an [IdentityRepository] backed by db.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// FindOrCreate runs a single upsert statement, so concurrent first logins of
// the same external id converge on one row.
func (r *identityRepository) FindOrCreate(ctx context.Context, profile models.Profile) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.upsertIdentityQuery(profile, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindOrCreate").Msg("error building query")
		return models.Identity{}, wrap(ErrBuildingSQLQuery, err)
	}

	var identity models.Identity
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&identity.ID,
			&identity.ExternalID,
			&identity.DisplayName,
			&identity.Email,
			&identity.AvatarURL,
			scanTime(&identity.CreatedAt),
			scanTime(&identity.UpdatedAt),
		)
	})
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindOrCreate").Msg("error upserting identity")
		return models.Identity{}, wrap(ErrExecutingQuery, err)
	}

	return identity, nil
}

// FindByID loads the identity and its notes ordered by insertion.
func (r *identityRepository) FindByID(ctx context.Context, id int64) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findIdentityByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindByID").Msg("error building query")
		return models.Identity{}, wrap(ErrBuildingSQLQuery, err)
	}

	var identity models.Identity
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&identity.ID,
		&identity.ExternalID,
		&identity.DisplayName,
		&identity.Email,
		&identity.AvatarURL,
		scanTime(&identity.CreatedAt),
		scanTime(&identity.UpdatedAt),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindByID").Msg("error scanning identity")
		return models.Identity{}, wrap(ErrScanningRow, err)
	}

	notes, err := r.findNotes(ctx, identity.ID)
	if err != nil {
		return models.Identity{}, err
	}
	identity.Notes = notes

	return identity, nil
}

func (r *identityRepository) findNotes(ctx context.Context, identityID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findNotesByIdentityQuery(identityID)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.findNotes").Msg("error building query")
		return nil, wrap(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.findNotes").Msg("error querying notes")
		return nil, wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.NoteID, &note.Title, &note.Content); err != nil {
			log.Err(err).Str("func", "*identityRepository.findNotes").Msg("error scanning note")
			return nil, wrap(ErrScanningRow, err)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*identityRepository.findNotes").Msg("error iterating notes")
		return nil, wrap(ErrScanningRows, err)
	}

	return notes, nil
}
