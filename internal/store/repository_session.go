package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session models.SessionRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Create").Msg("error building query")
		return wrap(ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Create").Msg("error inserting session")
		return wrap(ErrExecutingStatement, err)
	}

	return nil
}

// Find compares the expiry in Go so both dialects apply the same rule
// regardless of how they store timestamps.
func (r *sessionRepository) Find(ctx context.Context, tokenHash string, now time.Time) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findSessionQuery(tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Find").Msg("error building query")
		return models.SessionRecord{}, wrap(ErrBuildingSQLQuery, err)
	}

	var record models.SessionRecord
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.TokenHash,
		&record.IdentityID,
		scanTime(&record.IssuedAt),
		scanTime(&record.ExpiresAt),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionRecord{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Find").Msg("error scanning session")
		return models.SessionRecord{}, wrap(ErrScanningRow, err)
	}

	if record.IsExpired(now) {
		return models.SessionRecord{}, ErrSessionNotFound
	}

	return record, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenHash string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteSessionQuery(tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("error building query")
		return false, wrap(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("error deleting session")
		return false, wrap(ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, wrap(ErrExecutingStatement, err)
	}

	return deleted > 0, nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteExpiredSessionsQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("error building query")
		return 0, wrap(ErrBuildingSQLQuery, err)
	}

	var purged int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		purged, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("error purging sessions")
		return 0, wrap(ErrExecutingStatement, err)
	}

	return purged, nil
}
