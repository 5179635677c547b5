package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages bundles every repository sharing one database connection.
type Storages struct {
	IdentityRepository IdentityRepository
	NoteRepository     NoteRepository
	SessionRepository  SessionRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DSN, applies schema
// migrations and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		IdentityRepository: NewIdentityRepository(db, log),
		NoteRepository:     NewNoteRepository(db, log),
		SessionRepository:  NewSessionRepository(db, log),
		db:                 db,
	}
}

// Ping checks that the database still answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
