package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// sessionService is the concrete implementation of SessionService.
//
// A session token is a signed JWT carrying a random session id. Only a keyed
// digest of that id is persisted, together with the identity storage key and
// the absolute expiry. The full identity is loaded on every Resolve.
type sessionService struct {
	identityRepository store.IdentityRepository
	sessionRepository  store.SessionRepository

	hasher   *utils.Hasher
	ids      idGenerator
	signKey  string
	duration time.Duration
	now      func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewSessionService(identityRepository store.IdentityRepository, sessionRepository store.SessionRepository, cfg config.App, m *metrics.Metrics, logger *logger.Logger) SessionService {
	duration := cfg.SessionDuration
	if duration <= 0 {
		duration = config.DefaultSessionDuration
	}

	return &sessionService{
		identityRepository: identityRepository,
		sessionRepository:  sessionRepository,
		hasher:             utils.NewHasher(cfg.SessionSecret),
		ids:                utils.NewUUIDGenerator(),
		signKey:            cfg.SessionSecret,
		duration:           duration,
		now:                time.Now,
		metrics:            m,
		logger:             logger,
	}
}

// Establish persists a new session for identity with a fixed absolute
// expiry and returns it with its signed token.
func (s *sessionService) Establish(ctx context.Context, identity models.Identity) (models.Session, error) {
	log := logger.FromContext(ctx)

	if identity.ID == 0 {
		log.Error().Msg("cannot establish a session for an unsaved identity")
		return models.Session{}, ErrInvalidDataProvided
	}

	// JWT numeric dates carry whole seconds
	issuedAt := s.now().UTC().Truncate(time.Second)
	session := models.Session{
		ID:         s.ids.Generate(),
		IdentityID: identity.ID,
		IssuedAt:   issuedAt,
		ExpiresAt:  issuedAt.Add(s.duration),
	}

	token, err := utils.GenerateSessionToken(session, s.signKey)
	if err != nil {
		log.Err(err).Msg("error signing session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionNotCreated, err)
	}
	session.Token = token

	record := models.SessionRecord{
		TokenHash:  s.hasher.HashString(session.ID),
		IdentityID: session.IdentityID,
		IssuedAt:   session.IssuedAt,
		ExpiresAt:  session.ExpiresAt,
	}
	if err = s.sessionRepository.Create(ctx, record); err != nil {
		log.Err(err).Int64("identity_id", identity.ID).Msg("error persisting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionNotCreated, err)
	}

	s.metrics.ObserveSession("established")
	return session, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	now := s.now()
	session, err := utils.ParseSessionToken(token, s.signKey, now)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Identity{}, ErrUnauthenticated
	}

	record, err := s.sessionRepository.Find(ctx, s.hasher.HashString(session.ID), now)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		log.Err(err).Msg("error loading session")
		return models.Identity{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if record.IdentityID != session.IdentityID {
		log.Warn().Int64("token_identity_id", session.IdentityID).Int64("record_identity_id", record.IdentityID).Msg("session bound to another identity")
		return models.Identity{}, ErrUnauthenticated
	}

	identity, err := s.identityRepository.FindByID(ctx, record.IdentityID)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		log.Err(err).Int64("identity_id", record.IdentityID).Msg("error loading identity")
		return models.Identity{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return identity, nil
}

func (s *sessionService) Terminate(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return false, nil
	}

	session, err := utils.ParseSessionToken(token, s.signKey, s.now())
	if err != nil {
		log.Debug().Err(err).Msg("ignoring invalid session token on logout")
		return false, nil
	}

	existed, err := s.sessionRepository.Delete(ctx, s.hasher.HashString(session.ID))
	if err != nil {
		log.Err(err).Msg("error deleting session")
		return false, fmt.Errorf("session termination failed: %w", err)
	}

	if existed {
		s.metrics.ObserveSession("terminated")
	}
	return existed, nil
}
