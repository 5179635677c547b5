package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// federationService is the concrete implementation of FederationService.
// It never keeps per-login state: the anti-CSRF state value travels to the
// browser and comes back on the callback together with the expected value.
type federationService struct {
	provider           adapter.IdentityProvider
	identityRepository store.IdentityRepository
	sessionService     SessionService
	states             idGenerator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewFederationService(provider adapter.IdentityProvider, identityRepository store.IdentityRepository, sessionService SessionService, m *metrics.Metrics, logger *logger.Logger) FederationService {
	return &federationService{
		provider:           provider,
		identityRepository: identityRepository,
		sessionService:     sessionService,
		states:             utils.NewUUIDGenerator(),
		metrics:            m,
		logger:             logger,
	}
}

func (f *federationService) BeginAuthorization(ctx context.Context) (models.Authorization, error) {
	state := f.states.Generate()
	if state == "" {
		return models.Authorization{}, fmt.Errorf("%w: empty state generated", ErrFederation)
	}

	return models.Authorization{
		URL:   f.provider.AuthorizeURL(state),
		State: state,
	}, nil
}

// CompleteAuthorization handles the provider callback.
//
// Returns the established session or:
//   - ErrFederation if the provider reported an error, the code is missing,
//     the state does not match, the exchange fails or the profile lacks
//     required fields.
//   - A wrapped storage error if the identity cannot be found or created.
//   - ErrSessionNotCreated if the session cannot be persisted.
func (f *federationService) CompleteAuthorization(ctx context.Context, params models.CallbackParams) (models.Session, error) {
	session, err := f.completeAuthorization(ctx, params)
	if err != nil {
		f.metrics.ObserveLogin(metrics.LoginFailed)
		return models.Session{}, err
	}

	f.metrics.ObserveLogin(metrics.LoginSucceeded)
	return session, nil
}

func (f *federationService) completeAuthorization(ctx context.Context, params models.CallbackParams) (models.Session, error) {
	log := logger.FromContext(ctx)

	if params.Error != "" {
		log.Warn().Str("provider_error", params.Error).Msg("provider reported an error")
		return models.Session{}, fmt.Errorf("%w: provider error: %s", ErrFederation, params.Error)
	}
	if params.Code == "" {
		log.Warn().Msg("callback without authorization code")
		return models.Session{}, fmt.Errorf("%w: missing authorization code", ErrFederation)
	}
	if params.State == "" || subtle.ConstantTimeCompare([]byte(params.State), []byte(params.ExpectedState)) != 1 {
		log.Warn().Msg("callback state mismatch")
		return models.Session{}, fmt.Errorf("%w: state mismatch", ErrFederation)
	}

	profile, err := f.provider.ExchangeCallback(ctx, params.Code)
	if err != nil {
		log.Err(err).Msg("provider exchange failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrFederation, err)
	}
	if !profile.IsComplete() {
		log.Warn().Str("external_id", profile.ExternalID).Msg("incomplete profile returned by provider")
		return models.Session{}, fmt.Errorf("%w: incomplete profile", ErrFederation)
	}

	identity, err := f.identityRepository.FindOrCreate(ctx, profile)
	if err != nil {
		log.Err(err).Str("external_id", profile.ExternalID).Msg("identity lookup failed")
		return models.Session{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	session, err := f.sessionService.Establish(ctx, identity)
	if err != nil {
		return models.Session{}, err
	}

	log.Info().Int64("identity_id", identity.ID).Str("external_id", identity.ExternalID).Msg("identity signed in")
	return session, nil
}
