package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	FederationService FederationService
	SessionService    SessionService
	NoteService       NoteService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, provider adapter.IdentityProvider, cfg config.App, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	sessionService := NewSessionService(storages.IdentityRepository, storages.SessionRepository, cfg, m, logger)

	return &Services{
		FederationService: NewFederationService(provider, storages.IdentityRepository, sessionService, m, logger),
		SessionService:    sessionService,
		NoteService:       NewNoteService(storages.NoteRepository, m, logger),
		AppInfoService:    appInfoService,
	}, nil
}
