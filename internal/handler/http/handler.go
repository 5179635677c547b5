package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/metrics"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = config.DefaultSessionCookie
	}
	if cfg.FailureRedirect == "" {
		cfg.FailureRedirect = config.DefaultFailureRedirect
	}

	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}

// WithRequestTimeout bounds the handling time of every request.
func (h *Handler) WithRequestTimeout(timeout time.Duration) *Handler {
	h.requestTimeout = timeout
	return h
}
