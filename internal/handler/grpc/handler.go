package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DefaultProbeInterval is how often the store is pinged to refresh the
// reported serving status.
const DefaultProbeInterval = 10 * time.Second

// Pinger is the dependency whose availability decides the serving status.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The overall status is
// SERVING while the store answers pings and NOT_SERVING otherwise.
type Handler struct {
	health *health.Server
	store  Pinger

	interval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler] probing store every
// [DefaultProbeInterval]. The status starts as NOT_SERVING until the first
// probe succeeds.
func NewHandler(store Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:   health.NewServer(),
		store:    store,
		interval: DefaultProbeInterval,
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Watch probes the store until ctx is done.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		h.probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.probe").Msg("store is not reachable")
		h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}
