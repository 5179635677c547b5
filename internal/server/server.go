package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const shutdownTimeout = 15 * time.Second

type namedTransport struct {
	name string
	transport
}

type server struct {
	transports []namedTransport
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.add("http", newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.add("grpc", newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) add(name string, t transport) {
	s.transports = append(s.transports, namedTransport{name: name, transport: t})
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or one of the
// transports fails.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name).Msg("shutting down")
		t.Shutdown(ctx)
	}
}

func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	serveErrors := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name).Msg("launching")
		go func() { serveErrors <- t.RunServer() }()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErrors:
		// a nil here still means a transport stopped on its own
		s.logger.Err(err).Msg("server stopped serving")
	}

	s.Shutdown()
	s.logger.Info().Msg("servers stopped")

	return err
}
