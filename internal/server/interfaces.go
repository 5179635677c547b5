package server

import "context"

// Server is the process-level entry point returned by [NewServer].
type Server interface {
	// RunServer blocks until a shutdown signal or a listener failure and
	// returns the failure, if any.
	RunServer() error

	// Shutdown drains every started transport.
	Shutdown()
}

// transport is one listener run by [Server]: the HTTP API or the gRPC
// health endpoint.
type transport interface {
	RunServer() error
	Shutdown(ctx context.Context)
}
