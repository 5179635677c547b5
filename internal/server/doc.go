// Package server runs the HTTP notes API and the gRPC health endpoint side by
// side.
//
// [Server.RunServer] blocks until SIGINT or SIGTERM arrives or one of the
// listeners fails, then drains both transports within a fixed timeout. The
// health endpoint stops probing storage and reports NOT_SERVING before the
// gRPC listener closes. Background workers such as the session sweeper are
// owned by the caller and must be stopped after RunServer returns.
package server
