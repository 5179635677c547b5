// Package http implements the HTTP transport layer of the notes server.
// It provides middleware, route handlers, and request/response utilities
// for the browser-facing API. Tracing, logging, CORS, compression and
// session resolution are all handled at this layer before requests are
// forwarded to the service layer.
package http
