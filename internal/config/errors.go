package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidOAuthConfigs indicates an incomplete identity provider
	// registration (client id, client secret, or callback URL missing).
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing session secret or frontend origin).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates that no listener address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
