// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// legacyEnv lists the unprefixed variables deployments of the notes backend
// traditionally set. They only fill values the prefixed variables left empty.
type legacyEnv struct {
	SessionSecret string `env:"SESSION_SECRET"`
	DatabaseURL   string `env:"DATABASE_URL"`
	ClientID      string `env:"CLIENT_ID"`
	ClientSecret  string `env:"CLIENT_SECRET"`
	Port          int    `env:"PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, then [legacyEnv] fills
// the gaps.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	legacy.applyTo(cfg)

	return nil
}

func (l legacyEnv) applyTo(cfg *StructuredConfig) {
	if cfg.App.SessionSecret == "" {
		cfg.App.SessionSecret = l.SessionSecret
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = l.DatabaseURL
	}
	if cfg.OAuth.ClientID == "" {
		cfg.OAuth.ClientID = l.ClientID
	}
	if cfg.OAuth.ClientSecret == "" {
		cfg.OAuth.ClientSecret = l.ClientSecret
	}
	if cfg.Server.HTTPAddress == "" && l.Port != 0 {
		cfg.Server.HTTPAddress = ":" + strconv.Itoa(l.Port)
	}
}
