// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultPortalBaseURL is the JIIT student portal API root.
	DefaultPortalBaseURL = "https://webportal.jiit.ac.in:6011/StudentPortalAPI"

	// DefaultRequestTimeout bounds one portal round trip.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultFakePortalAddress is where cmd/fakeportal listens.
	DefaultFakePortalAddress = "127.0.0.1:8090"

	// DefaultEnvFile is the dotenv file read when present.
	DefaultEnvFile = ".env"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Portal describes the remote portal API.
	Portal Portal `envPrefix:"PORTAL_"`

	// Credentials are optional login defaults for the CLI and TUI.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Log controls where and how much jportal logs.
	Log Log `envPrefix:"LOG_"`

	// FakePortal configures the local portal emulator.
	FakePortal FakePortal `envPrefix:"FAKE_PORTAL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Portal holds settings of the outbound portal connection.
type Portal struct {
	// BaseURL is the API root every endpoint path is appended to.
	// Env: PORTAL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of a single portal request.
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate verification.
	// Env: PORTAL_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`
}

// Credentials pre-fill the login prompt.
type Credentials struct {
	// Env: CREDENTIALS_USERNAME
	Username string `env:"USERNAME"`

	// Env: CREDENTIALS_PASSWORD
	Password string `env:"PASSWORD"`
}

// Log holds logging settings.
type Log struct {
	// File is the log file used by the terminal UI. Empty selects the
	// default file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// FakePortal configures cmd/fakeportal.
type FakePortal struct {
	// Address is the listen address in host:port form.
	// Env: FAKE_PORTAL_ADDRESS
	Address string `env:"ADDRESS"`

	// Username and Password are the single account the emulator accepts.
	// Env: FAKE_PORTAL_USERNAME, FAKE_PORTAL_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// TokenSignKey signs the bearer tokens the emulator issues.
	// Env: FAKE_PORTAL_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the lifetime of an issued token.
	// Env: FAKE_PORTAL_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Defaults returns the built-in configuration every other source is merged
// over.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Portal: Portal{
			BaseURL:        DefaultPortalBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level: "info",
		},
		FakePortal: FakePortal{
			Address:       DefaultFakePortalAddress,
			TokenDuration: 2 * time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources (see the package documentation for the order). flags may
// be nil when the caller has no command line.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	envFile := DefaultEnvFile
	if flags != nil && flags.EnvFile != "" {
		envFile = flags.EnvFile
	}

	return newConfigBuilder().
		withDefaults().
		withDotEnv(envFile).
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
