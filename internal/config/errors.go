package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidPortalConfigs indicates invalid portal settings
	// (for example, an empty base URL or a negative timeout).
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidFakePortalConfigs indicates invalid emulator settings.
	ErrInvalidFakePortalConfigs = errors.New("invalid fake portal configuration")
)
