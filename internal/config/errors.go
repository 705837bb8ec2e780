package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, empty DSN or unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing session sign key or non-positive TTL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAssetConfigs indicates invalid asset storage settings
	// (for example, empty root directory or non-positive upload cap).
	ErrInvalidAssetConfigs = errors.New("invalid asset storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
