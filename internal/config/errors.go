package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or a key that is not base64).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMFAConfigs indicates invalid second-factor settings
	// (for example, redis store without an address).
	ErrInvalidMFAConfigs = errors.New("invalid mfa configuration")
	// ErrInvalidAdapterConfigs indicates invalid CLI client settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
