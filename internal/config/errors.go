package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token keys or out-of-range
	// token and hashing parameters.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a driver
	// without DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates an unusable placeholder API URL.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidMailConfigs    = errors.New("invalid mail configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
