package config

import "errors"

// Sentinel errors for config loading. Load wraps every failure in one of
// these so callers can errors.Is without parsing messages.
var (
	// ErrLoadConfig marks a failure reading or parsing a config source
	// (file, env) before validation runs.
	ErrLoadConfig = errors.New("load config failed")

	// ErrInvalidConfig marks a config that parsed but failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)
