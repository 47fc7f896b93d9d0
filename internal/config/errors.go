package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid outbound transport
	// settings (for example, missing store address or zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates an unusable session slot path.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidEmulatorConfigs indicates invalid emulator settings.
	ErrInvalidEmulatorConfigs = errors.New("invalid emulator configuration")
)
