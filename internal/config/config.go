// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// trippr-admin tools. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the hosted project's
	// API key and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds endpoint addresses and timeouts for the hosted
	// document store and auth service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds the local session slot settings.
	Session Session `envPrefix:"SESSION_"`

	// Emulator holds settings for the local development emulator.
	Emulator Emulator `envPrefix:"EMULATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey is the hosted project's API key, sent with every store and
	// auth request.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// StoreAddress is the base URL of the hosted document-store API
	// (e.g. "https://store.example.com" or a local emulator address).
	// Env: ADAPTER_STORE_ADDRESS
	StoreAddress string `env:"STORE_ADDRESS"`

	// AuthAddress is the base URL of the hosted auth service. Defaults to
	// StoreAddress, which is what the emulator serves.
	// Env: ADAPTER_AUTH_ADDRESS
	AuthAddress string `env:"AUTH_ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s"). There is no other caller-side abort path.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the settings of the durable admin-session slot.
type Session struct {
	// FilePath is the JSON file holding at most one serialized admin
	// session. Defaults to trippr-admin/session.json under the user
	// config directory.
	// Env: SESSION_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Emulator holds settings for the development emulator binary.
type Emulator struct {
	// Address is the TCP address the emulator listens on, "host:port".
	// Env: EMULATOR_ADDRESS
	Address string `env:"ADDRESS"`

	// DBPath is the SQLite file backing the emulator's collections.
	// ":memory:" keeps everything in RAM.
	// Env: EMULATOR_DB_PATH
	DBPath string `env:"DB_PATH"`
}
