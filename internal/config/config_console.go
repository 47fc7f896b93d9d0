package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ConsoleApp holds application settings used by the admin console.
type ConsoleApp struct {
	// APIKey is sent with every store and auth request.
	APIKey string
	// Version is the application version string.
	Version string
}

// ConsoleAdapter holds network settings used by the console transport layer.
type ConsoleAdapter struct {
	// StoreAddress is the document-store base URL.
	StoreAddress string
	// AuthAddress is the auth-service base URL.
	AuthAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ConsoleSession holds the session slot settings.
type ConsoleSession struct {
	// FilePath is the JSON file holding the persisted admin session.
	FilePath string
}

// ConsoleConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ConsoleConfig struct {
	App     ConsoleApp
	Adapter ConsoleAdapter
	Session ConsoleSession
}

// EmulatorConfig is the configuration view used by cmd/emulator.
type EmulatorConfig struct {
	Address string
	DBPath  string
}

// GetConsoleConfig builds and validates the console-specific config view from
// the merged structured configuration, applying defaults for anything left
// unset.
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		App: ConsoleApp{
			APIKey:  cfg.App.APIKey,
			Version: cfg.App.Version,
		},
		Adapter: ConsoleAdapter{
			StoreAddress:   cfg.Adapter.StoreAddress,
			AuthAddress:    cfg.Adapter.AuthAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ConsoleSession{
			FilePath: cfg.Session.FilePath,
		},
	}
	consoleCfg.applyDefaults()

	return consoleCfg, consoleCfg.validate()
}

// GetEmulatorConfig builds and validates the emulator config view.
func GetEmulatorConfig() (*EmulatorConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	emulatorCfg := &EmulatorConfig{
		Address: cfg.Emulator.Address,
		DBPath:  cfg.Emulator.DBPath,
	}
	if emulatorCfg.Address == "" {
		emulatorCfg.Address = "localhost:8089"
	}
	if emulatorCfg.DBPath == "" {
		emulatorCfg.DBPath = "trippr-emulator.db"
	}

	return emulatorCfg, emulatorCfg.validate()
}

func (cfg *ConsoleConfig) applyDefaults() {
	if cfg.Adapter.StoreAddress == "" {
		cfg.Adapter.StoreAddress = "http://localhost:8089"
	}
	if cfg.Adapter.AuthAddress == "" {
		cfg.Adapter.AuthAddress = cfg.Adapter.StoreAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Session.FilePath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		cfg.Session.FilePath = filepath.Join(configDir, "trippr-admin", "session.json")
	}
}
