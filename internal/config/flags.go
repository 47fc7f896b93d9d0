package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-store-address document-store base URL
//	-auth-address auth-service base URL
//	-api-key hosted project API key
//	-request-timeout outbound request timeout (e.g., "15s")
//	-session-file path of the admin session slot
//	-a emulator listen address in format [host]:[port]
//	-d emulator SQLite database path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var storeAddress string
	var authAddress string
	var apiKey string
	var requestTimeout time.Duration
	var sessionFile string
	var emulatorAddress string
	var emulatorDBPath string
	var jsonConfigPath string

	flag.StringVar(&storeAddress, "store-address", "", "Document-store base URL")
	flag.StringVar(&authAddress, "auth-address", "", "Auth-service base URL")
	flag.StringVar(&apiKey, "api-key", "", "Hosted project API key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&sessionFile, "session-file", "", "Admin session file path")
	flag.StringVar(&emulatorAddress, "a", "", "Emulator net address host:port")
	flag.StringVar(&emulatorDBPath, "d", "", "Emulator SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			APIKey: apiKey,
		},
		Adapter: Adapter{
			StoreAddress:   storeAddress,
			AuthAddress:    authAddress,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			FilePath: sessionFile,
		},
		Emulator: Emulator{
			Address: emulatorAddress,
			DBPath:  emulatorDBPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
