package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", input: `"15s"`, want: 15 * time.Second},
		{name: "nanosecond number", input: `1500000000`, want: 1500 * time.Millisecond},
		{name: "bad string", input: `"fifteen"`, wantErr: true},
		{name: "bad type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"api_key": "k-123", "version": "1.2.3"},
		"adapter": {"store_address": "http://store:8089", "auth_address": "http://auth:8089", "request_timeout": "20s"},
		"session": {"file_path": "/tmp/session.json"},
		"emulator": {"address": "localhost:9099", "db_path": "emu.db"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "k-123", cfg.App.APIKey)
	assert.Equal(t, "http://store:8089", cfg.Adapter.StoreAddress)
	assert.Equal(t, "http://auth:8089", cfg.Adapter.AuthAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Session.FilePath)
	assert.Equal(t, "localhost:9099", cfg.Emulator.Address)
	assert.Equal(t, "emu.db", cfg.Emulator.DBPath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_API_KEY", "env-key")
	t.Setenv("ADAPTER_STORE_ADDRESS", "http://env-store:8089")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("SESSION_FILE_PATH", "/tmp/env-session.json")
	t.Setenv("EMULATOR_ADDRESS", "localhost:7077")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "env-key", cfg.App.APIKey)
	assert.Equal(t, "http://env-store:8089", cfg.Adapter.StoreAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/env-session.json", cfg.Session.FilePath)
	assert.Equal(t, "localhost:7077", cfg.Emulator.Address)
}

// Env values take precedence over JSON through the merge order.
func TestConfigBuilder_EnvWinsOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{"adapter": {"store_address": "http://json-store:8089", "auth_address": "http://json-auth:8089"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	t.Setenv("ADAPTER_STORE_ADDRESS", "http://env-store:8089")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().withEnv().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "http://env-store:8089", cfg.Adapter.StoreAddress)
	assert.Equal(t, "http://json-auth:8089", cfg.Adapter.AuthAddress)
}

func TestConsoleConfig_Defaults(t *testing.T) {
	cfg := &ConsoleConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "http://localhost:8089", cfg.Adapter.StoreAddress)
	assert.Equal(t, cfg.Adapter.StoreAddress, cfg.Adapter.AuthAddress, "auth defaults to the store address")
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.NotEmpty(t, cfg.Session.FilePath)
	require.NoError(t, cfg.validate())
}
