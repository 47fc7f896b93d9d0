package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can spell durations either as
// strings ("15s") or as raw nanosecond numbers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler for [Duration].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		APIKey  string `json:"api_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		StoreAddress   string   `json:"store_address"`
		AuthAddress    string   `json:"auth_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		FilePath string `json:"file_path"`
	} `json:"session,omitempty"`

	Emulator struct {
		Address string `json:"address"`
		DBPath  string `json:"db_path"`
	} `json:"emulator,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %q: %w", path, err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config %q: %w", path, err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:  jsonCfg.App.APIKey,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			StoreAddress:   jsonCfg.Adapter.StoreAddress,
			AuthAddress:    jsonCfg.Adapter.AuthAddress,
			RequestTimeout: jsonCfg.Adapter.RequestTimeout.Duration,
		},
		Session: Session{
			FilePath: jsonCfg.Session.FilePath,
		},
		Emulator: Emulator{
			Address: jsonCfg.Emulator.Address,
			DBPath:  jsonCfg.Emulator.DBPath,
		},
	}

	return cfg, nil
}
