// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

package config

func (cfg *ConsoleConfig) validate() error {
	if cfg.Adapter.StoreAddress == "" || cfg.Adapter.AuthAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.FilePath == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *EmulatorConfig) validate() error {
	if cfg.Address == "" || cfg.DBPath == "" {
		return ErrInvalidEmulatorConfigs
	}

	return nil
}
