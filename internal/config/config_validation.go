// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] for values that can never
// be valid regardless of the client view built from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Log.FilePath == "" {
		return ErrInvalidLogConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
