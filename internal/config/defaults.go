// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultRequestTimeout = 10 * time.Second
	defaultSyncInterval   = time.Minute
	defaultLogLevel       = "info"
	defaultDataDirName    = "go-pim-keeper"
)

// defaultConfig returns the values used for anything no other source set.
// File locations live under the user config directory, falling back to the
// working directory when it cannot be resolved.
func defaultConfig() *StructuredConfig {
	dir := defaultDataDirName
	if base, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(base, defaultDataDirName)
	}

	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: filepath.Join(dir, "cache.db")}},
		Adapter: Adapter{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{SyncInterval: defaultSyncInterval},
		Log: Log{
			FilePath: filepath.Join(dir, "client.log"),
			Level:    defaultLogLevel,
		},
	}
}
