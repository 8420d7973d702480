// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the raw configuration container for the
// go-pim-keeper client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the sync server address and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds file logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for upload integrity checking
	// (the hash field of an upload batch).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string shown in the status bar.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local cache.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is a SQLite file path or "file:" URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the sync server connection.
type Adapter struct {
	// HTTPAddress is the server address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds file logger settings. The terminal UI owns stdout, so the
// client always logs to a file.
type Log struct {
	// FilePath is the log file location. Rotated by size.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	HashKey string
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientLog contains file logger settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the validated configuration the client runs with.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Earlier sources take precedence for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientConfig()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}
