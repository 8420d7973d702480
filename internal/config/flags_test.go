// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectError:  false,
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectError:  false,
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

// TestParseFlags tests the parseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-d", "/tmp/cache.db",
				"-c", "/path/to/config.json",
				"-request-timeout", "30s",
				"-sync-interval", "2m",
				"-hash-key", "security_hash",
				"-log-file", "/tmp/client.log",
				"-log-level", "debug",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "/tmp/cache.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, "security_hash", cfg.App.HashKey)
				assert.Equal(t, "/tmp/client.log", cfg.Log.FilePath)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/pim.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/pim.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid verifies that malformed flags are reported instead
// of terminating the process.
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid address", []string{"-a", "nohost"}},
		{"invalid duration", []string{"-request-timeout", "soon"}},
		{"unknown flag", []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestNetAddress_PortUpperBound(t *testing.T) {
	addr := &NetAddress{}
	err := addr.Set("localhost:70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

// TestNetAddress_SetAndString verifies the round trip through Set and String.
func TestNetAddress_SetAndString(t *testing.T) {
	for _, in := range []string{"localhost:8080", "127.0.0.1:9090", "10.0.0.1:1"} {
		addr := &NetAddress{}
		require.NoError(t, addr.Set(in))
		assert.Equal(t, in, addr.String())
	}
}
