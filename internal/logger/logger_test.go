// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pim-keeper/internal/config"
)

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", &buf, zerolog.DebugLevel)
	assert.Equal(t, "func", zerolog.CallerFieldName)

	l.Info().Msg("caller")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	fn, _ := entry["func"].(string)
	assert.True(t, strings.HasSuffix(fn, "TestNewLogger_CallerFieldName"), fn)
}

// TestNewLogger_SetsGlobalLevel verifies that entries below the configured
// level are dropped.
func TestNewLogger_SetsGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := NewLogger("level-role", &buf, zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

// TestNewClientLogger_WritesFile verifies that the client logger creates the
// log directory and writes JSON lines into the configured file.
func TestNewClientLogger_WritesFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	path := filepath.Join(t.TempDir(), "nested", "client.log")
	l, err := NewClientLogger("client", config.ClientLog{FilePath: path, Level: "debug"})
	require.NoError(t, err)

	l.Debug().Str("k", "v").Msg("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewClientLogger_BadLevel(t *testing.T) {
	_, err := NewClientLogger("client", config.ClientLog{FilePath: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
	assert.NoError(t, l.Close())
}

// TestGetChildLogger_InheritsFields verifies that the child logger is a
// distinct instance that inherits context fields from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf, zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}
