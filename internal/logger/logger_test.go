// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RoleField verifies that every log entry contains the expected
// "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", zerolog.DebugLevel, &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNew_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := New("caller-role", zerolog.DebugLevel, &buf)

	l.Info().Msg("caller")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry["func"], "TestNew_CallerFieldName")
}

func TestNew_LevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New("level-role", zerolog.WarnLevel, &buf)

	l.Debug().Msg("dropped")
	l.Info().Msg("dropped too")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"upper case", "ERROR", zerolog.ErrorLevel},
		{"padded", "  warn ", zerolog.WarnLevel},
		{"empty", "", zerolog.InfoLevel},
		{"garbage", "loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("cli", path, "debug")
	t.Cleanup(func() { _ = l.Close() })
	l.Debug().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), `"role":"cli"`)
}

func TestNewClientLogger_OwnerOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("cli", path, "info")
	t.Cleanup(func() { _ = l.Close() })

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClose_ReleasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("cli", path, "info")

	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")

	l.Info().Msg("after close")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
}

func TestClose_NoFile(t *testing.T) {
	assert.NoError(t, Nop().Close())
	assert.NoError(t, New("r", zerolog.InfoLevel, &bytes.Buffer{}).GetChildLogger("c").Close())

	var l *Logger
	assert.NoError(t, l.Close())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role", zerolog.DebugLevel, &buf)

	child := parent.GetChildLogger("adapter")
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "adapter", entry["component"])

	buf.Reset()
	parent.Info().Msg("parent message")
	assert.NotContains(t, buf.String(), "component")
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", zerolog.DebugLevel, &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}
