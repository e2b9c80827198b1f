// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/internal/logger"
)

// exerciseStorage runs the behaviour every backend must share.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "auth_token", "abc"))
	got, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, s.Set(ctx, "auth_token", "def"))
	got, err = s.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "def", got)

	require.NoError(t, s.Delete(ctx, "auth_token"))
	_, err = s.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrKeyNotFound)

	// deleting a missing key is fine
	require.NoError(t, s.Delete(ctx, "auth_token"))
}

// ── Nop ──────────────────────────────────────────────────────────────────────

func TestNopStorage_NeverPersists(t *testing.T) {
	ctx := context.Background()
	s := NewNopStorage()

	require.NoError(t, s.Set(ctx, "auth_token", "abc"))
	_, err := s.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, s.Delete(ctx, "auth_token"))
	assert.NoError(t, s.Close())
}

// ── Memory ───────────────────────────────────────────────────────────────────

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestMemoryStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStorage()
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), context.Canceled)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

// ── File ─────────────────────────────────────────────────────────────────────

func TestFileStorage(t *testing.T) {
	s, err := NewFileStorage(filepath.Join(t.TempDir(), "nested", "session.json"), logger.Nop())
	require.NoError(t, err)
	exerciseStorage(t, s)
}

func TestFileStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "auth_token", "persisted"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)
	got, err := second.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStorage(path, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode storage file")
}

func TestFileStorage_EmptyPath(t *testing.T) {
	_, err := NewFileStorage("", logger.Nop())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ── Keyring ──────────────────────────────────────────────────────────────────

func TestKeyringStorage(t *testing.T) {
	keyring.MockInit()

	s, err := NewKeyringStorage("classsync-test", "alice")
	require.NoError(t, err)
	exerciseStorage(t, s)
}

func TestKeyringStorage_BackendError(t *testing.T) {
	keyring.MockInitWithError(assert.AnError)
	t.Cleanup(keyring.MockInit)

	s, err := NewKeyringStorage("classsync-test", "alice")
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "auth_token")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, s.Set(context.Background(), "auth_token", "x"), ErrStorageUnavailable)
}

func TestNewKeyringStorage_Validation(t *testing.T) {
	_, err := NewKeyringStorage("", "alice")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = NewKeyringStorage("svc", "")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ── Redis ────────────────────────────────────────────────────────────────────

func TestRedisStorage_Unreachable(t *testing.T) {
	_, err := NewRedisStorage(context.Background(), config.Redis{Address: "127.0.0.1:1"}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func newMiniRedisStorage(t *testing.T, prefix string) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	s, err := NewRedisStorage(context.Background(), config.Redis{Address: mr.Addr(), KeyPrefix: prefix}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, mr
}

func TestRedisStorage(t *testing.T) {
	s, _ := newMiniRedisStorage(t, "classsync:")
	exerciseStorage(t, s)
}

func TestRedisStorage_KeyPrefix(t *testing.T) {
	s, mr := newMiniRedisStorage(t, "classsync:")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", "abc"))

	got, err := mr.Get("classsync:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.False(t, mr.Exists("auth_token"))
	assert.Zero(t, mr.TTL("classsync:auth_token"), "values never expire")

	require.NoError(t, s.Delete(ctx, "auth_token"))
	assert.False(t, mr.Exists("classsync:auth_token"))
}

func TestRedisStorage_ServerErrors(t *testing.T) {
	s, mr := newMiniRedisStorage(t, "")
	ctx := context.Background()
	mr.SetError("ERR injected failure")

	_, err := s.Get(ctx, "auth_token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	assert.Error(t, s.Set(ctx, "auth_token", "abc"))
	assert.Error(t, s.Delete(ctx, "auth_token"))

	mr.SetError("")
	_, err = s.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestRedisStorage_Live runs against a real server when
// CLASSSYNC_TEST_REDIS_ADDRESS is set.
func TestRedisStorage_Live(t *testing.T) {
	addr := os.Getenv("CLASSSYNC_TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("CLASSSYNC_TEST_REDIS_ADDRESS not set")
	}

	s, err := NewRedisStorage(context.Background(), config.Redis{Address: addr, KeyPrefix: "classsync-test:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorage(t, s)
}

// ── NewStorage ───────────────────────────────────────────────────────────────

func TestNewStorage_Backends(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	s, err := NewStorage(ctx, config.ClientStorage{Backend: config.BackendNop}, log)
	require.NoError(t, err)
	assert.IsType(t, NopStorage{}, s)

	s, err = NewStorage(ctx, config.ClientStorage{Backend: config.BackendMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)

	s, err = NewStorage(ctx, config.ClientStorage{
		Backend: config.BackendFile,
		File:    config.File{Path: filepath.Join(t.TempDir(), "s.json")},
	}, log)
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	s, err = NewStorage(ctx, config.ClientStorage{
		Backend: config.BackendKeyring,
		Keyring: config.Keyring{Service: "svc", User: "u"},
	}, log)
	require.NoError(t, err)
	assert.IsType(t, &KeyringStorage{}, s)

	mr := miniredis.RunT(t)
	s, err = NewStorage(ctx, config.ClientStorage{
		Backend: config.BackendRedis,
		Redis:   config.Redis{Address: mr.Addr()},
	}, log)
	require.NoError(t, err)
	assert.IsType(t, &RedisStorage{}, s)
	require.NoError(t, s.Close())
}

func TestNewStorage_Unsupported(t *testing.T) {
	_, err := NewStorage(context.Background(), config.ClientStorage{Backend: "floppy"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}
