package session

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/class-sync/internal/logger"
	"github.com/MKhiriev/class-sync/internal/mock"
	"github.com/MKhiriev/class-sync/internal/store"
	"github.com/MKhiriev/class-sync/internal/utils"
)

func TestNew_LoadsPersistedToken(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, TokenKey, "persisted"))

	s := New(ctx, storage, logger.Nop())

	assert.Equal(t, "persisted", s.Token())
	assert.True(t, s.Authenticated())
}

func TestNew_ReadsStorageOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), TokenKey).Return("abc", nil).Times(1)

	s := New(context.Background(), storage, logger.Nop())

	for range 3 {
		assert.Equal(t, "abc", s.Token())
	}
}

func TestNew_Unauthenticated(t *testing.T) {
	tests := []struct {
		name   string
		getErr error
	}{
		{name: "missing key", getErr: store.ErrKeyNotFound},
		{name: "storage failure", getErr: errors.Join(store.ErrStorageUnavailable, errors.New("locked"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockStorage(ctrl)
			storage.EXPECT().Get(gomock.Any(), TokenKey).Return("", tt.getErr)

			s := New(context.Background(), storage, logger.Nop())

			assert.Empty(t, s.Token())
			assert.False(t, s.Authenticated())
		})
	}
}

func TestNew_LogsAsSessionComponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), TokenKey).Return("", store.ErrStorageUnavailable)

	var buf bytes.Buffer
	New(context.Background(), storage, logger.New("cli", zerolog.DebugLevel, &buf))

	assert.Contains(t, buf.String(), `"component":"session"`)
	assert.Contains(t, buf.String(), "starting unauthenticated")
}

func TestNew_NilStorageAndLogger(t *testing.T) {
	s := New(context.Background(), nil, nil)

	assert.False(t, s.Authenticated())
	require.NoError(t, s.SetToken(context.Background(), "t"))
	assert.Equal(t, "t", s.Token())
}

func TestSetToken_PersistsToStorage(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	s := New(ctx, storage, logger.Nop())

	require.NoError(t, s.SetToken(ctx, "abc"))

	assert.Equal(t, "abc", s.Token())
	got, err := storage.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestClearToken_RemovesFromStorage(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, TokenKey, "abc"))
	s := New(ctx, storage, logger.Nop())

	require.NoError(t, s.ClearToken(ctx))

	assert.Empty(t, s.Token())
	_, err := storage.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestSetToken_StorageFailureKeepsMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), TokenKey).Return("", store.ErrKeyNotFound)
	storage.EXPECT().Set(gomock.Any(), TokenKey, "abc").Return(store.ErrStorageUnavailable)

	s := New(context.Background(), storage, logger.Nop())
	err := s.SetToken(context.Background(), "abc")

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Equal(t, "abc", s.Token())
}

func TestClearToken_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), TokenKey).Return("abc", nil)
	storage.EXPECT().Delete(gomock.Any(), TokenKey).Return(store.ErrStorageUnavailable)

	s := New(context.Background(), storage, logger.Nop())
	err := s.ClearToken(context.Background())

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.False(t, s.Authenticated())
}

func TestSubject(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, store.NewMemoryStorage(), logger.Nop())

	_, err := s.Subject()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "7"}).
		SignedString([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, signed))

	sub, err := s.Subject()
	require.NoError(t, err)
	assert.Equal(t, "7", sub)

	require.NoError(t, s.SetToken(ctx, "opaque"))
	_, err = s.Subject()
	assert.ErrorIs(t, err, utils.ErrNotJWT)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, store.NewMemoryStorage(), logger.Nop())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.SetToken(ctx, "t")
			} else {
				_ = s.ClearToken(ctx)
			}
		}()
		go func() {
			defer wg.Done()
			_ = s.Token()
		}()
	}
	wg.Wait()
}
