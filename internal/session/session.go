// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the bearer token of the current client session.
//
// A [Session] reads the persisted token once, when it is created, and from
// then on serves it from memory. [Session.SetToken] and [Session.ClearToken]
// keep memory and the backing [store.Storage] in step.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/class-sync/internal/logger"
	"github.com/MKhiriev/class-sync/internal/store"
	"github.com/MKhiriev/class-sync/internal/utils"
)

// TokenKey is the storage key the bearer token is persisted under.
const TokenKey = "auth_token"

// ErrNotAuthenticated is returned by operations that need a token when the
// session holds none.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	token   string
	storage store.Storage
	logger  *logger.Logger
}

// New creates a session backed by storage and loads the persisted token.
//
// A nil storage is treated as [store.NopStorage]. Failing to read the token
// is logged and leaves the session unauthenticated.
func New(ctx context.Context, storage store.Storage, log *logger.Logger) *Session {
	if storage == nil {
		storage = store.NopStorage{}
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.GetChildLogger("session")

	s := &Session{storage: storage, logger: log}

	token, err := storage.Get(ctx, TokenKey)
	switch {
	case err == nil:
		s.token = token
	case errors.Is(err, store.ErrKeyNotFound):
		log.Debug().Msg("no persisted token")
	default:
		log.Warn().Err(err).Msg("reading persisted token failed, starting unauthenticated")
	}

	return s
}

// Token returns the current token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken replaces the token in memory and persists it. The in-memory token
// is updated even when persisting fails; the returned error reports the
// storage failure.
func (s *Session) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.storage.Set(ctx, TokenKey, token); err != nil {
		s.logger.Err(err).Msg("persisting token failed")
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// ClearToken forgets the token in memory and removes it from storage.
func (s *Session) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, TokenKey); err != nil {
		s.logger.Err(err).Msg("removing persisted token failed")
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Subject returns the "sub" claim of the token when it is a JWT. The claim is
// not verified.
func (s *Session) Subject() (string, error) {
	token := s.Token()
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return utils.SubjectFromJWT(token)
}
