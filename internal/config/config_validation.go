// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL turns raw into an absolute API root. A missing scheme
// defaults to http and trailing slashes are dropped, so "localhost:3000/api"
// becomes "http://localhost:3000/api".
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	baseURL, err := NormalizeBaseURL(cfg.Adapter.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url %q: %w", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL, err)
	}
	cfg.Adapter.BaseURL = baseURL

	switch cfg.Storage.Backend {
	case BackendNop, BackendMemory:
	case BackendFile:
		if cfg.Storage.File.Path == "" {
			return fmt.Errorf("%w: file path is empty", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: sqlite dsn is empty", ErrInvalidStorageConfigs)
		}
	case BackendKeyring:
		if cfg.Storage.Keyring.Service == "" || cfg.Storage.Keyring.User == "" {
			return fmt.Errorf("%w: keyring service and user are required", ErrInvalidStorageConfigs)
		}
	case BackendRedis:
		if cfg.Storage.Redis.Address == "" || cfg.Storage.Redis.DB < 0 {
			return fmt.Errorf("%w: redis address is empty or db index is negative", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}
