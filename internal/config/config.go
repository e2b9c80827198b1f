// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container for the class-sync
// client. It is populated by merging values from command-line flags,
// environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging and feature toggles.
	App App `envPrefix:"APP_"`

	// Adapter holds the API base URL and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the session token storage backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is the minimum level written to the log (debug, info, warn,
	// error). Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path of the client log file. Empty means a file next to
	// the executable. Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// DisabledFeatures lists features switched off for this client
	// (transcription, search, uploads). Env: APP_DISABLED_FEATURES
	DisabledFeatures []string `env:"DISABLED_FEATURES" envSeparator:","`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// BaseURL is the API root every request path is resolved against
	// (e.g. "http://localhost:3000/api"). Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single API round trip (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of every token storage backend. Only the
// section matching Backend is used.
type Storage struct {
	// Backend is one of nop, memory, file, keyring, sqlite, redis.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	File    File    `envPrefix:"FILE_"`
	DB      DB      `envPrefix:"DB_"`
	Keyring Keyring `envPrefix:"KEYRING_"`
	Redis   Redis   `envPrefix:"REDIS_"`
}

// File configures the JSON file backend.
type File struct {
	// Path of the key/value file. Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// DB configures the SQLite backend.
type DB struct {
	// DSN is the SQLite database file path or DSN. Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Keyring configures the OS credential store backend.
type Keyring struct {
	// Service is the keyring service name. Env: STORAGE_KEYRING_SERVICE
	Service string `env:"SERVICE"`
	// User is the keyring account name. Env: STORAGE_KEYRING_USER
	User string `env:"USER"`
}

// Redis configures the Redis backend.
type Redis struct {
	// Address in host:port form. Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Password for AUTH, optional. Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// DB is the logical database index. Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// KeyPrefix namespaces every key written by the client.
	// Env: STORAGE_REDIS_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Earlier sources take precedence for non-zero fields:
//  1. Command-line flags (flagCfg, may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		build()
}
