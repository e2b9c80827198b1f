package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Storage backend names accepted in [Storage.Backend].
const (
	BackendNop     = "nop"
	BackendMemory  = "memory"
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendSQLite  = "sqlite"
	BackendRedis   = "redis"
)

// Feature names accepted in [App.DisabledFeatures].
const (
	FeatureTranscription = "transcription"
	FeatureSearch        = "search"
	FeatureUploads       = "uploads"
)

// Defaults applied to unset fields.
const (
	DefaultBaseURL        = "http://localhost:3000/api"
	DefaultRequestTimeout = 30 * time.Second
	DefaultBackend        = BackendFile
	DefaultKeyringService = "classsync"
	DefaultRedisAddress   = "localhost:6379"
	DefaultRedisKeyPrefix = "classsync:"
	DefaultLogLevel       = "info"

	appDirName = "classsync"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
	// Features reports which optional features are enabled.
	Features Features
}

// Features is the resolved set of feature switches.
type Features struct {
	Transcription bool
	Search        bool
	Uploads       bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API root requests are resolved against.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the selected token storage backend and its settings.
type ClientStorage struct {
	Backend string
	File    File
	DB      DB
	Keyring Keyring
	Redis   Redis
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration.
//
// It loads the merged config via [GetStructuredConfig], fills defaults, maps
// the fields into a [ClientConfig] and validates the result.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if err = cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("error applying config defaults: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
			Features: resolveFeatures(cfg.App.DisabledFeatures),
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			File:    cfg.Storage.File,
			DB:      cfg.Storage.DB,
			Keyring: cfg.Storage.Keyring,
			Redis:   cfg.Storage.Redis,
		},
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}

	// only the selected backend gets its environment-dependent defaults
	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.File.Path == "" {
			dir, err := appConfigDir()
			if err != nil {
				return fmt.Errorf("storage file path required: %w", err)
			}
			cfg.Storage.File.Path = filepath.Join(dir, "session.json")
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			dir, err := appConfigDir()
			if err != nil {
				return fmt.Errorf("storage db dsn required: %w", err)
			}
			cfg.Storage.DB.DSN = filepath.Join(dir, "session.db")
		}
	case BackendKeyring:
		if cfg.Storage.Keyring.Service == "" {
			cfg.Storage.Keyring.Service = DefaultKeyringService
		}
		if cfg.Storage.Keyring.User == "" {
			current, err := user.Current()
			if err != nil {
				return fmt.Errorf("storage keyring user required: %w", err)
			}
			cfg.Storage.Keyring.User = current.Username
		}
	case BackendRedis:
		if cfg.Storage.Redis.Address == "" {
			cfg.Storage.Redis.Address = DefaultRedisAddress
		}
		if cfg.Storage.Redis.KeyPrefix == "" {
			cfg.Storage.Redis.KeyPrefix = DefaultRedisKeyPrefix
		}
	}

	return nil
}

func appConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

func resolveFeatures(disabled []string) Features {
	normalized := make([]string, 0, len(disabled))
	for _, name := range disabled {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(name)))
	}

	return Features{
		Transcription: !slices.Contains(normalized, FeatureTranscription),
		Search:        !slices.Contains(normalized, FeatureSearch),
		Uploads:       !slices.Contains(normalized, FeatureUploads),
	}
}
