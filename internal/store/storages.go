package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/internal/logger"
)

// NewStorage builds the token storage backend selected by cfg.Backend.
//
// For the sqlite backend it opens the database file and runs pending schema
// migrations before returning. Returns [ErrUnsupportedBackend] for an
// unknown backend name.
func NewStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (Storage, error) {
	log.Debug().Str("backend", cfg.Backend).Msg("creating token storage...")

	switch cfg.Backend {
	case config.BackendNop:
		return NewNopStorage(), nil
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	case config.BackendFile:
		return NewFileStorage(cfg.File.Path, log)
	case config.BackendKeyring:
		return NewKeyringStorage(cfg.Keyring.Service, cfg.Keyring.User)
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteStorage(db, log), nil
	case config.BackendRedis:
		return NewRedisStorage(ctx, cfg.Redis, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}
