package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/class-sync/internal/logger"
)

// SQLiteStorage keeps values in the session_kv table of a local SQLite
// database.
type SQLiteStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

var _ Storage = (*SQLiteStorage)(nil)

// NewSQLiteStorage wraps an already migrated connection.
func NewSQLiteStorage(db *DB, log *logger.Logger) *SQLiteStorage {
	return &SQLiteStorage{db: db, logger: log, now: time.Now}
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := getValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		s.logger.Err(err).Str("func", "SQLiteStorage.Get").Str("key", key).Msg("failed to query value")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertValueQuery(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteStorage.Set").Str("key", key).Msg("failed to upsert value")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	query, args, err := deleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteStorage.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
