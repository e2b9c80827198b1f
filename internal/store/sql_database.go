package store

import (
	"database/sql"

	"github.com/MKhiriev/class-sync/internal/logger"
	"github.com/MKhiriev/class-sync/migrations"
)

// DB wraps the SQL connection used by the SQLite backend.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
