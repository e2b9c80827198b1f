package store

import "errors"

// Sentinel errors returned by [Storage] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when the key holds no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageUnavailable is returned when a backend cannot be reached or
	// opened (missing keyring service, unreachable redis, unwritable file).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedBackend is returned by [NewStorage] for an unknown
	// backend name.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors of the SQLite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
