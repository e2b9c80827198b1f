// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "session_kv"
	kvNameColumn  = "name"
	kvValueColumn = "value"
	kvUpdatedAt   = "updated_at"
)

func getValueQuery(key string) (string, []any, error) {
	return sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
}

func upsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns(kvNameColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now).
		Suffix("ON CONFLICT(" + kvNameColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
}

func deleteValueQuery(key string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
}
