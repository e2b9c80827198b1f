package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/class-sync/internal/logger"
)

// FileStorage persists values as a JSON object in a single file. Every
// write replaces the file atomically (temp file + rename) with 0600
// permissions.
type FileStorage struct {
	path   string
	logger *logger.Logger

	mu    sync.RWMutex
	items map[string]string
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage opens the file at path, creating its parent directory with
// 0700 permissions. A missing file is an empty store; an unreadable or
// undecodable one is an error.
func NewFileStorage(path string, log *logger.Logger) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path cannot be empty", ErrStorageUnavailable)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("%w: create storage dir: %v", ErrStorageUnavailable, err)
	}

	f := &FileStorage{
		path:   path,
		logger: log,
		items:  make(map[string]string),
	}
	if err := f.load(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *FileStorage) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err = json.Unmarshal(data, &f.items); err != nil {
		return fmt.Errorf("decode storage file: %w", err)
	}
	if f.items == nil {
		f.items = make(map[string]string)
	}

	return nil
}

// persist writes the current state; callers must hold the write lock.
func (f *FileStorage) persist() error {
	payload, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}

func (f *FileStorage) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	value, ok := f.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (f *FileStorage) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	prev, existed := f.items[key]
	f.items[key] = value
	if err := f.persist(); err != nil {
		// keep memory in line with what is on disk
		if existed {
			f.items[key] = prev
		} else {
			delete(f.items, key)
		}
		f.logger.Err(err).Str("func", "FileStorage.Set").Str("path", f.path).Msg("failed to persist storage file")
		return err
	}

	return nil
}

func (f *FileStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	prev, existed := f.items[key]
	if !existed {
		return nil
	}

	delete(f.items, key)
	if err := f.persist(); err != nil {
		f.items[key] = prev
		f.logger.Err(err).Str("func", "FileStorage.Delete").Str("path", f.path).Msg("failed to persist storage file")
		return err
	}

	return nil
}

func (f *FileStorage) Close() error {
	return nil
}
