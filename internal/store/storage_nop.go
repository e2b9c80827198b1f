package store

import "context"

// NopStorage is the explicit storage for contexts without durable state:
// nothing is ever persisted and every Get misses.
type NopStorage struct{}

var _ Storage = NopStorage{}

// NewNopStorage returns a [NopStorage].
func NewNopStorage() NopStorage {
	return NopStorage{}
}

func (NopStorage) Get(_ context.Context, _ string) (string, error) {
	return "", ErrKeyNotFound
}

func (NopStorage) Set(_ context.Context, _, _ string) error {
	return nil
}

func (NopStorage) Delete(_ context.Context, _ string) error {
	return nil
}

func (NopStorage) Close() error {
	return nil
}
