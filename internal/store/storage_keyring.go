package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStorage stores values in the OS-native credential store (macOS
// Keychain, Windows Credential Manager, Linux Secret Service). Each key
// becomes its own keyring item named "<service>:<key>" under the configured
// user.
type KeyringStorage struct {
	service string
	user    string
}

var _ Storage = (*KeyringStorage)(nil)

// NewKeyringStorage creates a KeyringStorage for the given service and user
// identifiers.
func NewKeyringStorage(service, user string) (*KeyringStorage, error) {
	if service == "" {
		return nil, fmt.Errorf("%w: keyring service cannot be empty", ErrStorageUnavailable)
	}
	if user == "" {
		return nil, fmt.Errorf("%w: keyring user cannot be empty", ErrStorageUnavailable)
	}

	return &KeyringStorage{service: service, user: user}, nil
}

func (k *KeyringStorage) itemName(key string) string {
	return k.service + ":" + key
}

func (k *KeyringStorage) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, err := keyring.Get(k.itemName(key), k.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("%w: keyring get: %v", ErrStorageUnavailable, err)
	}

	return value, nil
}

func (k *KeyringStorage) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := keyring.Set(k.itemName(key), k.user, value); err != nil {
		return fmt.Errorf("%w: keyring set: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (k *KeyringStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := keyring.Delete(k.itemName(key), k.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: keyring delete: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (k *KeyringStorage) Close() error {
	return nil
}
