package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by KV.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KV is a string-keyed blob store with whole-value replacement semantics,
// modelled on browser local storage.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// validateKey rejects keys that cannot be stored by every backend.
// The file backend uses keys as file names.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("invalid key: must not be empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q: must not contain path separators", key)
	}
	return nil
}
