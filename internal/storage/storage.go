// Package storage provides key-value persistence for the cart: a .cart/
// workspace directory on disk plus Redis, PostgreSQL and in-memory backends.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// cartDir is the name of the workspace directory.
	cartDir = ".cart"
	// dataDir is the subdirectory holding one file per key.
	dataDir = "data"
	// configFile is the name of the workspace metadata file within .cart/.
	configFile = "config.yaml"
)

// StorageConfig contains settings stored in .cart/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .cart/ directory.
// It implements KV with one file per key under .cart/data/.
type Storage struct {
	root string // path to directory containing .cart/
}

var _ KV = (*Storage)(nil)

// Open returns a Storage for the given directory.
// Returns error if .cart/ does not exist.
func Open(dir string) (*Storage, error) {
	cartPath := filepath.Join(dir, cartDir)
	info, err := os.Stat(cartPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".cart/ directory not found in %s (run `cart init`)", dir)
		}
		return nil, fmt.Errorf("failed to access .cart/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".cart is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates the .cart/ directory structure.
// Returns error if .cart/ already exists.
func Init(dir string) (*Storage, error) {
	cartPath := filepath.Join(dir, cartDir)

	if _, err := os.Stat(cartPath); err == nil {
		return nil, fmt.Errorf(".cart/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .cart/: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(cartPath, dataDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create .cart/data/: %w", err)
	}

	cfg := StorageConfig{Version: 1}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		os.RemoveAll(cartPath)
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cartPath, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(cartPath)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .cart/.
func (s *Storage) Root() string {
	return s.root
}

// CartPath returns the path to the .cart/ directory.
func (s *Storage) CartPath() string {
	return filepath.Join(s.root, cartDir)
}

// keyPath returns the path of the file holding key.
func (s *Storage) keyPath(key string) string {
	return filepath.Join(s.root, cartDir, dataDir, key)
}

// Get reads the file for key.
func (s *Storage) Get(_ context.Context, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), nil
}

// Set replaces the file for key. The write goes to a temporary file that is
// renamed into place, so readers never observe a partial document.
func (s *Storage) Set(_ context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	dir := filepath.Join(s.root, cartDir, dataDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create .cart/data/: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.keyPath(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key.
func (s *Storage) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys that currently hold a value.
func (s *Storage) Keys() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, cartDir, dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name[0] == '.' {
			continue
		}
		keys = append(keys, name)
	}
	return keys, nil
}
