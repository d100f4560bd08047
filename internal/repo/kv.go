// Package repo contains all persistence logic for the Wayfare API.
// Storage is a local on-device key-value store of JSON blobs; there is no
// database server. No business logic lives here, only storage and type
// mapping.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// KV is the minimal blob-store interface the repos are built on.
// Get reports found=false for keys that have never been set.
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileKV stores each key as one JSON file under a data directory.
// Writes go through a temp file and rename, so a crash mid-write never
// leaves a half-written blob behind. A single RWMutex serializes writers;
// the app has one user, so contention is not a concern.
type FileKV struct {
	mu  sync.RWMutex
	dir string
}

// NewFileKV creates the data directory if needed and returns a store over it.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewFileKV: create data dir: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Get reads the blob stored under key.
func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("repo.FileKV.Get %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *FileKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("repo.FileKV.Set %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("repo.FileKV.Set %q: rename: %w", key, err)
	}
	return nil
}

// Delete removes the blob under key. Deleting an absent key is not an error.
func (s *FileKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("repo.FileKV.Delete %q: %w", key, err)
	}
	return nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
