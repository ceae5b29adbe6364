// Package auth implements the client session model: persistent token
// storage, lazily re-read session state, and the login/logout gateway that
// every authorized request goes through.
package auth

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

// Storage is the persistent key-value capability the session is built on.
// It is injected so tests (and future backends) can substitute their own;
// nothing in this package reaches for a global.
type Storage interface {
	// Get returns the stored value for key. The bool is false when the key
	// is absent; absence is not an error.
	Get(key string) (string, bool, error)

	// Set stores the value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key string) error
}

// FileStorage keeps each key in its own file under a state directory,
// mirroring how the browser build keeps its keys in localStorage. Files are
// user-only since one of them holds the bearer token.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// DefaultStateDir resolves the per-user state directory for stored session
// data, honoring the platform config-dir convention.
func DefaultStateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", uniErrors.Wrap(uniErrors.ErrCodeStorageFailed, "could not resolve the user config directory", err)
	}
	return filepath.Join(base, "unijobs"), nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key)
}

// Get reads the value for key from disk.
func (f *FileStorage) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, uniErrors.Wrap(uniErrors.ErrCodeStorageFailed, "could not read stored session data", err)
	}
	return string(b), true, nil
}

// Set writes the value for key, creating the state directory on first use.
func (f *FileStorage) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return uniErrors.Wrap(uniErrors.ErrCodeStorageFailed, "could not create the state directory", err)
	}
	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		return uniErrors.Wrap(uniErrors.ErrCodeStorageFailed, "could not write session data", err)
	}
	return nil
}

// Delete removes the file for key. A missing file is not an error.
func (f *FileStorage) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return uniErrors.Wrap(uniErrors.ErrCodeStorageFailed, "could not remove session data", err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage for tests and ephemeral sessions.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores the value under key.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes the key.
func (m *MemoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
