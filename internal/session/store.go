// Package session holds the process-wide identity state: the current user,
// the startup verification flag, and the persisted bearer token.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the bearer token as a single string in a file. It is
// the only persisted client state.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Token returns the stored token, or "" when the file is missing or
// unreadable.
func (f *FileStore) Token() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes the token with owner-only permissions, creating parent
// directories as needed.
func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

// Clear removes the token file. A missing file is not an error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory token store for tests and throwaway sessions.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
