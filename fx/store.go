package fx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// keyPrefix namespaces the per-currency cache entries.
const keyPrefix = "fx_sbi_ttbr_"

// Store is the persistent key-value cache behind the rate service. One
// entry per currency holds the full serialized date→rate table. Entries
// have no versioning and no expiry: they are stale until deleted.
type Store interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte) error
	Delete(key string) error
}

// DirStore persists entries as files in a directory. It is the production
// store; tests use MemStore.
type DirStore struct {
	Dir string
}

func (s DirStore) path(key string) string { return filepath.Join(s.Dir, key+".json") }

func (s DirStore) Get(key string) ([]byte, bool) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return content, true
}

func (s DirStore) Put(key string, value []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s DirStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests.
type MemStore map[string][]byte

func (s MemStore) Get(key string) ([]byte, bool) {
	v, ok := s[key]
	return v, ok
}

func (s MemStore) Put(key string, value []byte) error {
	s[key] = value
	return nil
}

func (s MemStore) Delete(key string) error {
	delete(s, key)
	return nil
}
