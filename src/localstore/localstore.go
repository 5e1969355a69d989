// Package localstore is a small JSON file key-value store. It backs the
// anonymous-user variants of the bookmark, saved-search and recently-viewed
// stores, standing in for the browser's localStorage.
package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Fixed keys, matching the browser storage layout.
const (
	BookmarksKey      = "artifact-bookmarks"
	SavedSearchesKey  = "saved-searches"
	RecentlyViewedKey = "recently-viewed"
)

type Store struct {
	path  string
	mutex sync.RWMutex
	data  map[string]json.RawMessage
}

// Open loads the store file at path, creating parent directories as needed.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Get unmarshals the value stored under key into v. The boolean reports
// whether the key was present.
func (s *Store) Get(key string, v interface{}) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, err
	}
	return true, nil
}

// Put stores v under key and persists the whole store to disk.
func (s *Store) Put(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = raw
	return s.flush()
}

// Delete removes key and persists. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// flush writes the store atomically via a temp file rename. Callers must
// hold the write lock.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
