// Package localstore is a tiny file-backed string key-value store. It
// plays the part the browser's localStorage plays for the demo UI: the
// only state that survives a restart, with last-write-wins semantics
// and no concurrent-writer protection beyond a process-local mutex.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store persists string keys and values as a single JSON file. A
// missing or corrupt file is treated as an empty store; reads never
// fail.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Open loads the store backed by the given file path. An empty path
// keeps the store purely in memory.
func Open(path string) *Store {
	s := &Store{path: path, values: make(map[string]string)}
	if path == "" {
		return s
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		// Corrupt state reads as empty; the demo never surfaces it.
		return s
	}
	s.values = values
	return s
}

// Get returns the value for a key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value and flushes to disk.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.flush()
}

// Remove deletes a key and flushes to disk. Removing an absent key is
// a no-op.
func (s *Store) Remove(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	s.flush()
}

// Keys returns the stored key names.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}

// flush writes the current state. Write failures are swallowed: losing
// the persisted session degrades to anonymous, which is the documented
// safe default for every path in this layer.
func (s *Store) flush() {
	if s.path == "" {
		return
	}
	raw, err := json.Marshal(s.values)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, raw, 0o600)
}
