// Package store persists the mapping from canonical file paths to their
// last-known fingerprints.
//
// The backing file is a flat JSON object mapping each path to its hex
// digest. It is human-readable and safe to hand-edit: removing an entry
// forces a recheck of that file, inserting one seeds the cache (as long
// as the digest algorithm matches). Digests written by one algorithm are
// meaningless to another.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hashgate/checksumcache/internal/fsutil"
)

// Store is a thread-safe checksum store backed by a JSON file.
// One Store instance owns its backing file; two processes pointed at the
// same file are not coordinated and the last saver wins.
type Store struct {
	mu      sync.RWMutex
	saveMu  sync.Mutex
	path    string
	entries map[string]string
}

// Open creates a store backed by the file at path and loads its current
// contents. Loading fails soft: a missing or malformed backing file
// yields an empty store, never an error, since a cold or corrupt cache
// must not block the caller (full reprocessing is always safe).
func Open(path string) *Store {
	s := &Store{
		path:    path,
		entries: make(map[string]string),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return
	}
	s.entries = entries
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves the stored digest for a key.
func (s *Store) Get(key string) (digest string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	digest, ok = s.entries[key]
	return digest, ok
}

// Put stores or overwrites the digest for a key.
func (s *Store) Put(key, digest string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = digest
}

// Remove deletes the entry for a key, reporting whether it existed.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns all stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current mapping.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Save serializes the mapping to the backing file. The write is atomic
// with respect to partial writes (temp file + rename), so a crash
// mid-save cannot corrupt an existing file. The parent directory is
// created if absent.
//
// Saves are mutually exclusive from marshal through rename: a snapshot
// taken by one Save can never land on disk after a fresher one. Put and
// Get stay unblocked during the disk write.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(s.entries, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return &SaveError{Path: s.path, Cause: err}
	}

	if err := fsutil.EnsureDirs(filepath.Dir(s.path)); err != nil {
		return &SaveError{Path: s.path, Cause: err}
	}

	if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return &SaveError{Path: s.path, Cause: err}
	}

	return nil
}
