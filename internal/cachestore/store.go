// Package cachestore implements a file-backed key/value store with optional
// per-entry time-to-live.
//
// Entries are JSON files under a root directory. Expiry is lazy: expired
// entries are treated as absent on read and removed opportunistically. The
// store is written for single-process, sequential use and does no locking.
package cachestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const fileExt = ".json"

// EnvDir overrides the default cache directory when set.
const EnvDir = "VMCTL_CACHE_DIR"

// Store is a directory-backed key/value store. Keys may contain slashes,
// which map to subdirectories.
type Store struct {
	dir string
}

type entry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// DefaultDir returns the cache directory: $VMCTL_CACHE_DIR when set,
// otherwise a vmctl subdirectory of the OS temp directory.
func DefaultDir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return filepath.Join(os.TempDir(), "vmctl")
}

// Open opens (and creates if necessary) a store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get loads the value stored under key into v. It returns false when the key
// is absent, the entry has expired, or the stored file cannot be decoded.
// Corrupt entries are never surfaced as errors; the caller repopulates.
func (s *Store) Get(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(s.path(key))
		return false
	}

	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(s.path(key))
		return false
	}

	if err := json.Unmarshal(e.Value, v); err != nil {
		_ = os.Remove(s.path(key))
		return false
	}
	return true
}

// Set stores v under key. A ttl of zero means the entry never expires.
// The entry is persisted immediately via a temp-file rename.
func (s *Store) Set(key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache value for %q: %w", key, err)
	}

	e := entry{Value: raw}
	if ttl != 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry for %q: %w", key, err)
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create cache subdirectory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache entry for %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to persist cache entry for %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry stored under key. It reports whether an entry
// was present.
func (s *Store) Delete(key string) bool {
	err := os.Remove(s.path(key))
	return err == nil
}

// Keys returns all keys under the given prefix, sorted. Expired entries are
// included; callers that care go through Get.
func (s *Store) Keys(prefix string) []string {
	var keys []string
	root := s.dir
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, fileExt) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		key := strings.TrimSuffix(filepath.ToSlash(rel), fileExt)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	sort.Strings(keys)
	return keys
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, filepath.FromSlash(key)+fileExt)
}
