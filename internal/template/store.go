// Package template persists named VirtualServer descriptors for reuse across
// sessions.
//
// Templates live in the same file-backed store as the TTL cache but under
// their own key namespace and never expire.
package template

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/imamik/vmctl/internal/cachestore"
	"github.com/imamik/vmctl/internal/descriptor"
)

const keyPrefix = "template/"

var (
	// ErrNameTaken is returned when saving under an existing name.
	ErrNameTaken = errors.New("template name already taken")

	// ErrNotFound is returned when using or deleting an unknown name.
	ErrNotFound = errors.New("template not found")

	// ErrInvalidName is returned for names that cannot serve as keys.
	ErrInvalidName = errors.New("invalid template name")
)

var nameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Store is the named descriptor store.
type Store struct {
	cache *cachestore.Store
}

// NewStore creates a template store over the given cache store.
func NewStore(cache *cachestore.Store) *Store {
	return &Store{cache: cache}
}

// Save persists a descriptor under name. Names are unique: saving over an
// existing name fails with ErrNameTaken and leaves the original untouched.
func (s *Store) Save(name string, vs descriptor.VirtualServer) error {
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	var existing descriptor.VirtualServer
	if s.cache.Get(keyPrefix+name, &existing) {
		return fmt.Errorf("%w: %q", ErrNameTaken, name)
	}
	return s.cache.Set(keyPrefix+name, vs, 0)
}

// Exists reports whether a template is saved under name.
func (s *Store) Exists(name string) bool {
	var vs descriptor.VirtualServer
	return s.cache.Get(keyPrefix+name, &vs)
}

// List returns all template names, sorted.
func (s *Store) List() []string {
	keys := s.cache.Keys(keyPrefix)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, keyPrefix))
	}
	return names
}

// Instantiate returns a copy of the named template's descriptor. The caller
// may override the copy's identity fields before submission.
func (s *Store) Instantiate(name string) (descriptor.VirtualServer, error) {
	var vs descriptor.VirtualServer
	if !s.cache.Get(keyPrefix+name, &vs) {
		return descriptor.VirtualServer{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return vs, nil
}

// Delete removes the named template. Deleting an unknown name returns
// ErrNotFound and leaves the store unchanged.
func (s *Store) Delete(name string) error {
	if !s.cache.Delete(keyPrefix + name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}
