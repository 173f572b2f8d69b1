// Package envstore abstracts the process environment as an injectable
// key/value store, so the vault resolution pipeline can be tested without
// mutating real process state.
package envstore

import "os"

// Store is the environment variable store consumed by the loader.
type Store interface {
	// Lookup retrieves the value of a variable and whether it is present.
	Lookup(key string) (string, bool)

	// Set sets a variable, overriding any existing value.
	Set(key, value string) error

	// SetIfAbsent sets a variable only when it is not already present.
	SetIfAbsent(key, value string) error
}

// OSStore is a Store backed by the process environment.
type OSStore struct{}

// NewOSStore returns a Store backed by the process environment.
func NewOSStore() *OSStore {
	return &OSStore{}
}

// Lookup retrieves a process environment variable.
func (s *OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set sets a process environment variable, overriding any existing value.
func (s *OSStore) Set(key, value string) error {
	return os.Setenv(key, value)
}

// SetIfAbsent sets a process environment variable only when it is not already set.
func (s *OSStore) SetIfAbsent(key, value string) error {
	if _, ok := os.LookupEnv(key); ok {
		return nil
	}
	return os.Setenv(key, value)
}

// MapStore is an in-memory Store for tests.
type MapStore struct {
	values map[string]string
}

// NewMapStore returns an empty in-memory Store.
func NewMapStore() *MapStore {
	return &MapStore{values: map[string]string{}}
}

// Lookup retrieves a variable from the in-memory store.
func (s *MapStore) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Set sets a variable in the in-memory store, overriding any existing value.
func (s *MapStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

// SetIfAbsent sets a variable in the in-memory store only when it is not already present.
func (s *MapStore) SetIfAbsent(key, value string) error {
	if _, ok := s.values[key]; ok {
		return nil
	}
	s.values[key] = value
	return nil
}
