package storage

import "sort"

// Backend is the key-value persistence interface every tracker store writes
// through to. Values are opaque byte blobs (in practice, JSON arrays).
// Backends are constructed explicitly and injected into stores so tests can
// substitute an in-memory fake.
type Backend interface {
	// Get returns the value for key, and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(key string, data []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists all stored keys.
	Keys() ([]string, error)
	// Path returns the backing location, for diagnostics.
	Path() string
	Close() error
}

// MemoryBackend is an in-memory Backend for tests.
type MemoryBackend struct {
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	data, ok := m.data[key]
	return data, ok, nil
}

func (m *MemoryBackend) Set(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryBackend) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryBackend) Path() string { return "memory" }
func (m *MemoryBackend) Close() error { return nil }
