// Package kv is the persistence seam for the whole register: every store
// (catalog, ledger, sessions) reads and writes one JSON blob under a fixed
// namespaced key. Backings: an in-memory map for tests/demo mode and an
// embedded sqlite database for real installs.
package kv

import (
	"errors"
	"sync"
)

// ErrUnavailable signals that the backing storage could not be reached.
// It is fatal for the current operation; callers never retry and never
// perform a partial write.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the get/set/remove contract every higher-level store is built on.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error
}

// Memory is a mutex-guarded map store. It never fails and holds nothing
// across restarts, which is exactly what the tests want.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers can't mutate the stored slice.
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
