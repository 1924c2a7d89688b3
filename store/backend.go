package store

import "sync"

// Backend is the raw slot storage under the typed collections. One key holds
// the full serialized contents of one collection.
type Backend interface {
	// Get returns the raw slot value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the slot value for key.
	Set(key string, value []byte) error
	// Delete removes the slot entirely.
	Delete(key string) error
}

// MemoryBackend keeps slots in a map. Used by tests and the "memory" store
// driver.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw := make([]byte, len(value))
	copy(raw, value)
	m.slots[key] = raw
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
