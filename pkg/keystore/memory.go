package keystore

import (
	"sync"
)

// MemoryStore implements Store with in-memory maps. Suitable for tests and
// single-process deployments; keys do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	labels  map[string]string // label -> kid
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory key store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
		labels:  make(map[string]string),
	}
}

// Put stores a new entry. The KID must be unused; a non-empty label must be
// unused as well.
func (m *MemoryStore) Put(entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[entry.KID]; exists {
		return ErrKeyExists
	}
	if entry.Label != "" {
		if _, exists := m.labels[entry.Label]; exists {
			return ErrDuplicateLabel
		}
		m.labels[entry.Label] = entry.KID
	}

	e := *entry
	m.entries[entry.KID] = &e
	return nil
}

// Get retrieves an entry by KID. The returned entry is a copy.
func (m *MemoryStore) Get(kid string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.entries[kid]
	if !exists {
		return nil, ErrKeyNotFound
	}
	e := *entry
	return &e, nil
}

// GetByLabel retrieves an entry by its label. The returned entry is a copy.
func (m *MemoryStore) GetByLabel(label string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	kid, exists := m.labels[label]
	if !exists {
		return nil, ErrKeyNotFound
	}
	entry, exists := m.entries[kid]
	if !exists {
		return nil, ErrKeyNotFound
	}
	e := *entry
	return &e, nil
}

// List returns copies of all entries in unspecified order.
func (m *MemoryStore) List() ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, *entry)
	}
	return entries, nil
}

// Delete removes an entry and frees its label.
func (m *MemoryStore) Delete(kid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.entries[kid]
	if !exists {
		return ErrKeyNotFound
	}
	if entry.Label != "" {
		delete(m.labels, entry.Label)
	}
	delete(m.entries, kid)
	return nil
}

// Ping always succeeds for the memory store.
func (m *MemoryStore) Ping() error {
	return nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// Stats returns entry counts, useful for monitoring endpoints.
func (m *MemoryStore) Stats() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]int{
		"keys":   len(m.entries),
		"labels": len(m.labels),
	}
}
