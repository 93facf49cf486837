package services

import (
	"context"
	"sync"
)

// MemoryKVStore keeps values in process memory. It is used in tests and
// when STORE_BACKEND=memory.
type MemoryKVStore struct {
	mu      sync.RWMutex
	values  map[string][]byte
	failPut error
}

// NewMemoryKVStore creates an empty in-memory store
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (m *MemoryKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value, or returns the error configured with FailWrites
func (m *MemoryKVStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failPut != nil {
		return m.failPut
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (m *MemoryKVStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Name returns "memory"
func (m *MemoryKVStore) Name() string {
	return "memory"
}

// FailWrites makes every subsequent Put return err. Pass nil to restore writes.
func (m *MemoryKVStore) FailWrites(err error) {
	m.mu.Lock()
	m.failPut = err
	m.mu.Unlock()
}

// Keys returns the stored keys (for testing assertions)
func (m *MemoryKVStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys
}
