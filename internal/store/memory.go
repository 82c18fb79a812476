package store

import "sync"

// MemoryStore is an in-process KeyValueStore used by tests and the
// non-persistent dev mode. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(namespace, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[namespace+"/"+key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (m *MemoryStore) Set(namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.data[namespace+"/"+key] = copied
	return nil
}

func (m *MemoryStore) Delete(namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, namespace+"/"+key)
	return nil
}
