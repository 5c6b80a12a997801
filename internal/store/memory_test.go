package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"
)

// memoryRepository is an in-memory [KeyValueRepository] used by the
// keystore and tokenstore tests.
type memoryRepository struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{data: make(map[string]map[string][]byte)}
}

func (m *memoryRepository) Get(_ context.Context, collection, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[collection][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrValueNotFound, collection, name)
	}
	return bytes.Clone(value), nil
}

func (m *memoryRepository) GetAll(_ context.Context, collection string) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.data[collection]))
	for name, value := range m.data[collection] {
		out[name] = bytes.Clone(value)
	}
	return out, nil
}

func (m *memoryRepository) Apply(_ context.Context, collection string, set map[string][]byte, remove []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[collection] == nil {
		m.data[collection] = make(map[string][]byte)
	}
	for name, value := range set {
		m.data[collection][name] = bytes.Clone(value)
	}
	for _, name := range remove {
		delete(m.data[collection], name)
	}
	return nil
}

// staticAccount is a fixed-answer [Account] for tests.
type staticAccount struct {
	primary    bool
	registered bool
}

func (a staticAccount) IsPrimaryDevice() bool           { return a.primary }
func (a staticAccount) IsRegisteredPrimaryDevice() bool { return a.primary && a.registered }
func (a staticAccount) IsRegisteredAndReady() bool      { return a.registered }
