package storage

import (
	"context"
	"sync"
)

// Memory keeps snapshots in process memory. It is the default backend and the
// one used by tests; state lives only as long as the process.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemory builds an empty in-memory snapshot store.
func NewMemory() *Memory {
	return &Memory{snapshots: map[string][]byte{}}
}

func (m *Memory) Load(ctx context.Context, namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.snapshots[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (m *Memory) Save(ctx context.Context, namespace string, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[namespace] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, namespace)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}
