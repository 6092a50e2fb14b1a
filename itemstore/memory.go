package itemstore

import (
	"context"
	"sync"

	"github.com/hupe1980/clipcache/model"
)

// MemoryStore is an in-memory Store implementation for testing. It keeps
// blobs in a map without any filesystem dependency. Thread-safe for
// concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[model.Key][]byte
}

// NewMemoryStore creates a new in-memory item store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[model.Key][]byte),
	}
}

// Load returns the bytes stored for (id, tag).
func (m *MemoryStore) Load(_ context.Context, id model.ItemID, tag model.TypeTag) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[model.Key{ID: id, Tag: tag}]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Put writes the bytes for (id, tag).
func (m *MemoryStore) Put(_ context.Context, id model.ItemID, tag model.TypeTag, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[model.Key{ID: id, Tag: tag}] = copied
	return nil
}

// Delete removes the data for (id, tag).
func (m *MemoryStore) Delete(_ context.Context, id model.ItemID, tag model.TypeTag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, model.Key{ID: id, Tag: tag})
	return nil
}

// List returns the tags stored for id.
func (m *MemoryStore) List(_ context.Context, id model.ItemID) ([]model.TypeTag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tags []model.TypeTag
	for key := range m.blobs {
		if key.ID == id {
			tags = append(tags, key.Tag)
		}
	}
	return tags, nil
}
