package cache

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/clipcache/model"
)

// Store owns the cached blobs, the registration set and the running byte
// total. Returned slices must be treated as read-only.
type Store struct {
	entries  map[model.ItemID]map[model.TypeTag][]byte
	registry *roaring64.Bitmap
	size     int64
	count    int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries:  make(map[model.ItemID]map[model.TypeTag][]byte),
		registry: roaring64.New(),
	}
}

// Lookup returns the cached blob for (id, tag) without side effects.
func (s *Store) Lookup(id model.ItemID, tag model.TypeTag) ([]byte, bool) {
	tags, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	b, ok := tags[tag]
	return b, ok
}

// Insert adds a blob for (id, tag) and grows the byte total. The caller
// must ensure id is registered; the store does not re-check. If an entry
// already exists for the pair it is replaced and the total adjusted.
func (s *Store) Insert(id model.ItemID, tag model.TypeTag, blob []byte) {
	tags, ok := s.entries[id]
	if !ok {
		tags = make(map[model.TypeTag][]byte)
		s.entries[id] = tags
	}
	if old, ok := tags[tag]; ok {
		s.size -= int64(len(old))
		s.count--
	}
	tags[tag] = blob
	s.size += int64(len(blob))
	s.count++
}

// Remove removes and returns the blob for (id, tag), shrinking the byte
// total. The second return is false if no entry was present.
func (s *Store) Remove(id model.ItemID, tag model.TypeTag) ([]byte, bool) {
	tags, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	b, ok := tags[tag]
	if !ok {
		return nil, false
	}
	delete(tags, tag)
	if len(tags) == 0 {
		delete(s.entries, id)
	}
	s.size -= int64(len(b))
	s.count--
	return b, true
}

// RegisterItem adds id to the registration set. Registering an already
// registered id is a no-op.
func (s *Store) RegisterItem(id model.ItemID) {
	s.registry.Add(uint64(id))
}

// UnregisterItem removes id from the registration set together with every
// cached entry it owns, and returns the total bytes freed. Unregistering
// an unknown id is a no-op returning 0.
func (s *Store) UnregisterItem(id model.ItemID) int64 {
	s.registry.Remove(uint64(id))

	tags, ok := s.entries[id]
	if !ok {
		return 0
	}
	var freed int64
	for _, b := range tags {
		freed += int64(len(b))
		s.count--
	}
	delete(s.entries, id)
	s.size -= freed
	return freed
}

// IsRegistered reports whether id is in the registration set.
func (s *Store) IsRegistered(id model.ItemID) bool {
	return s.registry.Contains(uint64(id))
}

// Size returns the sum of the sizes of all cached blobs in bytes.
func (s *Store) Size() int64 {
	return s.size
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	return s.count
}

// Keys returns the key of every cached entry, in unspecified order.
func (s *Store) Keys() []model.Key {
	keys := make([]model.Key, 0, s.count)
	for id, tags := range s.entries {
		for tag := range tags {
			keys = append(keys, model.Key{ID: id, Tag: tag})
		}
	}
	return keys
}

// Registered returns the number of registered items.
func (s *Store) Registered() int {
	return int(s.registry.GetCardinality())
}
