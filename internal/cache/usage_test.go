package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/clipcache/model"
)

func TestOrder_EvictsLeastRecentlyUsed(t *testing.T) {
	o := NewOrder()

	o.RecordUse(1, "text/plain")
	o.RecordUse(2, "text/plain")
	o.RecordUse(3, "text/plain")

	key, ok := o.EvictOldest()
	assert.True(t, ok)
	assert.Equal(t, model.Key{ID: 1, Tag: "text/plain"}, key)

	key, ok = o.EvictOldest()
	assert.True(t, ok)
	assert.Equal(t, model.Key{ID: 2, Tag: "text/plain"}, key)

	assert.Equal(t, 1, o.Len())
}

func TestOrder_RecordUseMovesToFront(t *testing.T) {
	o := NewOrder()

	o.RecordUse(1, "text/plain")
	o.RecordUse(2, "text/plain")

	// Touch 1 again; 2 becomes the oldest.
	o.RecordUse(1, "text/plain")

	key, ok := o.EvictOldest()
	assert.True(t, ok)
	assert.Equal(t, model.ItemID(2), key.ID)
}

func TestOrder_NoDuplicatePairs(t *testing.T) {
	o := NewOrder()

	o.RecordUse(1, "text/plain")
	o.RecordUse(1, "text/plain")
	o.RecordUse(1, "text/plain")

	assert.Equal(t, 1, o.Len())
}

func TestOrder_TagsAreDistinctPairs(t *testing.T) {
	o := NewOrder()

	o.RecordUse(1, "text/plain")
	o.RecordUse(1, "image/png")

	assert.Equal(t, 2, o.Len())

	key, ok := o.EvictOldest()
	assert.True(t, ok)
	assert.Equal(t, model.Key{ID: 1, Tag: "text/plain"}, key)
}

func TestOrder_RemoveAll(t *testing.T) {
	o := NewOrder()

	o.RecordUse(1, "text/plain")
	o.RecordUse(2, "text/plain")
	o.RecordUse(1, "image/png")
	o.RecordUse(3, "text/plain")

	o.RemoveAll(1)

	assert.Equal(t, 2, o.Len())
	assert.False(t, o.Contains(1, "text/plain"))
	assert.False(t, o.Contains(1, "image/png"))
	assert.True(t, o.Contains(2, "text/plain"))

	// Order of the remaining pairs is preserved.
	key, ok := o.EvictOldest()
	assert.True(t, ok)
	assert.Equal(t, model.ItemID(2), key.ID)
}

func TestOrder_EvictOldestEmpty(t *testing.T) {
	o := NewOrder()

	_, ok := o.EvictOldest()
	assert.False(t, ok)
}
