package cache

import (
	"container/list"

	"github.com/hupe1980/clipcache/model"
)

// Order tracks the recency of cached (item, tag) pairs. The front of the
// list is the most recently used pair; eviction takes from the back.
// Each pair appears at most once.
type Order struct {
	ll    *list.List
	index map[model.Key]*list.Element
}

// NewOrder creates an empty recency order.
func NewOrder() *Order {
	return &Order{
		ll:    list.New(),
		index: make(map[model.Key]*list.Element),
	}
}

// RecordUse marks (id, tag) as most recently used, appending a new record
// if the pair is not yet tracked.
func (o *Order) RecordUse(id model.ItemID, tag model.TypeTag) {
	key := model.Key{ID: id, Tag: tag}
	if el, ok := o.index[key]; ok {
		o.ll.MoveToFront(el)
		return
	}
	o.index[key] = o.ll.PushFront(key)
}

// EvictOldest removes and returns the least recently used pair. The
// second return is false if the order is empty.
func (o *Order) EvictOldest() (model.Key, bool) {
	el := o.ll.Back()
	if el == nil {
		return model.Key{}, false
	}
	key := el.Value.(model.Key)
	o.ll.Remove(el)
	delete(o.index, key)
	return key, true
}

// RemoveAll drops every record belonging to id.
func (o *Order) RemoveAll(id model.ItemID) {
	var toRemove []*list.Element
	for key, el := range o.index {
		if key.ID == id {
			toRemove = append(toRemove, el)
		}
	}
	for _, el := range toRemove {
		key := el.Value.(model.Key)
		o.ll.Remove(el)
		delete(o.index, key)
	}
}

// Contains reports whether (id, tag) is tracked.
func (o *Order) Contains(id model.ItemID, tag model.TypeTag) bool {
	_, ok := o.index[model.Key{ID: id, Tag: tag}]
	return ok
}

// Len returns the number of tracked pairs.
func (o *Order) Len() int {
	return o.ll.Len()
}
