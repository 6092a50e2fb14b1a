package clipcache

import (
	"errors"
	"fmt"

	"github.com/hupe1980/clipcache/itemstore"
)

var (
	// ErrNotFound is returned by Fetch when neither the cache nor the
	// backing store has data for the requested (item, tag) pair.
	// A miss is an expected outcome, not a failure.
	ErrNotFound = itemstore.ErrNotFound

	// ErrClosed is returned by operations on a closed cache.
	ErrClosed = errors.New("cache is closed")

	// ErrNilLoader is returned by New when no backing-store loader is given.
	ErrNilLoader = errors.New("loader must not be nil")
)

// ErrInvalidCapacity indicates a non-positive cache capacity.
type ErrInvalidCapacity struct {
	Capacity int64
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid cache capacity: %d", e.Capacity)
}
