package itemstore

import (
	"context"
	"os"

	"github.com/hupe1980/clipcache/model"
)

// ErrNotFound is returned when no data exists for an (item, tag) pair.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Loader supplies raw item data from durable storage. Load may block on
// I/O; absence of data is reported via ErrNotFound and is not a failure.
type Loader interface {
	// Load returns the bytes stored for (id, tag).
	Load(ctx context.Context, id model.ItemID, tag model.TypeTag) ([]byte, error)
}

// Store is a read-write backing store for item data.
type Store interface {
	Loader

	// Put writes the bytes for (id, tag), replacing any previous value.
	Put(ctx context.Context, id model.ItemID, tag model.TypeTag, data []byte) error

	// Delete removes the data for (id, tag). Deleting a missing pair is a no-op.
	Delete(ctx context.Context, id model.ItemID, tag model.TypeTag) error

	// List returns the tags stored for id, in unspecified order.
	List(ctx context.Context, id model.ItemID) ([]model.TypeTag, error)
}
