package itemstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx, 1, "text/plain")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("hello")))

	got, err := s.Load(ctx, 1, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	// Mutating the returned slice must not affect the stored blob.
	got[0] = 'X'
	got2, err := s.Load(ctx, 1, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got2)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("hello")))
	require.NoError(t, s.Delete(ctx, 1, "text/plain"))

	_, err := s.Load(ctx, 1, "text/plain")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete(ctx, 1, "text/plain"))
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("a")))
	require.NoError(t, s.Put(ctx, 1, "text/html", []byte("b")))
	require.NoError(t, s.Put(ctx, 2, "image/png", []byte("c")))

	tags, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"text/plain", "text/html"}, toStrings(tags))

	tags, err = s.List(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
