package itemstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clipcache/model"
)

func toStrings(tags []model.TypeTag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = string(tag)
	}
	return out
}

func TestLocalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir(), nil)

	_, err := s.Load(ctx, 1, "text/plain")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("hello")))

	got, err := s.Load(ctx, 1, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestLocalStore_TagEscaping(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir(), nil)

	// Slashes in MIME tags must not create nested directories.
	require.NoError(t, s.Put(ctx, 1, "application/x-qt-windows-mime;value=\"Csv\"", []byte("x")))

	tags, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"application/x-qt-windows-mime;value=\"Csv\""}, toStrings(tags))
}

func TestLocalStore_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir(), nil)

	require.NoError(t, s.Put(ctx, 1, "text/plain", []byte("a")))
	require.NoError(t, s.Put(ctx, 1, "text/html", []byte("b")))

	require.NoError(t, s.Delete(ctx, 1, "text/plain"))
	require.NoError(t, s.Delete(ctx, 1, "text/plain")) // idempotent

	tags, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"text/html"}, toStrings(tags))

	// Unknown item lists empty.
	tags, err = s.List(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestLocalStore_WithZstdCodec(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir(), ZstdCodec{})

	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 7)
	}

	require.NoError(t, s.Put(ctx, 1, "image/png", payload))

	got, err := s.Load(ctx, 1, "image/png")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	tags, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"image/png"}, toStrings(tags))
}
