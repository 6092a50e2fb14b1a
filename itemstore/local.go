package itemstore

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hupe1980/clipcache/model"
)

// LocalStore implements Store using the local file system. Each item gets
// a directory named after its id; each tag becomes one file inside it.
// Tags are path-escaped so MIME-style tags ("text/plain") are safe file
// names. A codec suffix is appended when compression is enabled.
type LocalStore struct {
	root  string
	codec Codec
}

// NewLocalStore creates a LocalStore rooted at the given directory.
// If codec is nil, blobs are stored uncompressed.
func NewLocalStore(root string, codec Codec) *LocalStore {
	if codec == nil {
		codec = IdentityCodec{}
	}
	return &LocalStore{root: root, codec: codec}
}

func (s *LocalStore) path(id model.ItemID, tag model.TypeTag) string {
	name := url.PathEscape(string(tag))
	if suffix := s.codec.Name(); suffix != "" {
		name += "." + suffix
	}
	return filepath.Join(s.root, strconv.FormatUint(uint64(id), 10), name)
}

// Load reads and decodes the blob for (id, tag).
func (s *LocalStore) Load(_ context.Context, id model.ItemID, tag model.TypeTag) ([]byte, error) {
	data, err := os.ReadFile(s.path(id, tag))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.codec.Decode(data)
}

// Put encodes and writes the blob for (id, tag).
func (s *LocalStore) Put(_ context.Context, id model.ItemID, tag model.TypeTag, data []byte) error {
	encoded, err := s.codec.Encode(data)
	if err != nil {
		return err
	}

	path := s.path(id, tag)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Write to a temp file and rename so readers never observe a partial blob.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the blob for (id, tag). Missing blobs are ignored.
func (s *LocalStore) Delete(_ context.Context, id model.ItemID, tag model.TypeTag) error {
	err := os.Remove(s.path(id, tag))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// List returns the tags stored for id.
func (s *LocalStore) List(_ context.Context, id model.ItemID) ([]model.TypeTag, error) {
	dir := filepath.Join(s.root, strconv.FormatUint(uint64(id), 10))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	suffix := ""
	if name := s.codec.Name(); name != "" {
		suffix = "." + name
	}

	var tags []model.TypeTag
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if suffix != "" {
			if len(name) <= len(suffix) || name[len(name)-len(suffix):] != suffix {
				continue
			}
			name = name[:len(name)-len(suffix)]
		}
		tag, err := url.PathUnescape(name)
		if err != nil {
			continue
		}
		tags = append(tags, model.TypeTag(tag))
	}
	return tags, nil
}
