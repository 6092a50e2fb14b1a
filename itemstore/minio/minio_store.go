package minio

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/clipcache/itemstore"
	"github.com/hupe1980/clipcache/model"
)

// Store implements itemstore.Store for MinIO and S3-compatible storage.
// Object keys have the form "<prefix>/<item-id>/<escaped-tag>".
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO item store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "clipboard/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(id model.ItemID, tag model.TypeTag) string {
	return path.Join(s.prefix, strconv.FormatUint(uint64(id), 10), url.PathEscape(string(tag)))
}

func (s *Store) itemPrefix(id model.ItemID) string {
	return path.Join(s.prefix, strconv.FormatUint(uint64(id), 10)) + "/"
}

// Load reads the object for (id, tag).
func (s *Store) Load(ctx context.Context, id model.ItemID, tag model.TypeTag) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(id, tag), minio.GetObjectOptions{})
	if err != nil {
		return nil, translateError(err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, translateError(err)
	}
	return data, nil
}

// Put writes the object for (id, tag) atomically.
func (s *Store) Put(ctx context.Context, id model.ItemID, tag model.TypeTag, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(id, tag), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	return err
}

// Delete removes the object for (id, tag). Missing objects are ignored.
func (s *Store) Delete(ctx context.Context, id model.ItemID, tag model.TypeTag) error {
	return s.client.RemoveObject(ctx, s.bucket, s.key(id, tag), minio.RemoveObjectOptions{})
}

// List returns the tags stored for id.
func (s *Store) List(ctx context.Context, id model.ItemID) ([]model.TypeTag, error) {
	prefix := s.itemPrefix(id)

	var tags []model.TypeTag
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		tag, err := url.PathUnescape(name)
		if err != nil {
			continue
		}
		tags = append(tags, model.TypeTag(tag))
	}
	return tags, nil
}

func translateError(err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
		return itemstore.ErrNotFound
	}
	return err
}
