// Package minio provides an itemstore.Store backed by MinIO or any
// S3-compatible object storage.
//
// Example:
//
//	client, _ := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	})
//	store := miniostore.NewStore(client, "clipboard", "items/")
//	cache, _ := clipcache.New(store)
package minio
