// Package s3 provides an itemstore.Store backed by AWS S3.
//
// Example:
//
//	store, _ := s3store.NewFromDefaultConfig(ctx, "my-bucket", "clipboard/")
//	cache, _ := clipcache.New(store)
package s3
