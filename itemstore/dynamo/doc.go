// Package dynamo provides an itemstore.Store backed by a DynamoDB table,
// one row per (item, tag). Intended for small blobs; DynamoDB caps items
// at 400 KB.
package dynamo
