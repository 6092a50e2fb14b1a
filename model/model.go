// Package model defines the identity types shared across clipcache.
//
//   - ItemID: unique identifier for a logical item (uint64)
//   - TypeTag: format discriminator for one representation of an item's data
//   - Key: the (ItemID, TypeTag) pair addressing a single blob
package model

// ItemID identifies a logical item, for example one clipboard record.
type ItemID uint64

// TypeTag discriminates a representation of an item's data, such as a
// MIME type ("text/plain", "image/png").
type TypeTag string

// Key addresses one blob: the item it belongs to and the representation
// it carries.
type Key struct {
	ID  ItemID
	Tag TypeTag
}
