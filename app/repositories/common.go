package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	// File names of the JSON documents inside the data directory
	GalleryFile  = "gallery.json"
	ProductsFile = "products.json"

	// Badger keys holding each document
	GalleryKey  = "collection:gallery"
	ProductsKey = "collection:products"
)

var emptyCollection = []byte("[]")

// marshalCollection encodes a collection as an indented JSON array
func marshalCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}
	return data, nil
}

// unmarshalCollection decodes a JSON array. A blank document is an empty collection.
func unmarshalCollection[T any](data []byte) ([]T, error) {
	items := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
