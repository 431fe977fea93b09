// Package store holds the durable format of a wishlist snapshot and the
// slot backends that keep it.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/Makepad-fr/wishlist/internal/model"
)

// DefaultKey is the name of the slot when none is configured.
const DefaultKey = "wishlist"

// Encode serializes a full snapshot as a JSON array.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a snapshot. Anything that is not a JSON array of items is an error.
func Decode(b []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
