// Package memstore is an in-memory slot. It keeps the encoded snapshot
// rather than the items so it behaves like a real key-value entry.
package memstore

import (
	"github.com/Makepad-fr/wishlist/internal/model"
	"github.com/Makepad-fr/wishlist/internal/store"
)

type Slot struct {
	raw     []byte
	present bool
	writes  int

	// SaveErr, when set, is returned by Save and nothing is written.
	SaveErr error
}

func New() *Slot {
	return &Slot{}
}

// Seed stores raw bytes as the slot content, valid or not.
func Seed(raw string) *Slot {
	return &Slot{raw: []byte(raw), present: true}
}

func (s *Slot) Load() ([]model.Item, error) {
	if !s.present {
		return []model.Item{}, nil
	}
	return store.Decode(s.raw)
}

func (s *Slot) Save(items []model.Item) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	b, err := store.Encode(items)
	if err != nil {
		return err
	}
	s.raw, s.present = b, true
	s.writes++
	return nil
}

// Raw returns the current slot content and whether the slot exists.
func (s *Slot) Raw() (string, bool) {
	return string(s.raw), s.present
}

// Writes counts successful saves.
func (s *Slot) Writes() int {
	return s.writes
}
