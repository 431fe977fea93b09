// Package wishlist holds the item list, the commands that mutate it and the
// bridge that keeps it in sync with a durable slot.
package wishlist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/wishlist/internal/errs"
	"github.com/Makepad-fr/wishlist/internal/model"
)

// Store is the ordered, in-memory list of items. It is owned by a single
// event loop and does no locking.
type Store struct {
	items []model.Item
	newID func() string
	// every id handed out or hydrated this session
	used map[string]struct{}
}

type Option func(*Store)

// WithIDFunc replaces the id generator (random UUIDs by default).
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		items: []model.Item{},
		newID: uuid.NewString,
		used:  map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items returns a copy of the list in display order.
func (s *Store) Items() []model.Item {
	return append([]model.Item(nil), s.items...)
}

func (s *Store) Len() int { return len(s.items) }

// Replace swaps the whole list, as hydration does.
func (s *Store) Replace(items []model.Item) {
	s.items = append([]model.Item{}, items...)
	for _, it := range items {
		s.used[it.ID] = struct{}{}
	}
}

// Add appends a new item with trimmed text. Blank text fails with an
// EMPTY_INPUT error and leaves the list untouched.
func (s *Store) Add(rawText string) (model.Item, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return model.Item{}, errs.EmptyInput()
	}
	it := model.Item{ID: s.freshID(), Text: text}
	s.items = append(s.items, it)
	return it, nil
}

// Toggle flips the completed flag of the item with id. Unknown ids are ignored.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	return true
}

// Delete removes the item with id, keeping the order of the rest. Unknown ids are ignored.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true
}

// Find returns the item with id.
func (s *Store) Find(id string) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// freshID never hands out an id twice in a session, even with a
// deterministic generator.
func (s *Store) freshID() string {
	for {
		id := s.newID()
		if _, taken := s.used[id]; id != "" && !taken {
			s.used[id] = struct{}{}
			return id
		}
	}
}
