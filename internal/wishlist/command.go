package wishlist

import (
	"github.com/Makepad-fr/wishlist/internal/errs"
	"github.com/Makepad-fr/wishlist/internal/model"
)

const (
	MsgItemAdded   = "Item added to wishlist!"
	MsgItemRemoved = "Item removed"
)

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient message shown to the user after a command.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Result describes what a command did to the list.
type Result struct {
	// Changed is set when the list was mutated and must be saved.
	Changed bool
	// Item is the added, toggled or removed item, when there was one.
	Item   model.Item
	Notice *Notice
}

// Command is one user action applied to a Store.
type Command interface {
	Name() string
	apply(s *Store) (Result, error)
}

type AddItem struct {
	Text string
}

type ToggleItem struct {
	ID string
}

type DeleteItem struct {
	ID string
}

func (AddItem) Name() string    { return "add" }
func (ToggleItem) Name() string { return "toggle" }
func (DeleteItem) Name() string { return "delete" }

func (c AddItem) apply(s *Store) (Result, error) {
	it, err := s.Add(c.Text)
	if err != nil {
		return Result{Notice: &Notice{Kind: NoticeError, Text: errs.Message(err)}}, err
	}
	return Result{Changed: true, Item: it, Notice: &Notice{Kind: NoticeSuccess, Text: MsgItemAdded}}, nil
}

// Toggle never produces a notice.
func (c ToggleItem) apply(s *Store) (Result, error) {
	if !s.Toggle(c.ID) {
		return Result{}, nil
	}
	it, _ := s.Find(c.ID)
	return Result{Changed: true, Item: it}, nil
}

func (c DeleteItem) apply(s *Store) (Result, error) {
	it, ok := s.Find(c.ID)
	if !ok || !s.Delete(c.ID) {
		return Result{}, nil
	}
	return Result{Changed: true, Item: it, Notice: &Notice{Kind: NoticeSuccess, Text: MsgItemRemoved}}, nil
}
