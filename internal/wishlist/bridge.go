package wishlist

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/Makepad-fr/wishlist/internal/errs"
	"github.com/Makepad-fr/wishlist/internal/logger"
	"github.com/Makepad-fr/wishlist/internal/model"
)

// Slot is the durable key-value entry holding the full snapshot.
type Slot interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

type State int

const (
	StateUninitialized State = iota
	StateHydrated
)

func (s State) String() string {
	switch s {
	case StateHydrated:
		return "hydrated"
	default:
		return "uninitialized"
	}
}

// Bridge owns a Store and writes a snapshot to its Slot after every change.
type Bridge struct {
	slot     Slot
	store    *Store
	log      *logger.Logger
	validate *validator.Validate
	state    State
}

func NewBridge(slot Slot, store *Store, log *logger.Logger) *Bridge {
	if store == nil {
		store = NewStore()
	}
	if log == nil {
		log = logger.NewNop()
	}
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Bridge{
		slot:     slot,
		store:    store,
		log:      log.WithComponent("bridge"),
		validate: v,
	}
}

func (b *Bridge) State() State { return b.state }

// Items returns the current list.
func (b *Bridge) Items() []model.Item { return b.store.Items() }

// Hydrate loads the slot into the store. It runs once; later calls do
// nothing. A missing, unreadable or invalid snapshot leaves the list empty.
func (b *Bridge) Hydrate() {
	if b.state == StateHydrated {
		return
	}
	b.state = StateHydrated

	items, err := b.slot.Load()
	if err != nil {
		b.log.WithError(err).Warnw("discarding unreadable snapshot")
		b.store.Replace(nil)
		return
	}
	if err := b.check(items); err != nil {
		b.log.WithError(err).Warnw("discarding invalid snapshot", "items", len(items))
		b.store.Replace(nil)
		return
	}
	b.store.Replace(items)
	b.log.Infow("hydrated", "items", len(items))
}

func (b *Bridge) check(items []model.Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if err := b.validate.Struct(it); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

// Dispatch applies cmd and, if the list changed, saves the new snapshot
// before returning. When the save fails the change is undone so memory
// never runs ahead of the slot.
func (b *Bridge) Dispatch(cmd Command) (Result, error) {
	if b.state != StateHydrated {
		return Result{}, errs.NotHydrated()
	}

	before := b.store.Items()
	res, err := cmd.apply(b.store)
	if err != nil {
		b.log.Debugw("command rejected", "command", cmd.Name(), "error", err)
		return res, err
	}
	if !res.Changed {
		b.log.Debugw("command had no effect", "command", cmd.Name())
		return res, nil
	}

	if err := b.slot.Save(b.store.Items()); err != nil {
		b.store.Replace(before)
		b.log.WithError(err).Errorw("save failed, change rolled back", "command", cmd.Name())
		perr := errs.Persist(err)
		return Result{Notice: &Notice{Kind: NoticeError, Text: perr.Message}}, perr
	}
	b.log.Debugw("command applied", "command", cmd.Name(), "id", res.Item.ID, "items", b.store.Len())
	return res, nil
}
