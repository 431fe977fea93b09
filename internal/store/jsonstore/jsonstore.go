package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/wishlist/internal/model"
	"github.com/Makepad-fr/wishlist/internal/store"
)

// JSON-backed slot. One file per key, human-readable, portable.
// No locking; a wishlist has a single local user.

// Slot is a named durable slot stored as <dir>/<key>.json.
type Slot struct {
	dir string
	key string
}

func New(dir, key string) *Slot {
	if key == "" {
		key = store.DefaultKey
	}
	return &Slot{dir: dir, key: key}
}

// Path returns the file backing the slot.
func (s *Slot) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Load reads the slot. A missing file is an empty list, not an error.
func (s *Slot) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return store.Decode(b)
}

// Save overwrites the slot with a full snapshot. The file is replaced
// atomically so readers never see a partial write.
func (s *Slot) Save(items []model.Item) error {
	b, err := store.Encode(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+s.key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
