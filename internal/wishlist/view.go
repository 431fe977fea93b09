package wishlist

import (
	"fmt"

	"github.com/Makepad-fr/wishlist/internal/model"
)

const (
	Title       = "My Wishlist"
	Tagline     = "Keep track of everything you wish for"
	Placeholder = "Add a new wish..."
	EmptyTitle  = "Your wishlist is empty"
	EmptyHint   = "Start adding items you wish for!"
)

// Summary is the footer line, e.g. "1 of 2 items obtained". It is empty
// for an empty list, which hides the footer.
func Summary(items []model.Item) string {
	done, total := model.Counts(items)
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d items obtained", done, total)
}
