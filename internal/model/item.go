package model

// Item is a single wishlist entry. Field names match the durable JSON format.
type Item struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text" validate:"required,notblank"`
	Completed bool   `json:"completed"`
}

// Counts returns how many items are completed and the total.
func Counts(items []Item) (completed, total int) {
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}
	return completed, len(items)
}
