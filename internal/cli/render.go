package cli

import (
	"fmt"

	"github.com/Makepad-fr/wishlist/internal/model"
	"github.com/Makepad-fr/wishlist/internal/ui"
	"github.com/Makepad-fr/wishlist/internal/wishlist"
)

type listOptions struct {
	Group bool // list grouped by wished/obtained
	IDs   bool
}

const maxTextWidth = 80

func renderList(items []model.Item, opt listOptions) string {
	t := ui.Current()
	done, total := model.Counts(items)

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(wishlist.Title),
		t.Success.Render(t.SymOK), done,
		t.Pending.Render("•"), total-done,
		t.Accent.Render("Total"), total,
	)

	lines := []string{header, t.Muted.Render(wishlist.Tagline), ""}

	if total == 0 {
		lines = append(lines,
			t.Muted.Render(wishlist.EmptyTitle),
			t.Help.Render(wishlist.EmptyHint),
			"",
			t.Help.Render("Tip: add with `wishlist add \"Go to Japan\"`"),
		)
		return ui.Panel(lines)
	}

	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, total, 28)), "")
	if opt.Group {
		lines = append(lines, groupLines(items, opt)...)
	} else {
		lines = append(lines, itemLines(items, indexes(len(items)), opt)...)
	}
	lines = append(lines, "", t.Muted.Render(wishlist.Summary(items)))
	return ui.Panel(lines)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// itemLines renders items with their 1-based positions in the full list.
func itemLines(items []model.Item, pos []int, opt listOptions) []string {
	t := ui.Current()
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", pos[i])
		box := t.Muted.Render(t.BoxUnchecked)
		text := ui.Truncate(it.Text, maxTextWidth)
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		line := fmt.Sprintf("%s %s %s", t.Help.Render(idx), box, text)
		if opt.IDs {
			line += "  " + t.Help.Render(it.ID)
		}
		out = append(out, line)
	}
	return out
}

func groupLines(items []model.Item, opt listOptions) []string {
	var wished, obtained []model.Item
	var wishedPos, obtainedPos []int
	for i, it := range items {
		if it.Completed {
			obtained = append(obtained, it)
			obtainedPos = append(obtainedPos, i+1)
		} else {
			wished = append(wished, it)
			wishedPos = append(wishedPos, i+1)
		}
	}
	t := ui.Current()
	section := func(title string, its []model.Item, pos []int) []string {
		lines := []string{t.Accent.Render(title)}
		if len(its) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, itemLines(its, pos, opt)...)
	}

	lines := section("Wished", wished, wishedPos)
	lines = append(lines, "")
	return append(lines, section("Obtained", obtained, obtainedPos)...)
}
