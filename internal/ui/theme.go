package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymOK, SymFail, Cursor   string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
}

var current = Named("classic")

// Named builds a theme; unknown names fall back to classic.
func Named(name string) Theme {
	base := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   base.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   base.Faint(true),
			Accent:  base.Foreground(lipgloss.Color("14")),
			Success: base.Foreground(lipgloss.Color("10")),
			Error:   base.Foreground(lipgloss.Color("9")).Bold(true),
			Pending: base.Foreground(lipgloss.Color("11")),
			Done:    base.Faint(true).Strikethrough(true),

			Selected:     base.Bold(true).Foreground(lipgloss.Color("13")),
			Help:         base.Faint(true),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖", Cursor: "❯ ",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		return Theme{
			Name:    "mono",
			Title:   base,
			Muted:   base,
			Accent:  base,
			Success: base,
			Error:   base,
			Pending: base,
			Done:    base,

			Selected:     base,
			Help:         base,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "ok", SymFail: "error:", Cursor: "> ",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
		}
	default:
		return Theme{
			Name:    "classic",
			Title:   base.Bold(true),
			Muted:   base.Faint(true),
			Accent:  base.Foreground(lipgloss.Color("12")),
			Success: base.Foreground(lipgloss.Color("42")),
			Error:   base.Foreground(lipgloss.Color("9")).Bold(true),
			Pending: base.Foreground(lipgloss.Color("214")),
			Done:    base.Faint(true).Strikethrough(true),

			Selected:     base.Bold(true).Reverse(true),
			Help:         base.Faint(true),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖", Cursor: "> ",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}

func SetTheme(name string) { current = Named(name) }

// Current returns the active theme.
func Current() Theme { return current }
