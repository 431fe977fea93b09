// Package tui is the interactive wishlist. Every key action becomes a
// wishlist command dispatched through the bridge, which saves before the
// next frame is drawn.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/wishlist/internal/errs"
	"github.com/Makepad-fr/wishlist/internal/logger"
	"github.com/Makepad-fr/wishlist/internal/ui"
	"github.com/Makepad-fr/wishlist/internal/wishlist"
)

const defaultNoticeTTL = 2 * time.Second

type Options struct {
	NoticeTTL time.Duration
	Log       *logger.Logger
}

// clearNoticeMsg expires the notice with the same sequence number.
type clearNoticeMsg struct{ seq int }

type Model struct {
	bridge *wishlist.Bridge
	log    *logger.Logger
	keys   keyMap

	list   list.Model
	input  textinput.Model
	help   help.Model
	adding bool

	notice    *wishlist.Notice
	noticeSeq int
	noticeTTL time.Duration

	width, height int
}

// New hydrates the bridge if needed and builds the initial view.
func New(b *wishlist.Bridge, opt Options) Model {
	b.Hydrate()

	if opt.NoticeTTL <= 0 {
		opt.NoticeTTL = defaultNoticeTTL
	}
	if opt.Log == nil {
		opt.Log = logger.NewNop()
	}
	keys := defaultKeys()

	l := list.New(toListItems(b.Items()), itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("wish", "wishes")
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	// "d" removes an item here, not next page
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")
	l.AdditionalShortHelpKeys = keys.listKeys
	l.AdditionalFullHelpKeys = keys.listKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = wishlist.Placeholder
	ti.CharLimit = 200

	return Model{
		bridge:    b,
		log:       opt.Log.WithComponent("tui"),
		keys:      keys,
		list:      l,
		input:     ti,
		help:      help.New(),
		noticeTTL: opt.NoticeTTL,
		width:     80,
		height:    24,
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(b *wishlist.Bridge, opt Options) error {
	p := tea.NewProgram(New(b, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.Add):
			m.adding = true
			m.input.Reset()
			m.resize()
			return m, m.input.Focus()
		case key.Matches(k, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				cmd, _ := m.dispatch(wishlist.ToggleItem{ID: it.ID})
				return m, cmd
			}
			return m, nil
		case key.Matches(k, m.keys.Delete):
			if it, ok := m.selected(); ok {
				cmd, _ := m.dispatch(wishlist.DeleteItem{ID: it.ID})
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			cmd, err := m.dispatch(wishlist.AddItem{Text: m.input.Value()})
			if err == nil {
				m.input.Reset()
				if n := len(m.list.Items()); n > 0 {
					m.list.Select(n - 1)
				}
			}
			return m, cmd
		case key.Matches(k, m.keys.Cancel):
			m.adding = false
			m.input.Reset()
			m.input.Blur()
			m.resize()
			return m, nil
		case k.String() == "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs c through the bridge, refreshes the list and shows the
// resulting notice, if any.
func (m *Model) dispatch(c wishlist.Command) (tea.Cmd, error) {
	res, err := m.bridge.Dispatch(c)
	if err != nil {
		m.log.Debugw("command failed", "command", c.Name(), "error", err)
		if res.Notice == nil {
			res.Notice = &wishlist.Notice{Kind: wishlist.NoticeError, Text: errs.Message(err)}
		}
	}

	cmds := []tea.Cmd{m.refresh()}
	if res.Notice != nil {
		cmds = append(cmds, m.flash(*res.Notice))
	}
	return tea.Batch(cmds...), err
}

func (m *Model) refresh() tea.Cmd {
	items := m.bridge.Items()
	cmd := m.list.SetItems(toListItems(items))
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m *Model) flash(n wishlist.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	seq := m.noticeSeq
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// rows used by everything but the list: header, notice, footer, border
func (m Model) chrome() int {
	rows := 2 + 1 + 1 + 1 + 2 + 2
	if m.adding {
		rows += 4
	}
	return rows
}

func (m *Model) resize() {
	h := m.height - m.chrome()
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 4
	m.help.Width = w
}

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	b.WriteString(t.Title.Render(wishlist.Title) + "\n")
	b.WriteString(t.Muted.Render(wishlist.Tagline) + "\n\n")

	if m.adding {
		box := lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1)
		b.WriteString(box.Render(m.input.View()+"\n"+m.help.ShortHelpView(m.keys.inputKeys())) + "\n")
	}

	items := m.bridge.Items()
	if len(items) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			t.Muted.Render(wishlist.EmptyTitle),
			t.Help.Render(wishlist.EmptyHint),
		)
		b.WriteString(empty + "\n")
		if !m.adding {
			b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{m.keys.Add, m.keys.Quit}) + "\n")
		}
	} else {
		b.WriteString(m.list.View() + "\n")
	}

	b.WriteString("\n")
	if m.notice != nil {
		style := t.Success
		sym := t.SymOK
		if m.notice.Kind == wishlist.NoticeError {
			style, sym = t.Error, t.SymFail
		}
		b.WriteString(style.Render(sym + " " + m.notice.Text))
	}
	b.WriteString("\n")

	if s := wishlist.Summary(items); s != "" {
		b.WriteString(t.Muted.Render(s))
	}

	return ui.Panel([]string{strings.TrimRight(b.String(), "\n")})
}
