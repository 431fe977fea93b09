package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/wishlist/internal/store/memstore"
	"github.com/Makepad-fr/wishlist/internal/wishlist"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func newModel(t *testing.T, slot *memstore.Slot) Model {
	t.Helper()
	b := wishlist.NewBridge(slot, nil, nil)
	m := New(b, Options{NoticeTTL: time.Second})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewHydratesFromSlot(t *testing.T) {
	slot := memstore.Seed(`[{"id":"1","text":"Go to Japan","completed":true}]`)
	m := newModel(t, slot)

	assert.Equal(t, wishlist.StateHydrated, m.bridge.State())
	assert.Len(t, m.list.Items(), 1)
	assert.Contains(t, m.View(), "Go to Japan")
	assert.Contains(t, m.View(), "1 of 1 items obtained")
}

func TestEmptyState(t *testing.T) {
	m := newModel(t, memstore.New())

	view := m.View()
	assert.Contains(t, view, "Your wishlist is empty")
	assert.Contains(t, view, "Start adding items you wish for!")
	assert.NotContains(t, view, "items obtained")
}

func TestAddFlow(t *testing.T) {
	slot := memstore.New()
	m := newModel(t, slot)

	m = send(t, m, runes("a"))
	require.True(t, m.adding)

	m = send(t, m, runes("  Go to Japan "), enter)
	assert.True(t, m.adding, "input stays open for the next wish")
	assert.Empty(t, m.input.Value())
	require.NotNil(t, m.notice)
	assert.Equal(t, "Item added to wishlist!", m.notice.Text)

	items := m.bridge.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Go to Japan", items[0].Text)
	assert.Equal(t, 1, slot.Writes())

	m = send(t, m, esc)
	assert.False(t, m.adding)
}

func TestAddEmptyShowsError(t *testing.T) {
	slot := memstore.New()
	m := newModel(t, slot)

	m = send(t, m, runes("a"), runes("   "), enter)

	require.NotNil(t, m.notice)
	assert.Equal(t, wishlist.NoticeError, m.notice.Kind)
	assert.Equal(t, "Please enter an item", m.notice.Text)
	assert.Contains(t, m.View(), "Please enter an item")
	assert.Empty(t, m.bridge.Items())
	assert.Equal(t, 0, slot.Writes())
}

func TestToggleAndDelete(t *testing.T) {
	slot := memstore.Seed(`[{"id":"1","text":"Go to Japan"},{"id":"2","text":"Learn piano"}]`)
	m := newModel(t, slot)

	m = send(t, m, space)
	items := m.bridge.Items()
	assert.True(t, items[0].Completed)
	assert.False(t, items[1].Completed)
	assert.Nil(t, m.notice, "toggle shows no notice")
	assert.Contains(t, m.View(), "1 of 2 items obtained")

	m = send(t, m, down, runes("d"))
	items = m.bridge.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	require.NotNil(t, m.notice)
	assert.Equal(t, "Item removed", m.notice.Text)
	assert.Equal(t, 0, m.list.Index())

	m = send(t, m, runes("d"))
	assert.Empty(t, m.bridge.Items())
	assert.Contains(t, m.View(), "Your wishlist is empty")

	persisted, err := slot.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestKeysOnEmptyListAreNoops(t *testing.T) {
	slot := memstore.New()
	m := newModel(t, slot)

	m = send(t, m, space, runes("d"))
	assert.Nil(t, m.notice)
	assert.Equal(t, 0, slot.Writes())
}

func TestSaveFailureShowsError(t *testing.T) {
	slot := memstore.Seed(`[{"id":"1","text":"Go to Japan"}]`)
	m := newModel(t, slot)
	slot.SaveErr = errors.New("read-only")

	m = send(t, m, space)
	require.NotNil(t, m.notice)
	assert.Equal(t, "Could not save wishlist", m.notice.Text)
	assert.False(t, m.bridge.Items()[0].Completed)
}

func TestNoticeExpiresOnlyForLatest(t *testing.T) {
	m := newModel(t, memstore.New())

	m = send(t, m, runes("a"), runes("one"), enter)
	first := m.noticeSeq
	m = send(t, m, runes("two"), enter)

	m = send(t, m, clearNoticeMsg{seq: first})
	assert.NotNil(t, m.notice, "stale timer must not clear a newer notice")

	m = send(t, m, clearNoticeMsg{seq: m.noticeSeq})
	assert.Nil(t, m.notice)
}

func TestQuit(t *testing.T) {
	m := newModel(t, memstore.New())
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestReloadAfterSession(t *testing.T) {
	slot := memstore.New()
	m := newModel(t, slot)
	m = send(t, m, runes("a"), runes("Go to Japan"), enter, runes("Learn piano"), enter, esc)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, space)

	reloaded := newModel(t, slot)
	items := reloaded.bridge.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Go to Japan", items[0].Text)
	assert.True(t, items[0].Completed)
	assert.False(t, items[1].Completed)
	assert.Contains(t, reloaded.View(), "1 of 2 items obtained")
}
