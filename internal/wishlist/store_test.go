package wishlist

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/wishlist/internal/errs"
	"github.com/Makepad-fr/wishlist/internal/model"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func TestAddAppendsWithUniqueIDs(t *testing.T) {
	s := NewStore()
	texts := []string{"Go to Japan", "Learn piano", "Buy a bike", "Go to Japan"}
	for _, text := range texts {
		_, err := s.Add(text)
		require.NoError(t, err)
	}

	items := s.Items()
	require.Len(t, items, len(texts))
	seen := map[string]bool{}
	for i, it := range items {
		assert.Equal(t, texts[i], it.Text)
		assert.False(t, it.Completed)
		assert.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestAddTrims(t *testing.T) {
	s := NewStore()
	it, err := s.Add(" Buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", it.Text)
	assert.Equal(t, "Buy milk", s.Items()[0].Text)
}

func TestAddRejectsBlank(t *testing.T) {
	s := NewStore()
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(raw)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.CodeEmptyInput))
	}
	assert.Equal(t, 0, s.Len())
}

func TestFreshIDSkipsCollisions(t *testing.T) {
	ids := []string{"x", "x", "", "y", "x", "z"}
	i := 0
	s := NewStore(WithIDFunc(func() string {
		id := ids[i]
		i++
		return id
	}))

	a, _ := s.Add("a")
	b, _ := s.Add("b")
	require.True(t, s.Delete("x"))
	c, _ := s.Add("c")

	assert.Equal(t, "x", a.ID)
	assert.Equal(t, "y", b.ID)
	assert.Equal(t, "z", c.ID, "ids of deleted items are not reused")
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	s := NewStore(WithIDFunc(counterIDs()))
	s.Add("a")
	s.Add("b")
	s.Add("c")
	before := s.Items()

	require.True(t, s.Toggle("2"))
	after := s.Items()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.True(t, after[1].Completed)
	assert.Equal(t, before[1].Text, after[1].Text)

	require.True(t, s.Toggle("2"))
	assert.Equal(t, before, s.Items())
}

func TestToggleUnknownIsNoop(t *testing.T) {
	s := NewStore(WithIDFunc(counterIDs()))
	s.Add("a")
	before := s.Items()

	assert.False(t, s.Toggle("missing"))
	assert.Equal(t, before, s.Items())
}

func TestDeletePreservesOrder(t *testing.T) {
	s := NewStore(WithIDFunc(counterIDs()))
	s.Add("a")
	s.Add("b")
	s.Add("c")

	require.True(t, s.Delete("2"))
	assert.Equal(t, []model.Item{{ID: "1", Text: "a"}, {ID: "3", Text: "c"}}, s.Items())

	assert.False(t, s.Delete("2"))
	assert.Equal(t, 2, s.Len())

	s.Delete("1")
	s.Delete("3")
	assert.Empty(t, s.Items())
	assert.Empty(t, Summary(s.Items()))
}

func TestItemsIsACopy(t *testing.T) {
	s := NewStore(WithIDFunc(counterIDs()))
	s.Add("a")

	items := s.Items()
	items[0].Text = "changed"
	assert.Equal(t, "a", s.Items()[0].Text)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", Summary(nil))
	assert.Equal(t, "0 of 1 items obtained", Summary([]model.Item{{ID: "1", Text: "a"}}))
	assert.Equal(t, "1 of 2 items obtained", Summary([]model.Item{
		{ID: "1", Text: "a", Completed: true},
		{ID: "2", Text: "b"},
	}))
}
