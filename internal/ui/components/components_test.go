package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/heroboard/internal/hero"
)

var testPalette = Palette{
	Primary:  lipgloss.Color("1"),
	Muted:    lipgloss.Color("2"),
	Selected: lipgloss.Color("3"),
	Accent:   lipgloss.Color("4"),
	Warning:  lipgloss.Color("5"),
}

func heroes() []hero.Summary {
	return []hero.Summary{
		{ID: "1", Name: "Daredevil"},
		{ID: "2", Name: "Thor"},
		{ID: "3", Name: "Iron Man"},
	}
}

func TestHeroList_Navigation(t *testing.T) {
	l := NewHeroList("Heroes", 40, 10)
	l.SetItems(heroes())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected)

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	h, ok := l.SelectedHero()
	require.True(t, ok)
	assert.Equal(t, "3", h.ID)
}

func TestHeroList_SetItemsKeepsCursor(t *testing.T) {
	l := NewHeroList("Heroes", 40, 10)
	l.SetItems(heroes())
	require.True(t, l.SelectID("2"))

	l.SetItems([]hero.Summary{{ID: "9", Name: "Hulk"}, {ID: "2", Name: "Thor"}})
	h, _ := l.SelectedHero()
	assert.Equal(t, "2", h.ID)

	assert.False(t, l.SelectID("404"))
}

func TestHeroList_Search(t *testing.T) {
	l := NewHeroList("Heroes", 40, 10)
	l.SetItems(heroes())

	l.SetSearch("MAN")
	assert.Equal(t, 1, l.Len())
	h, ok := l.SelectedHero()
	require.True(t, ok)
	assert.Equal(t, "Iron Man", h.Name)

	l.SetSearch("nobody")
	_, ok = l.SelectedHero()
	assert.False(t, ok)
	assert.Contains(t, l.Render(testPalette, ""), "No heroes")
}

func TestHeroList_RenderScrolls(t *testing.T) {
	l := NewHeroList("Heroes", 40, 5) // one visible row
	l.SetItems(heroes())
	l.MoveDown()

	out := l.Render(testPalette, "")
	assert.Contains(t, out, "Thor")
	assert.NotContains(t, out, "Daredevil")
	assert.Contains(t, out, "(2-2 of 3)")
}

func TestMeter(t *testing.T) {
	m := NewMeter(10)

	m.Set(5, 10)
	assert.InDelta(t, 0.5, m.Ratio(), 1e-9)

	m.Set(15, 10)
	assert.InDelta(t, 1.0, m.Ratio(), 1e-9)

	m.Set(3, 0)
	assert.Zero(t, m.Ratio())
	assert.Contains(t, m.Render(testPalette), "  3")
}

func TestAbilityEditor(t *testing.T) {
	p := hero.Profile{"str": 2, "int": 3}
	e := NewAbilityEditor(10)
	e.Reset("1", p)
	assert.Equal(t, 5, e.Budget)

	name, ok := e.SelectedAbility(p)
	require.True(t, ok)
	assert.Equal(t, "str", name)

	_, err := e.Adjust(p, 1)
	require.Error(t, err)

	p, err = e.Adjust(p, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Remaining(p))

	e.MoveDown(p)
	e.MoveDown(p)
	p, err = e.Adjust(p, 1)
	require.NoError(t, err)
	assert.Equal(t, hero.Profile{"str": 1, "int": 4}, p)

	out := e.Render(testPalette, p, func(s string) string { return s })
	assert.Contains(t, out, "Remaining points: 0 / 5")

	e.Reset("2", hero.Profile{"luk": 1})
	assert.Zero(t, e.Selected, "cursor resets for a new hero")
}

func TestAbilityEditor_Empty(t *testing.T) {
	e := NewAbilityEditor(10)
	_, err := e.Adjust(hero.Profile{}, 1)
	require.Error(t, err)
	assert.Contains(t, e.Render(testPalette, nil, func(s string) string { return s }), "No abilities")
}
