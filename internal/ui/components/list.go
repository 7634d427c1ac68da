package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/heroboard/internal/hero"
)

// Palette carries the theme colors components render with
type Palette struct {
	Primary  lipgloss.TerminalColor
	Muted    lipgloss.TerminalColor
	Selected lipgloss.TerminalColor
	Accent   lipgloss.TerminalColor
	Warning  lipgloss.TerminalColor
}

// HeroList represents a navigable, searchable hero list
type HeroList struct {
	Title       string
	Items       []hero.Summary
	Selected    int
	Width       int
	Height      int
	ShowNumbers bool
	searchQuery string
	filtered    []int // indices into Items
}

// NewHeroList creates a new list component
func NewHeroList(title string, width, height int) *HeroList {
	return &HeroList{
		Title:       title,
		Width:       width,
		Height:      height,
		ShowNumbers: true,
	}
}

// SetItems replaces the list contents, keeping the cursor on the same hero when it survives
func (l *HeroList) SetItems(items []hero.Summary) {
	current, hadCurrent := l.SelectedHero()
	l.Items = items
	l.Selected = 0
	l.updateFilter()
	if hadCurrent {
		l.SelectID(current.ID)
	}
}

// SelectID moves the cursor to the hero with id, if it is visible
func (l *HeroList) SelectID(id string) bool {
	for i, idx := range l.filtered {
		if l.Items[idx].ID == id {
			l.Selected = i
			return true
		}
	}
	return false
}

// SelectedHero returns the hero under the cursor
func (l *HeroList) SelectedHero() (hero.Summary, bool) {
	if l.Selected < 0 || l.Selected >= len(l.filtered) {
		return hero.Summary{}, false
	}
	return l.Items[l.filtered[l.Selected]], true
}

// Len returns the number of visible heroes
func (l *HeroList) Len() int {
	return len(l.filtered)
}

// MoveUp moves selection up
func (l *HeroList) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *HeroList) MoveDown() {
	if l.Selected < len(l.filtered)-1 {
		l.Selected++
	}
}

// SetSearch sets the search query and filters items
func (l *HeroList) SetSearch(query string) {
	l.searchQuery = query
	l.Selected = 0
	l.updateFilter()
}

// SearchQuery returns the active search query
func (l *HeroList) SearchQuery() string {
	return l.searchQuery
}

func (l *HeroList) updateFilter() {
	l.filtered = l.filtered[:0]
	query := strings.ToLower(l.searchQuery)
	for i, item := range l.Items {
		if query == "" ||
			strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.ID), query) {
			l.filtered = append(l.filtered, i)
		}
	}
}

// Render renders the list. activeID marks the hero whose profile is open.
func (l *HeroList) Render(p Palette, activeID string) string {
	headerStyle := lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(p.Muted)

	content := []string{headerStyle.Render(l.Title)}
	if l.searchQuery != "" {
		content = append(content, mutedStyle.Render(
			fmt.Sprintf("Search: %s (%d results)", l.searchQuery, len(l.filtered))))
	}
	content = append(content, "")

	if len(l.filtered) == 0 {
		content = append(content, mutedStyle.Render("No heroes"))
		return lipgloss.JoinVertical(lipgloss.Left, content...)
	}

	maxVisible := l.Height - 4
	if maxVisible < 1 {
		maxVisible = 1
	}

	start := 0
	if l.Selected >= maxVisible {
		start = l.Selected - maxVisible + 1
	}
	end := min(start+maxVisible, len(l.filtered))

	for i := start; i < end; i++ {
		item := l.Items[l.filtered[i]]
		content = append(content, l.renderItem(p, item, i+1, i == l.Selected, item.ID == activeID))
	}

	if len(l.filtered) > maxVisible {
		content = append(content, "", mutedStyle.Render(
			fmt.Sprintf("(%d-%d of %d)", start+1, end, len(l.filtered))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (l *HeroList) renderItem(p Palette, item hero.Summary, number int, selected, active bool) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(p.Muted)
	if active {
		style = style.Foreground(p.Accent)
	}
	if selected {
		prefix = "▶ "
		style = lipgloss.NewStyle().Background(p.Selected).Foreground(p.Primary).Bold(true)
	}

	line := prefix
	if l.ShowNumbers {
		line += fmt.Sprintf("%2d. ", number)
	}
	line += item.Name

	if l.Width > 4 {
		style = style.Width(l.Width - 4)
	}
	return style.Render(line)
}
