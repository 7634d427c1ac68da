package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/heroboard/internal/hero"
)

// AbilityEditor moves points between a hero's abilities within a fixed budget.
// The profile itself lives in the store; the editor only tracks the cursor
// and the budget of the last fetched profile.
type AbilityEditor struct {
	HeroID   string
	Budget   int
	Selected int
	BarWidth int
}

// NewAbilityEditor creates an editor with bars barWidth cells wide
func NewAbilityEditor(barWidth int) *AbilityEditor {
	return &AbilityEditor{BarWidth: barWidth}
}

// Reset adopts a freshly fetched profile as the budget
func (e *AbilityEditor) Reset(heroID string, p hero.Profile) {
	if heroID != e.HeroID {
		e.Selected = 0
	}
	e.HeroID = heroID
	e.Budget = p.Total()
}

// MoveUp moves the cursor to the previous ability
func (e *AbilityEditor) MoveUp() {
	if e.Selected > 0 {
		e.Selected--
	}
}

// MoveDown moves the cursor to the next ability of p
func (e *AbilityEditor) MoveDown(p hero.Profile) {
	if e.Selected < len(p)-1 {
		e.Selected++
	}
}

// SelectedAbility returns the ability under the cursor
func (e *AbilityEditor) SelectedAbility(p hero.Profile) (string, bool) {
	names := p.Abilities()
	if e.Selected < 0 || e.Selected >= len(names) {
		return "", false
	}
	return names[e.Selected], true
}

// Adjust returns p with the selected ability moved by delta
func (e *AbilityEditor) Adjust(p hero.Profile, delta int) (hero.Profile, error) {
	name, ok := e.SelectedAbility(p)
	if !ok {
		return nil, fmt.Errorf("no ability selected")
	}
	return p.Adjust(name, delta, e.Budget)
}

// Remaining returns the points left to spend
func (e *AbilityEditor) Remaining(p hero.Profile) int {
	return p.Remaining(e.Budget)
}

// Render renders the abilities of p with a meter each
func (e *AbilityEditor) Render(pal Palette, p hero.Profile, label func(string) string) string {
	if p.IsEmpty() {
		return lipgloss.NewStyle().Foreground(pal.Muted).Render("No abilities")
	}

	lines := make([]string, 0, len(p)+2)
	for i, name := range p.Abilities() {
		meter := NewMeter(e.BarWidth)
		meter.Set(p[name], e.Budget)

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(pal.Muted)
		if i == e.Selected {
			prefix = "▶ "
			style = lipgloss.NewStyle().Background(pal.Selected).Foreground(pal.Primary).Bold(true)
		}

		lines = append(lines, style.Render(fmt.Sprintf("%s%-8s", prefix, label(name)))+" "+meter.Render(pal))
	}

	remaining := e.Remaining(p)
	remainingStyle := lipgloss.NewStyle().Foreground(pal.Primary)
	if remaining > 0 {
		remainingStyle = remainingStyle.Foreground(pal.Warning).Bold(true)
	}
	lines = append(lines, "", remainingStyle.Render(fmt.Sprintf("Remaining points: %d / %d", remaining, e.Budget)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
