package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Meter renders a value as a filled share of a total
type Meter struct {
	Width   int
	Current int
	Total   int
}

// NewMeter creates a meter width cells wide
func NewMeter(width int) *Meter {
	return &Meter{Width: width}
}

// Set updates the value and the total it is measured against
func (m *Meter) Set(current, total int) {
	m.Current = current
	m.Total = total
}

// Ratio returns the filled share, clamped to [0, 1]
func (m *Meter) Ratio() float64 {
	if m.Total <= 0 || m.Current <= 0 {
		return 0
	}
	r := float64(m.Current) / float64(m.Total)
	if r > 1 {
		r = 1
	}
	return r
}

// Render renders the meter
func (m *Meter) Render(p Palette) string {
	filledStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(p.Muted)

	filled := int(float64(m.Width) * m.Ratio())
	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", m.Width-filled))

	return fmt.Sprintf("[%s] %3d", bar, m.Current)
}
