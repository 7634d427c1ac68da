package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, report.Title)

	if report.Error != "" {
		fmt.Fprintf(&b, "%s %s\n\n", symbol("error", f.opts), report.Error)
	}

	f.writeHeroes(&b, report)

	if report.HasProfile() {
		f.writeProfile(&b, report)
	}

	return []byte(b.String()), nil
}

// writeHeader writes the page title in a box
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	if title == "" {
		title = "Heroes"
	}
	width := lipgloss.Width(title)

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

// writeHeroes writes the hero list as a tree, marking the active hero
func (f *terminalFormatter) writeHeroes(b *strings.Builder, report *Report) {
	fmt.Fprintf(b, "%s Heroes (%d)\n", symbol("list", f.opts), len(report.Heroes))

	if len(report.Heroes) == 0 {
		b.WriteString("└─ (none)\n\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(report.Heroes))
	for i, h := range report.Heroes {
		label := h.Name
		if h.ID == report.HeroID {
			label = symbol("selected", f.opts) + " " + label
		}
		items = append(items, termfmt.TreeItem{
			Label: label,
			Value: "#" + h.ID,
			Last:  i == len(report.Heroes)-1,
		})
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeProfile writes the active hero's abilities with a bar per ability
func (f *terminalFormatter) writeProfile(b *strings.Builder, report *Report) {
	fmt.Fprintf(b, "%s %s\n", symbol("profile", f.opts), report.HeroName())

	abilities := report.Profile.Abilities()
	items := make([]termfmt.TreeItem, 0, len(abilities)+1)
	for _, name := range abilities {
		points := report.Profile[name]
		items = append(items, termfmt.TreeItem{
			Label: abilityLabel(name, f.opts),
			Value: fmt.Sprintf("%3d %s", points, createAbilityBar(points, report.Profile, f.opts)),
		})
	}
	items = append(items, termfmt.TreeItem{
		Label: "Total",
		Value: fmt.Sprintf("%d", report.Profile.Total()),
		Last:  true,
	})

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}
