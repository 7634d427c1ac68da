package formatter

import (
	"fmt"
	"strings"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	title := report.Title
	if title == "" {
		title = "Heroes"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if report.Error != "" {
		fmt.Fprintf(&b, "> **Error:** %s\n\n", escapeMarkdown(report.Error))
	}

	f.writeHeroTable(&b, report)

	if report.HasProfile() {
		f.writeProfileTable(&b, report)
	}

	return []byte(b.String()), nil
}

// writeHeroTable writes the hero list as a table
func (f *markdownFormatter) writeHeroTable(b *strings.Builder, report *Report) {
	b.WriteString("## Heroes\n\n")
	if len(report.Heroes) == 0 {
		b.WriteString("_No heroes loaded._\n\n")
		return
	}

	b.WriteString("| ID | Name | Image |\n")
	b.WriteString("|----|------|-------|\n")
	for _, h := range report.Heroes {
		name := escapeMarkdown(h.Name)
		if h.ID == report.HeroID {
			name = "**" + name + "**"
		}
		image := ""
		if h.Image != "" {
			image = fmt.Sprintf("![%s](%s)", escapeMarkdown(h.Name), h.Image)
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n", escapeMarkdown(h.ID), name, image)
	}
	b.WriteString("\n")
}

// writeProfileTable writes the active hero's abilities as a table
func (f *markdownFormatter) writeProfileTable(b *strings.Builder, report *Report) {
	fmt.Fprintf(b, "## %s\n\n", escapeMarkdown(report.HeroName()))
	b.WriteString("| Ability | Points |\n")
	b.WriteString("|---------|-------:|\n")
	for _, name := range report.Profile.Abilities() {
		fmt.Fprintf(b, "| %s | %d |\n", escapeMarkdown(name), report.Profile[name])
	}
	fmt.Fprintf(b, "| **Total** | **%d** |\n", report.Profile.Total())
}

// escapeMarkdown keeps table cells intact
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
