package formatter

import (
	"fmt"

	"github.com/yildizm/heroboard/internal/hero"
	"github.com/yildizm/heroboard/internal/store"
	"github.com/yildizm/heroboard/internal/view"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// Report is a snapshot of the page, ready for printing
type Report struct {
	Title   string
	Heroes  []hero.Summary
	HeroID  string
	Profile hero.Profile
	Error   string
}

// NewReport builds a report from the final store state and the derived view
func NewReport(s store.State, v view.State) *Report {
	r := &Report{
		Title:  v.Title,
		Heroes: append([]hero.Summary(nil), s.Heroes...),
		HeroID: v.ActiveHeroID,
		Error:  s.Error,
	}
	if v.HasActiveHero() {
		r.Profile = s.Ability.Clone()
	}
	return r
}

// HasProfile reports whether the report carries a hero's abilities
func (r *Report) HasProfile() bool {
	return r.HeroID != "" && !r.Profile.IsEmpty()
}

// HeroName returns the display name of the active hero, falling back to its id
func (r *Report) HeroName() string {
	for _, h := range r.Heroes {
		if h.ID == r.HeroID {
			return h.Name
		}
	}
	return r.HeroID
}

// New returns the formatter registered for format
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: text, json, markdown, csv)", format)
	}
}
