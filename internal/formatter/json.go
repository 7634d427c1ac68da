package formatter

import (
	"encoding/json"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	output := &JSONOutput{
		Title:  report.Title,
		Heroes: make([]*HeroOutput, 0, len(report.Heroes)),
		Error:  report.Error,
	}

	for _, h := range report.Heroes {
		output.Heroes = append(output.Heroes, &HeroOutput{
			ID:     h.ID,
			Name:   h.Name,
			Image:  h.Image,
			Active: h.ID == report.HeroID,
		})
	}

	if report.HasProfile() {
		output.Profile = &ProfileOutput{
			HeroID:    report.HeroID,
			Name:      report.HeroName(),
			Abilities: make([]*AbilityOutput, 0, len(report.Profile)),
			Total:     report.Profile.Total(),
		}
		for _, name := range report.Profile.Abilities() {
			output.Profile.Abilities = append(output.Profile.Abilities, &AbilityOutput{
				Name:   name,
				Points: report.Profile[name],
			})
		}
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Title   string         `json:"title"`
	Heroes  []*HeroOutput  `json:"heroes"`
	Profile *ProfileOutput `json:"profile,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// HeroOutput represents one hero list entry
type HeroOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Active bool   `json:"active,omitempty"`
}

// ProfileOutput represents the active hero's abilities in display order
type ProfileOutput struct {
	HeroID    string           `json:"hero_id"`
	Name      string           `json:"name"`
	Abilities []*AbilityOutput `json:"abilities"`
	Total     int              `json:"total"`
}

// AbilityOutput represents one ability score
type AbilityOutput struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}
