package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvFormatter writes the hero list, or the active hero's abilities when a profile is loaded
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	var rows [][]string
	if report.HasProfile() {
		rows = append(rows, []string{"Hero ID", "Ability", "Points"})
		for _, name := range report.Profile.Abilities() {
			rows = append(rows, []string{report.HeroID, name, strconv.Itoa(report.Profile[name])})
		}
	} else {
		rows = append(rows, []string{"ID", "Name", "Image"})
		for _, h := range report.Heroes {
			rows = append(rows, []string{h.ID, h.Name, h.Image})
		}
	}

	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			if i == 0 {
				return nil, fmt.Errorf("failed to write CSV headers: %w", err)
			}
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
