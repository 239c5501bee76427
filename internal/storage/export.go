// ABOUTME: Export and import functionality for beastmode data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/beastmode/internal/models"
	"gopkg.in/yaml.v3"
)

// WaterEntry is one day's consumed-water counter in an export.
type WaterEntry struct {
	Day        string `json:"day" yaml:"day"`
	ConsumedML int    `json:"consumed_ml" yaml:"consumed_ml"`
}

// ExportData represents the full export format.
type ExportData struct {
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	Tool       string          `json:"tool" yaml:"tool"`
	Profile    *models.Profile `json:"profile,omitempty" yaml:"profile,omitempty"`
	Cycles     []*models.Cycle `json:"cycles" yaml:"cycles"`
	Water      []WaterEntry    `json:"water" yaml:"water"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "beastmode",
	}

	profile, err := d.GetProfile()
	if err == nil {
		data.Profile = profile
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	cycles, err := d.ListCycles()
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	data.Cycles = cycles

	water, err := d.waterEntries()
	if err != nil {
		return nil, err
	}
	data.Water = water

	return data, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	if data.Profile != nil {
		if err := d.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}

	for _, c := range data.Cycles {
		if err := d.CreateCycle(c); err != nil {
			return fmt.Errorf("import cycle: %w", err)
		}
	}

	for _, w := range data.Water {
		day, err := time.Parse(cycleDateFormat, w.Day)
		if err != nil {
			return fmt.Errorf("import water day %q: %w", w.Day, err)
		}
		if w.ConsumedML <= 0 {
			continue
		}
		if err := d.LogWater(day, w.ConsumedML); err != nil {
			return fmt.Errorf("import water: %w", err)
		}
	}

	return nil
}

// RenderJSON renders an export as indented JSON.
func RenderJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// RenderYAML renders an export as YAML with display-friendly records.
func RenderYAML(data *ExportData) ([]byte, error) {
	out := struct {
		Version    string       `yaml:"version"`
		ExportedAt string       `yaml:"exported_at"`
		Tool       string       `yaml:"tool"`
		Profile    *yamlProfile `yaml:"profile,omitempty"`
		Cycles     []yamlCycle  `yaml:"cycles"`
		Water      []WaterEntry `yaml:"water,omitempty"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Water:      data.Water,
	}

	if data.Profile != nil {
		out.Profile = &yamlProfile{
			Name:         data.Profile.Name,
			Age:          data.Profile.Age,
			WeightKg:     data.Profile.WeightKg,
			HeightCm:     data.Profile.HeightCm,
			Gender:       string(data.Profile.Gender),
			Goal:         string(data.Profile.Goal),
			Level:        string(data.Profile.Level),
			TrainingDays: data.Profile.TrainingDays,
			VIP:          data.Profile.VIP,
		}
	}

	for _, c := range data.Cycles {
		yc := yamlCycle{
			ID:            c.ID.String()[:8],
			Compound:      c.Compound,
			Dosage:        c.Dosage,
			Frequency:     c.Frequency,
			StartDate:     c.StartDate.Format(cycleDateFormat),
			DurationWeeks: c.DurationWeeks,
		}
		if c.Notes != nil {
			yc.Notes = *c.Notes
		}
		out.Cycles = append(out.Cycles, yc)
	}

	return yaml.Marshal(out)
}

type yamlProfile struct {
	Name         string  `yaml:"name"`
	Age          int     `yaml:"age"`
	WeightKg     float64 `yaml:"weight_kg"`
	HeightCm     float64 `yaml:"height_cm"`
	Gender       string  `yaml:"gender"`
	Goal         string  `yaml:"goal"`
	Level        string  `yaml:"level"`
	TrainingDays int     `yaml:"training_days"`
	VIP          bool    `yaml:"vip,omitempty"`
}

type yamlCycle struct {
	ID            string `yaml:"id"`
	Compound      string `yaml:"compound"`
	Dosage        string `yaml:"dosage"`
	Frequency     string `yaml:"frequency"`
	StartDate     string `yaml:"start_date"`
	DurationWeeks int    `yaml:"duration_weeks"`
	Notes         string `yaml:"notes,omitempty"`
}

// RenderMarkdown renders an export as human-readable Markdown.
func RenderMarkdown(data *ExportData, asOf time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Beastmode Export - %s\n\n", asOf.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	if p := data.Profile; p != nil {
		sb.WriteString("## Profile\n\n")
		sb.WriteString(fmt.Sprintf("- Name: %s\n", p.Name))
		sb.WriteString(fmt.Sprintf("- Age: %d\n", p.Age))
		sb.WriteString(fmt.Sprintf("- Weight: %.1f kg\n", p.WeightKg))
		sb.WriteString(fmt.Sprintf("- Height: %.1f cm\n", p.HeightCm))
		sb.WriteString(fmt.Sprintf("- Gender: %s\n", p.Gender))
		sb.WriteString(fmt.Sprintf("- Goal: %s\n", p.Goal))
		sb.WriteString(fmt.Sprintf("- Level: %s\n", p.Level))
		sb.WriteString(fmt.Sprintf("- Training days: %d/week\n\n", p.TrainingDays))
	}

	if len(data.Cycles) > 0 {
		sb.WriteString("## Cycles\n\n")
		sb.WriteString("| Compound | Dosage | Frequency | Start | Weeks | Progress |\n")
		sb.WriteString("|----------|--------|-----------|-------|-------|----------|\n")
		for _, c := range data.Cycles {
			progress := c.Progress(asOf)
			state := fmt.Sprintf("%d%%", progress.PercentComplete)
			if progress.DaysRemaining == 0 {
				state = "finished"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d | %s |\n",
				c.Compound, c.Dosage, c.Frequency,
				c.StartDate.Format(cycleDateFormat), c.DurationWeeks, state))
		}
		sb.WriteString("\n")
	}

	if len(data.Water) > 0 {
		sb.WriteString("## Water Intake\n\n")
		sb.WriteString("| Day | Consumed |\n")
		sb.WriteString("|-----|----------|\n")
		for _, w := range data.Water {
			sb.WriteString(fmt.Sprintf("| %s | %d ml |\n", w.Day, w.ConsumedML))
		}
	}

	return sb.String()
}

// ParseJSON decodes export JSON bytes.
func ParseJSON(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &data, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
