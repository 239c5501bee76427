// ABOUTME: Data migration between beastmode storage backends.
// ABOUTME: Copies the profile, cycles, and water log from source to destination.

package storage

import (
	"fmt"
	"os"
	"time"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Profile bool
	Cycles  int
	Water   int
}

// MigrateData copies all data from src to dst storage. The
// destination should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	data, err := src.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("read source data: %w", err)
	}

	if data.Profile != nil {
		if err := dst.SaveProfile(data.Profile); err != nil {
			return nil, fmt.Errorf("migrate profile: %w", err)
		}
		summary.Profile = true
	}

	for _, c := range data.Cycles {
		if err := dst.CreateCycle(c); err != nil {
			return nil, fmt.Errorf("migrate cycle %s: %w", c.ID, err)
		}
		summary.Cycles++
	}

	for _, w := range data.Water {
		day, err := time.Parse(cycleDateFormat, w.Day)
		if err != nil {
			return nil, fmt.Errorf("parse water day %q: %w", w.Day, err)
		}
		if w.ConsumedML <= 0 {
			continue
		}
		if err := dst.LogWater(day, w.ConsumedML); err != nil {
			return nil, fmt.Errorf("migrate water %s: %w", w.Day, err)
		}
		summary.Water++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
