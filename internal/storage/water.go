// ABOUTME: Daily water intake counter for SQLite storage.
// ABOUTME: One accumulating row per calendar day.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LogWater adds consumed milliliters to the day's counter.
func (d *DB) LogWater(day time.Time, ml int) error {
	if ml <= 0 {
		return fmt.Errorf("log water: amount must be positive, got %d", ml)
	}

	query := `
		INSERT INTO water_intake (day, consumed_ml, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			consumed_ml = consumed_ml + excluded.consumed_ml,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query, dayKey(day), ml, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("log water: %w", err)
	}
	return nil
}

// WaterConsumed returns the total logged for a day. A day with no log
// reads as zero, not an error.
func (d *DB) WaterConsumed(day time.Time) (int, error) {
	var consumed int
	err := d.db.QueryRow(
		"SELECT consumed_ml FROM water_intake WHERE day = ?", dayKey(day),
	).Scan(&consumed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("water consumed: %w", err)
	}
	return consumed, nil
}

// waterEntries returns every day's counter, oldest first.
func (d *DB) waterEntries() ([]WaterEntry, error) {
	rows, err := d.db.Query("SELECT day, consumed_ml FROM water_intake ORDER BY day ASC")
	if err != nil {
		return nil, fmt.Errorf("list water intake: %w", err)
	}
	defer rows.Close()

	var entries []WaterEntry
	for rows.Next() {
		var e WaterEntry
		if err := rows.Scan(&e.Day, &e.ConsumedML); err != nil {
			return nil, fmt.Errorf("scan water intake: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
