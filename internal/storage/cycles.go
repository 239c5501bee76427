// ABOUTME: Cycle CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for cycle records.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/beastmode/internal/models"
)

const cycleDateFormat = "2006-01-02"

// CreateCycle validates and stores a new cycle. An invalid draft
// creates nothing.
func (d *DB) CreateCycle(c *models.Cycle) error {
	if err := c.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO cycles (id, compound, dosage, frequency, start_date, duration_weeks, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		c.ID.String(),
		c.Compound,
		c.Dosage,
		c.Frequency,
		c.StartDate.Format(cycleDateFormat),
		c.DurationWeeks,
		c.Notes,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create cycle: %w", err)
	}
	return nil
}

// GetCycle retrieves a cycle by ID or ID prefix.
func (d *DB) GetCycle(idOrPrefix string) (*models.Cycle, error) {
	id, err := d.resolveCycleID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, compound, dosage, frequency, start_date, duration_weeks, notes, created_at
		FROM cycles
		WHERE id = ?
	`
	return scanCycle(d.db.QueryRow(query, id))
}

// ListCycles returns all cycles in insertion order. Finished cycles
// stay listed until deleted.
func (d *DB) ListCycles() ([]*models.Cycle, error) {
	query := `
		SELECT id, compound, dosage, frequency, start_date, duration_weeks, notes, created_at
		FROM cycles
		ORDER BY created_at ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*models.Cycle
	for rows.Next() {
		c, err := scanCycleRow(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// DeleteCycle removes a cycle by ID or prefix. Deleting an unknown id
// reports ErrNotFound rather than silently succeeding.
func (d *DB) DeleteCycle(idOrPrefix string) error {
	id, err := d.resolveCycleID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete cycle: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM cycles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete cycle: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cycle: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete cycle %s: %w", idOrPrefix, ErrNotFound)
	}

	return nil
}

// resolveCycleID finds the full ID from a prefix.
func (d *DB) resolveCycleID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM cycles WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve cycle ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan cycle ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("cycle %s: %w", idOrPrefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCycle(row *sql.Row) (*models.Cycle, error) {
	c, err := scanCycleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanCycleRow(row rowScanner) (*models.Cycle, error) {
	var c models.Cycle
	var idStr, startDate, createdAt string
	var notes sql.NullString

	err := row.Scan(&idStr, &c.Compound, &c.Dosage, &c.Frequency, &startDate, &c.DurationWeeks, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan cycle: %w", err)
	}

	c.ID, _ = uuid.Parse(idStr)
	c.StartDate, _ = time.Parse(cycleDateFormat, startDate)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		c.Notes = &notes.String
	}

	return &c, nil
}
