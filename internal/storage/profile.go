// ABOUTME: Profile persistence for SQLite storage.
// ABOUTME: A single upserted row holds the profile and the VIP flag.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/beastmode/internal/models"
)

// SaveProfile upserts the single profile row.
func (d *DB) SaveProfile(p *models.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (id, name, age, weight_kg, height_cm, gender, goal, level, training_days, vip, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			weight_kg = excluded.weight_kg,
			height_cm = excluded.height_cm,
			gender = excluded.gender,
			goal = excluded.goal,
			level = excluded.level,
			training_days = excluded.training_days,
			vip = excluded.vip,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		p.Name,
		p.Age,
		p.WeightKg,
		p.HeightCm,
		string(p.Gender),
		string(p.Goal),
		string(p.Level),
		p.TrainingDays,
		boolToInt(p.VIP),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the stored profile, or ErrNotFound if none is set.
func (d *DB) GetProfile() (*models.Profile, error) {
	query := `
		SELECT name, age, weight_kg, height_cm, gender, goal, level, training_days, vip
		FROM profiles
		WHERE id = 1
	`
	var p models.Profile
	var gender, goal, level string
	var vip int

	err := d.db.QueryRow(query).Scan(
		&p.Name, &p.Age, &p.WeightKg, &p.HeightCm,
		&gender, &goal, &level, &p.TrainingDays, &vip,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Gender = models.Gender(gender)
	p.Goal = models.Goal(goal)
	p.Level = models.Level(level)
	p.VIP = vip != 0
	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
