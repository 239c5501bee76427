// ABOUTME: Cycle model for user-logged time-bounded regimens.
// ABOUTME: Computes days-remaining and percent-complete from the start date.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Cycle is a user-entered regimen record tracked for elapsed and
// remaining duration. A finished cycle stays in the list until the
// owner deletes it.
type Cycle struct {
	ID            uuid.UUID `json:"id"`
	Compound      string    `json:"compound"`
	Dosage        string    `json:"dosage"`
	Frequency     string    `json:"frequency"`
	StartDate     time.Time `json:"start_date"`
	DurationWeeks int       `json:"duration_weeks"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewCycle creates a new Cycle with generated UUID and current timestamp.
func NewCycle(compound, dosage, frequency string, start time.Time, weeks int) *Cycle {
	return &Cycle{
		ID:            uuid.New(),
		Compound:      compound,
		Dosage:        dosage,
		Frequency:     frequency,
		StartDate:     start,
		DurationWeeks: weeks,
		CreatedAt:     time.Now(),
	}
}

// WithNotes sets notes on the cycle.
func (c *Cycle) WithNotes(notes string) *Cycle {
	c.Notes = &notes
	return c
}

// Validate reports every missing required field. No record is created
// from an invalid draft.
func (c *Cycle) Validate() error {
	var missing []string
	if c.Compound == "" {
		missing = append(missing, "compound")
	}
	if c.Dosage == "" {
		missing = append(missing, "dosage")
	}
	if c.Frequency == "" {
		missing = append(missing, "frequency")
	}
	if c.StartDate.IsZero() {
		missing = append(missing, "start date")
	}
	if c.DurationWeeks <= 0 {
		missing = append(missing, "duration")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// EndDate returns the start date plus the cycle's duration.
func (c *Cycle) EndDate() time.Time {
	return c.StartDate.AddDate(0, 0, c.DurationWeeks*7)
}

// CycleProgress is the elapsed/remaining state of a cycle at a point
// in time.
type CycleProgress struct {
	DaysRemaining   int
	PercentComplete int
}

// Progress computes the cycle's state as of the given date. Taking the
// date as an argument instead of reading the clock keeps this
// deterministic.
func (c *Cycle) Progress(asOf time.Time) CycleProgress {
	total := c.DurationWeeks * 7
	remaining := int(math.Ceil(c.EndDate().Sub(asOf).Hours() / 24))
	if remaining < 0 {
		remaining = 0
	}
	percent := int(math.Round(100 * float64(total-remaining) / float64(total)))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return CycleProgress{DaysRemaining: remaining, PercentComplete: percent}
}

// Finished reports whether the cycle's end date has passed.
func (c *Cycle) Finished(asOf time.Time) bool {
	return c.Progress(asOf).DaysRemaining == 0
}
