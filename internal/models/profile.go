// ABOUTME: Profile model with the Gender, Goal, and Level enums.
// ABOUTME: Carries the anthropometrics every plan generator derives from.
package models

import (
	"fmt"
	"strings"
)

// Gender selects the basal-metabolic-rate formula branch.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Goal is the user's training objective. It keys every lookup table in
// the plan generators.
type Goal string

const (
	GoalLoseWeight    Goal = "lose-weight"
	GoalGainMuscle    Goal = "gain-muscle"
	GoalCut           Goal = "cut"
	GoalGeneralHealth Goal = "general-health"
)

// Level is the user's training experience.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllGenders returns all valid gender values.
var AllGenders = []Gender{GenderMale, GenderFemale}

// AllGoals returns all valid goal values.
var AllGoals = []Goal{GoalLoseWeight, GoalGainMuscle, GoalCut, GoalGeneralHealth}

// AllLevels returns all valid level values.
var AllLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseGender converts a string to a Gender, rejecting unknown values.
func ParseGender(s string) (Gender, error) {
	for _, g := range AllGenders {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("invalid gender %q (valid: male, female)", s)
}

// ParseGoal converts a string to a Goal, rejecting unknown values.
func ParseGoal(s string) (Goal, error) {
	for _, g := range AllGoals {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("invalid goal %q (valid: lose-weight, gain-muscle, cut, general-health)", s)
}

// ParseLevel converts a string to a Level, rejecting unknown values.
func ParseLevel(s string) (Level, error) {
	for _, l := range AllLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid level %q (valid: beginner, intermediate, advanced)", s)
}

// Profile is the immutable input to the plan generators. All enum
// fields must be set before any calculator runs.
type Profile struct {
	Name         string  `json:"name" yaml:"name"`
	Age          int     `json:"age" yaml:"age"`
	WeightKg     float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm     float64 `json:"height_cm" yaml:"height_cm"`
	Gender       Gender  `json:"gender" yaml:"gender"`
	Goal         Goal    `json:"goal" yaml:"goal"`
	Level        Level   `json:"level" yaml:"level"`
	TrainingDays int     `json:"training_days" yaml:"training_days"`
	VIP          bool    `json:"vip" yaml:"vip"`
}

// Validate reports every missing or out-of-range required field.
func (p *Profile) Validate() error {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Age <= 0 {
		missing = append(missing, "age")
	}
	if p.WeightKg <= 0 {
		missing = append(missing, "weight")
	}
	if p.HeightCm <= 0 {
		missing = append(missing, "height")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}
	if p.Goal == "" {
		missing = append(missing, "goal")
	}
	if p.Level == "" {
		missing = append(missing, "level")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// BMI returns weight divided by height squared, in kg/m².
func (p *Profile) BMI() float64 {
	heightM := p.HeightCm / 100
	return p.WeightKg / (heightM * heightM)
}

// BMICategory classifies a BMI value. Bracket upper bounds are
// exclusive: 18.5 is normal, 25 is overweight, 30 is obese.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// ValidationError reports the required fields missing from an input.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
