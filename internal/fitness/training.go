// ABOUTME: Weekly training split templates keyed by days available.
// ABOUTME: Lead-exercise prescriptions scale with experience level.
package fitness

import (
	"github.com/harperreed/beastmode/internal/models"
)

// Exercise is one prescription within a training day. Rest is kept as
// a display string ("90s") rather than a duration.
type Exercise struct {
	Name     string
	SetsReps string
	Rest     string
}

// TrainingDay is an ordered list of exercises under a day label.
type TrainingDay struct {
	Label     string
	Exercises []Exercise
}

// TrainingPlan is a weekly split. Day order is the body-part rotation
// and must be preserved.
type TrainingPlan struct {
	Title string
	Days  []TrainingDay
	Notes []string
}

// BuildTrainingPlan selects a split template by weekly training days.
// Templates exist for 3, 4, and 5 days; every other count, including
// 6, reuses the 4-day split rather than erroring.
func BuildTrainingPlan(p *models.Profile) TrainingPlan {
	var plan TrainingPlan
	switch p.TrainingDays {
	case 3:
		plan = threeDaySplit(p.Level)
	case 5:
		plan = fiveDaySplit()
	default:
		plan = fourDaySplit()
	}
	plan.Notes = trainingNotes(p.Goal, p.Level)
	return plan
}

// byLevel picks a set/rep string by experience level.
func byLevel(level models.Level, beginner, intermediate, advanced string) string {
	switch level {
	case models.LevelBeginner:
		return beginner
	case models.LevelIntermediate:
		return intermediate
	default:
		return advanced
	}
}

func threeDaySplit(level models.Level) TrainingPlan {
	return TrainingPlan{
		Title: "ABC split - 3x per week",
		Days: []TrainingDay{
			{
				Label: "A - Chest, Shoulders & Triceps",
				Exercises: []Exercise{
					{"Bench press", byLevel(level, "3x12", "4x10", "4x8"), "90s"},
					{"Incline bench press", byLevel(level, "3x12", "3x10", "3x10"), "90s"},
					{"Dumbbell shoulder press", "3x12", "60s"},
					{"Lateral raise", "3x15", "45s"},
					{"Triceps pushdown", "3x12", "45s"},
					{"Skull crusher", "3x12", "60s"},
				},
			},
			{
				Label: "B - Back & Biceps",
				Exercises: []Exercise{
					{"Pull-up (or lat pulldown)", byLevel(level, "3x8", "4x10", "4x10"), "90s"},
					{"Bent-over row", "4x10", "90s"},
					{"Seated cable row", "3x12", "60s"},
					{"Lat pulldown", "3x12", "60s"},
					{"Barbell curl", "3x12", "45s"},
					{"Hammer curl", "3x12", "45s"},
				},
			},
			{
				Label: "C - Legs & Abs",
				Exercises: []Exercise{
					{"Back squat", byLevel(level, "3x12", "4x10", "4x10"), "120s"},
					{"45° leg press", "4x12", "90s"},
					{"Leg extension", "3x15", "60s"},
					{"Leg curl", "3x15", "60s"},
					{"Standing calf raise", "4x20", "45s"},
					{"Crunch", "4x20", "30s"},
				},
			},
		},
	}
}

func fourDaySplit() TrainingPlan {
	return TrainingPlan{
		Title: "ABCD split - 4x per week",
		Days: []TrainingDay{
			{
				Label: "A - Chest & Triceps",
				Exercises: []Exercise{
					{"Bench press", "4x10", "90s"},
					{"Incline bench press", "4x10", "90s"},
					{"Chest fly", "3x12", "60s"},
					{"Triceps pushdown", "3x12", "45s"},
					{"French press", "3x12", "60s"},
				},
			},
			{
				Label: "B - Back & Biceps",
				Exercises: []Exercise{
					{"Pull-up", "4x8", "90s"},
					{"Bent-over row", "4x10", "90s"},
					{"Lat pulldown", "3x12", "60s"},
					{"Barbell curl", "3x12", "45s"},
					{"Hammer curl", "3x12", "45s"},
				},
			},
			{
				Label: "C - Shoulders & Abs",
				Exercises: []Exercise{
					{"Military press", "4x10", "90s"},
					{"Lateral raise", "4x12", "60s"},
					{"Front raise", "3x12", "60s"},
					{"Reverse fly", "3x15", "60s"},
					{"Crunch", "4x20", "30s"},
				},
			},
			{
				Label: "D - Legs",
				Exercises: []Exercise{
					{"Back squat", "4x10", "120s"},
					{"Leg press", "4x12", "90s"},
					{"Leg extension", "3x15", "60s"},
					{"Romanian deadlift", "3x12", "90s"},
					{"Calf raise", "4x20", "45s"},
				},
			},
		},
	}
}

func fiveDaySplit() TrainingPlan {
	return TrainingPlan{
		Title: "5x per week - Hypertrophy focus",
		Days: []TrainingDay{
			{
				Label: "Day 1 - Chest",
				Exercises: []Exercise{
					{"Bench press", "4x8-10", "90s"},
					{"Incline bench press", "4x10", "90s"},
					{"Incline fly", "3x12", "60s"},
					{"Cable crossover", "3x15", "45s"},
					{"Diamond push-up", "3x max", "60s"},
				},
			},
			{
				Label: "Day 2 - Back",
				Exercises: []Exercise{
					{"Pull-up", "4x8", "90s"},
					{"Bent-over row", "4x10", "90s"},
					{"Seated cable row", "3x12", "60s"},
					{"Lat pulldown", "3x12", "60s"},
					{"One-arm dumbbell row", "3x12", "60s"},
				},
			},
			{
				Label: "Day 3 - Legs",
				Exercises: []Exercise{
					{"Back squat", "4x8-10", "120s"},
					{"Leg press", "4x12", "90s"},
					{"Leg extension", "4x15", "60s"},
					{"Romanian deadlift", "4x10", "90s"},
					{"Calf raise", "5x20", "45s"},
				},
			},
			{
				Label: "Day 4 - Shoulders & Traps",
				Exercises: []Exercise{
					{"Military press", "4x10", "90s"},
					{"Lateral raise", "4x12", "60s"},
					{"Front raise", "3x12", "60s"},
					{"Reverse fly", "4x15", "60s"},
					{"Shrug", "4x15", "60s"},
				},
			},
			{
				Label: "Day 5 - Arms & Abs",
				Exercises: []Exercise{
					{"Barbell curl", "4x10", "60s"},
					{"Hammer curl", "4x12", "60s"},
					{"Concentration curl", "3x12", "45s"},
					{"Skull crusher", "4x10", "60s"},
					{"Triceps pushdown", "4x12", "45s"},
					{"Full ab circuit", "4x20", "30s"},
				},
			},
		},
	}
}

// trainingNotes appends advisory notes in a fixed order: beginner
// pair, then goal pair, then the universal hydration/sleep pair.
func trainingNotes(goal models.Goal, level models.Level) []string {
	var notes []string

	if level == models.LevelBeginner {
		notes = append(notes,
			"⚠️ Focus on correct form before adding weight",
			"📝 Log your loads to track progression",
		)
	}
	if goal == models.GoalLoseWeight {
		notes = append(notes,
			"🔥 Add 20-30min of cardio after lifting",
			"⏱️ Shorten rest between sets (45-60s)",
		)
	}
	if goal == models.GoalGainMuscle {
		notes = append(notes,
			"💪 Push progressive overload every week",
			"🍽️ Never skip the post-workout meal",
		)
	}

	notes = append(notes,
		"💧 Stay hydrated throughout the session",
		"😴 Sleep at least 7-8 hours per night",
	)
	return notes
}
