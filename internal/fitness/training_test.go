// ABOUTME: Tests for training split selection, level scaling, and notes.
// ABOUTME: Pins the 4-day fallback for untemplated day counts.
package fitness

import (
	"testing"

	"github.com/harperreed/beastmode/internal/models"
)

func trainingProfile(days int, goal models.Goal, level models.Level) *models.Profile {
	return &models.Profile{
		Name: "T", Age: 25, WeightKg: 75, HeightCm: 175,
		Gender: models.GenderMale, Goal: goal, Level: level, TrainingDays: days,
	}
}

func TestBuildTrainingPlanSplitSelection(t *testing.T) {
	tests := []struct {
		days      int
		wantTitle string
		wantDays  int
	}{
		{3, "ABC split - 3x per week", 3},
		{4, "ABCD split - 4x per week", 4},
		{5, "5x per week - Hypertrophy focus", 5},
	}

	for _, tt := range tests {
		plan := BuildTrainingPlan(trainingProfile(tt.days, models.GoalGeneralHealth, models.LevelIntermediate))
		if plan.Title != tt.wantTitle {
			t.Errorf("days=%d: Title = %q, want %q", tt.days, plan.Title, tt.wantTitle)
		}
		if len(plan.Days) != tt.wantDays {
			t.Errorf("days=%d: len(Days) = %d, want %d", tt.days, len(plan.Days), tt.wantDays)
		}
	}
}

func TestBuildTrainingPlanFallback(t *testing.T) {
	// No 6-day template exists; 6 and any other untemplated count
	// reuse the 4-day split.
	fourDay := BuildTrainingPlan(trainingProfile(4, models.GoalGeneralHealth, models.LevelIntermediate))
	for _, days := range []int{6, 9, 0} {
		plan := BuildTrainingPlan(trainingProfile(days, models.GoalGeneralHealth, models.LevelIntermediate))
		if plan.Title != fourDay.Title {
			t.Errorf("days=%d: Title = %q, want the 4-day title %q", days, plan.Title, fourDay.Title)
		}
	}
}

func TestThreeDaySplitLevelScaling(t *testing.T) {
	tests := []struct {
		level models.Level
		want  string
	}{
		{models.LevelBeginner, "3x12"},
		{models.LevelIntermediate, "4x10"},
		{models.LevelAdvanced, "4x8"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			plan := BuildTrainingPlan(trainingProfile(3, models.GoalGeneralHealth, tt.level))
			lead := plan.Days[0].Exercises[0]
			if lead.Name != "Bench press" {
				t.Fatalf("lead exercise = %s", lead.Name)
			}
			if lead.SetsReps != tt.want {
				t.Errorf("level %s: lead SetsReps = %s, want %s", tt.level, lead.SetsReps, tt.want)
			}
		})
	}
}

func TestFourDaySplitIgnoresLevel(t *testing.T) {
	beginner := BuildTrainingPlan(trainingProfile(4, models.GoalGeneralHealth, models.LevelBeginner))
	advanced := BuildTrainingPlan(trainingProfile(4, models.GoalGeneralHealth, models.LevelAdvanced))
	for i, day := range beginner.Days {
		for j, ex := range day.Exercises {
			if ex.SetsReps != advanced.Days[i].Exercises[j].SetsReps {
				t.Errorf("%s / %s: prescriptions differ by level", day.Label, ex.Name)
			}
		}
	}
}

func TestTrainingDayOrder(t *testing.T) {
	plan := BuildTrainingPlan(trainingProfile(4, models.GoalGainMuscle, models.LevelIntermediate))
	wantLabels := []string{
		"A - Chest & Triceps",
		"B - Back & Biceps",
		"C - Shoulders & Abs",
		"D - Legs",
	}
	for i, want := range wantLabels {
		if plan.Days[i].Label != want {
			t.Errorf("Days[%d].Label = %q, want %q", i, plan.Days[i].Label, want)
		}
	}
}

func TestTrainingNotesOrdering(t *testing.T) {
	tests := []struct {
		name  string
		goal  models.Goal
		level models.Level
		want  int
	}{
		{"beginner lose-weight", models.GoalLoseWeight, models.LevelBeginner, 6},
		{"beginner gain-muscle", models.GoalGainMuscle, models.LevelBeginner, 6},
		{"advanced cut", models.GoalCut, models.LevelAdvanced, 2},
		{"intermediate lose-weight", models.GoalLoseWeight, models.LevelIntermediate, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildTrainingPlan(trainingProfile(4, tt.goal, tt.level))
			if len(plan.Notes) != tt.want {
				t.Fatalf("len(Notes) = %d, want %d: %v", len(plan.Notes), tt.want, plan.Notes)
			}
			// The universal hydration/sleep pair always closes the list.
			n := len(plan.Notes)
			if plan.Notes[n-2] != "💧 Stay hydrated throughout the session" {
				t.Errorf("Notes[%d] = %q, want hydration note", n-2, plan.Notes[n-2])
			}
			if plan.Notes[n-1] != "😴 Sleep at least 7-8 hours per night" {
				t.Errorf("Notes[%d] = %q, want sleep note", n-1, plan.Notes[n-1])
			}
		})
	}
}

func TestBeginnerNotesComeFirst(t *testing.T) {
	plan := BuildTrainingPlan(trainingProfile(3, models.GoalLoseWeight, models.LevelBeginner))
	if plan.Notes[0] != "⚠️ Focus on correct form before adding weight" {
		t.Errorf("Notes[0] = %q, want the form note first", plan.Notes[0])
	}
	if plan.Notes[2] != "🔥 Add 20-30min of cardio after lifting" {
		t.Errorf("Notes[2] = %q, want the cardio note after the beginner pair", plan.Notes[2])
	}
}
