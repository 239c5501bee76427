// ABOUTME: Tests for meal plan slot templates and tips.
// ABOUTME: Pins slot count per goal and the gain-muscle evening snack.
package fitness

import (
	"testing"

	"github.com/harperreed/beastmode/internal/models"
)

func mealProfile(goal models.Goal) *models.Profile {
	return &models.Profile{
		Name: "M", Age: 30, WeightKg: 80, HeightCm: 180,
		Gender: models.GenderMale, Goal: goal,
		Level: models.LevelIntermediate, TrainingDays: 4,
	}
}

func TestBuildMealPlanSlotCounts(t *testing.T) {
	tests := []struct {
		goal models.Goal
		want int
	}{
		{models.GoalLoseWeight, 5},
		{models.GoalGainMuscle, 6}, // extra evening snack
		{models.GoalCut, 5},
		{models.GoalGeneralHealth, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			plan := BuildMealPlan(mealProfile(tt.goal))
			if len(plan.Slots) != tt.want {
				t.Errorf("len(Slots) = %d, want %d", len(plan.Slots), tt.want)
			}
		})
	}
}

func TestMealSlotOrderIsChronological(t *testing.T) {
	plan := BuildMealPlan(mealProfile(models.GoalGainMuscle))
	wantKeys := []string{
		SlotBreakfast, SlotMorningSnack, SlotLunch,
		SlotAfternoonSnack, SlotDinner, SlotEveningSnack,
	}
	for i, want := range wantKeys {
		if plan.Slots[i].Key != want {
			t.Errorf("Slots[%d].Key = %s, want %s", i, plan.Slots[i].Key, want)
		}
	}
	if plan.Slots[5].TimeWindow != "22:00 - 23:00" {
		t.Errorf("evening snack window = %s", plan.Slots[5].TimeWindow)
	}
}

func TestMealSlotsHaveThreeOptions(t *testing.T) {
	for _, goal := range models.AllGoals {
		plan := BuildMealPlan(mealProfile(goal))
		for _, slot := range plan.Slots {
			if len(slot.Options) != 3 {
				t.Errorf("goal %s slot %s: %d options, want 3", goal, slot.Key, len(slot.Options))
			}
			if slot.TimeWindow == "" {
				t.Errorf("goal %s slot %s: empty time window", goal, slot.Key)
			}
		}
	}
}

func TestMealPlanCarriesCalculatorTargets(t *testing.T) {
	p := mealProfile(models.GoalGainMuscle)
	plan := BuildMealPlan(p)

	if plan.Calories != DailyCalories(p) {
		t.Errorf("Calories = %d, want %d", plan.Calories, DailyCalories(p))
	}
	if plan.Macros != Macros(plan.Calories, p.Goal) {
		t.Errorf("Macros = %+v, not the calculator's output", plan.Macros)
	}
}

func TestMealTips(t *testing.T) {
	universal := "💧 Drink water throughout the day"
	for _, goal := range models.AllGoals {
		plan := BuildMealPlan(mealProfile(goal))
		if len(plan.Tips) != 6 {
			t.Errorf("goal %s: %d tips, want 3 universal + 3 goal-specific", goal, len(plan.Tips))
		}
		if plan.Tips[0] != universal {
			t.Errorf("goal %s: Tips[0] = %q, universal tips must come first", goal, plan.Tips[0])
		}
	}
}
