// ABOUTME: Basal metabolic rate, daily calorie target, and macro split.
// ABOUTME: Harris-Benedict formula with activity factor and goal adjustment.
package fitness

import (
	"math"

	"github.com/harperreed/beastmode/internal/models"
)

// BMR computes the basal metabolic rate via the Harris-Benedict
// formula, branched on gender.
func BMR(p *models.Profile) float64 {
	if p.Gender == models.GenderMale {
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
	}
	return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
}

// activityFactors steps by weekly training days: sedentary, lightly
// active, moderately active, very active.
var activityFactors = map[int]float64{
	0: 1.2, 1: 1.2,
	2: 1.375, 3: 1.375,
	4: 1.55, 5: 1.55,
	6: 1.725, 7: 1.725,
}

// Day counts outside the table absorb into the moderate factor
// instead of erroring.
const defaultActivityFactor = 1.55

// goalAdjustments is the signed kcal offset applied on top of
// maintenance calories.
var goalAdjustments = map[models.Goal]float64{
	models.GoalLoseWeight:    -500,
	models.GoalGainMuscle:    300,
	models.GoalCut:           -200,
	models.GoalGeneralHealth: 0,
}

// DailyCalories returns the daily calorie target: BMR times the
// activity factor, plus the goal adjustment, rounded to the nearest
// integer.
func DailyCalories(p *models.Profile) int {
	factor, ok := activityFactors[p.TrainingDays]
	if !ok {
		factor = defaultActivityFactor
	}
	maintenance := BMR(p) * factor
	return int(math.Round(maintenance + goalAdjustments[p.Goal]))
}

// MacroTargets is a daily gram allocation of protein, carbohydrate,
// and fat.
type MacroTargets struct {
	ProteinGrams int
	CarbGrams    int
	FatGrams     int
}

type macroSplit struct {
	Protein float64
	Carb    float64
	Fat     float64
}

// macroSplits allocates calories per goal. Each triple sums to 1.0.
var macroSplits = map[models.Goal]macroSplit{
	models.GoalLoseWeight:    {Protein: 0.35, Carb: 0.30, Fat: 0.35},
	models.GoalGainMuscle:    {Protein: 0.30, Carb: 0.45, Fat: 0.25},
	models.GoalCut:           {Protein: 0.40, Carb: 0.35, Fat: 0.25},
	models.GoalGeneralHealth: {Protein: 0.30, Carb: 0.40, Fat: 0.30},
}

// Macros converts a calorie total into grams per macronutrient using
// 4 kcal/g for protein and carbs and 9 kcal/g for fat. Each gram
// count rounds independently; the small reconciliation drift against
// the calorie total is accepted rather than redistributed.
func Macros(calories int, goal models.Goal) MacroTargets {
	split := macroSplits[goal]
	c := float64(calories)
	return MacroTargets{
		ProteinGrams: int(math.Round(c * split.Protein / 4)),
		CarbGrams:    int(math.Round(c * split.Carb / 4)),
		FatGrams:     int(math.Round(c * split.Fat / 9)),
	}
}
