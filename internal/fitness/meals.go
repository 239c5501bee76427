// ABOUTME: Goal-keyed meal plan templates with fixed time windows.
// ABOUTME: Each slot offers three interchangeable options plus diet tips.
package fitness

import (
	"github.com/harperreed/beastmode/internal/models"
)

// Slot keys are stable identifiers, not display strings.
const (
	SlotBreakfast      = "breakfast"
	SlotMorningSnack   = "morning-snack"
	SlotLunch          = "lunch"
	SlotAfternoonSnack = "afternoon-snack"
	SlotDinner         = "dinner"
	SlotEveningSnack   = "evening-snack"
)

// MealSlot is one eating window with interchangeable options.
type MealSlot struct {
	Key        string
	TimeWindow string
	Options    []string
}

// MealPlan carries the calorie/macro targets unchanged from the
// calculator plus the goal's slot template and tips.
type MealPlan struct {
	Calories int
	Macros   MacroTargets
	Slots    []MealSlot
	Tips     []string
}

// BuildMealPlan assembles the meal plan for a profile. Slot order is
// chronological and goal-determined; gain-muscle adds an evening
// snack the other goals do not have.
func BuildMealPlan(p *models.Profile) MealPlan {
	calories := DailyCalories(p)
	return MealPlan{
		Calories: calories,
		Macros:   Macros(calories, p.Goal),
		Slots:    mealSlots(p.Goal),
		Tips:     mealTips(p.Goal),
	}
}

func mealSlots(goal models.Goal) []MealSlot {
	switch goal {
	case models.GoalLoseWeight:
		return []MealSlot{
			{SlotBreakfast, "07:00 - 08:00", []string{
				"2 scrambled eggs + 1 slice whole-grain toast + unsweetened coffee",
				"2-egg omelette with vegetables + green tea",
				"Greek yogurt (200g) + light granola (30g) + berries",
			}},
			{SlotMorningSnack, "10:00 - 10:30", []string{
				"1 fruit (apple or pear) + 10 nuts",
				"Whey protein + 1 banana",
				"Plain yogurt + 1 tbsp chia",
			}},
			{SlotLunch, "12:00 - 13:00", []string{
				"Grilled chicken breast (150g) + brown rice (3 tbsp) + broccoli + salad",
				"Grilled fish (180g) + sweet potato (100g) + vegetables",
				"Lean beef (150g) + quinoa (3 tbsp) + vegetables",
			}},
			{SlotAfternoonSnack, "16:00 - 16:30", []string{
				"Peanut butter (1 tbsp) + 1 banana",
				"Cottage cheese (100g) + whole-grain crackers",
				"Whey shake + oats",
			}},
			{SlotDinner, "19:00 - 20:00", []string{
				"Omelette (3 whites + 1 yolk) + green salad",
				"Grilled fish (150g) + steamed vegetables",
				"Shredded chicken (150g) + vegetable soup",
			}},
		}
	case models.GoalGainMuscle:
		return []MealSlot{
			{SlotBreakfast, "07:00 - 08:00", []string{
				"4 scrambled eggs + 2 slices whole-grain toast + avocado + fresh juice",
				"Oat pancakes (100g) + honey + peanut butter",
				"Tapioca wrap with chicken + cheese + juice",
			}},
			{SlotMorningSnack, "10:00 - 10:30", []string{
				"Shake: whey + banana + oats + peanut butter",
				"Chicken sandwich + juice",
				"Whole-milk yogurt + granola + honey",
			}},
			{SlotLunch, "12:00 - 13:00", []string{
				"Red meat (200g) + rice (5 tbsp) + beans + potato + salad",
				"Chicken (200g) + whole-grain pasta + sauce + vegetables",
				"Fish (200g) + rice + sweet potato + vegetables",
			}},
			{SlotAfternoonSnack, "16:00 - 16:30", []string{
				"Whole-grain bread + tuna + cheese + juice",
				"Sweet potato (200g) + whey protein",
				"Tapioca + shredded chicken + cheese",
			}},
			{SlotDinner, "19:00 - 20:00", []string{
				"Beef (180g) + brown rice (4 tbsp) + vegetables",
				"Chicken (200g) + sweet potato (150g) + salad",
				"Fish (200g) + quinoa + vegetables",
			}},
			{SlotEveningSnack, "22:00 - 23:00", []string{
				"Casein or Greek yogurt (200g) + peanut butter",
				"Cottage cheese (150g) + nuts",
				"Egg-white omelette + avocado",
			}},
		}
	case models.GoalCut:
		return []MealSlot{
			{SlotBreakfast, "07:00 - 08:00", []string{
				"3 eggs (2 whole + 1 white) + oats (30g) + coffee",
				"Egg-white omelette + 1 slice whole-grain toast + green tea",
				"Greek yogurt + whey + berries",
			}},
			{SlotMorningSnack, "10:00 - 10:30", []string{
				"Whey protein + 1 fruit",
				"Nuts (15) + 1 apple",
				"Plain yogurt + chia",
			}},
			{SlotLunch, "12:00 - 13:00", []string{
				"Chicken breast (180g) + brown rice (4 tbsp) + broccoli + salad",
				"Fish (200g) + sweet potato (120g) + asparagus",
				"Lean beef (180g) + quinoa (4 tbsp) + vegetables",
			}},
			{SlotAfternoonSnack, "16:00 - 16:30", []string{
				"Sweet potato (100g) + whey protein",
				"Peanut butter (1 tbsp) + whole-grain crackers",
				"Cottage cheese + fruit",
			}},
			{SlotDinner, "19:00 - 20:00", []string{
				"Grilled chicken (180g) + large salad + olive oil",
				"Fish (180g) + steamed vegetables",
				"Omelette (3 whites + 1 yolk) + vegetables",
			}},
		}
	default: // general-health
		return []MealSlot{
			{SlotBreakfast, "07:00 - 08:00", []string{
				"2 eggs + 1 slice whole-grain toast + fruit + coffee",
				"Tapioca with cheese + fresh juice",
				"Yogurt + granola + fruit",
			}},
			{SlotMorningSnack, "10:00 - 10:30", []string{
				"1 fruit + nuts",
				"Plain yogurt",
				"Fruit smoothie",
			}},
			{SlotLunch, "12:00 - 13:00", []string{
				"Protein (150g) + rice (4 tbsp) + beans + salad",
				"Fish + potato + vegetables",
				"Chicken + whole-grain pasta + vegetables",
			}},
			{SlotAfternoonSnack, "16:00 - 16:30", []string{
				"Whole-grain bread + cheese + juice",
				"Fruit + nuts",
				"Yogurt + oats",
			}},
			{SlotDinner, "19:00 - 20:00", []string{
				"Vegetable soup + protein",
				"Full salad + chicken",
				"Omelette + vegetables",
			}},
		}
	}
}

// mealTips returns three universal tips followed by three for the
// goal, in that order.
func mealTips(goal models.Goal) []string {
	tips := []string{
		"💧 Drink water throughout the day",
		"🥗 Favor whole, minimally processed foods",
		"⏰ Keep regular meal times",
	}

	byGoal := map[models.Goal][]string{
		models.GoalLoseWeight: {
			"🔥 Avoid ultra-processed foods and sugar",
			"🍽️ Watch your portions",
			"🚫 Avoid eating 3h before bed",
		},
		models.GoalGainMuscle: {
			"💪 Never skip meals, especially post-workout",
			"🍚 Ramp carbohydrate intake up gradually",
			"🥩 Eat protein at every meal",
		},
		models.GoalCut: {
			"⚖️ Weigh and measure food for tight control",
			"🥦 Eat more vegetables",
			"🍖 Keep protein high",
		},
		models.GoalGeneralHealth: {
			"🌈 Vary the colors on your plate",
			"🥗 Include vegetables in every meal",
			"🍎 Prefer whole fruit over juice",
		},
	}

	return append(tips, byGoal[goal]...)
}
