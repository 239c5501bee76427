// ABOUTME: Supplement recommendations: fixed baseline plus goal extras.
// ABOUTME: Items carry dosage, benefit, priority, and optional caveat.
package fitness

import (
	"github.com/harperreed/beastmode/internal/models"
)

// Priority ranks how strongly a supplement is recommended.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// SupplementItem is one recommendation. Caveat is empty unless the
// item needs a timing or safety caution.
type SupplementItem struct {
	Name     string
	Dosage   string
	Benefit  string
	Priority Priority
	Caveat   string
}

// SupplementPlan is the baseline list, the goal-specific additions,
// and the fixed safety notes.
type SupplementPlan struct {
	Baseline     []SupplementItem
	GoalSpecific []SupplementItem
	Notes        []string
}

// baselineSupplements is recommended regardless of goal.
var baselineSupplements = []SupplementItem{
	{
		Name:     "Whey Protein",
		Dosage:   "30g after training",
		Benefit:  "Muscle recovery and protein synthesis",
		Priority: PriorityHigh,
	},
	{
		Name:     "Creatine",
		Dosage:   "5g per day (any time)",
		Benefit:  "Strength and muscle volume gains",
		Priority: PriorityHigh,
	},
	{
		Name:     "Multivitamin",
		Dosage:   "1 dose in the morning",
		Benefit:  "Covers possible nutrient deficiencies",
		Priority: PriorityMedium,
	},
	{
		Name:     "Omega-3",
		Dosage:   "2-3g per day",
		Benefit:  "Cardiovascular health and anti-inflammatory",
		Priority: PriorityMedium,
	},
}

var goalSupplements = map[models.Goal][]SupplementItem{
	models.GoalLoseWeight: {
		{
			Name:     "Thermogenic (caffeine)",
			Dosage:   "200-400mg before training",
			Benefit:  "Metabolism and energy boost",
			Priority: PriorityMedium,
			Caveat:   "⚠️ Avoid after 4pm so it does not disrupt sleep",
		},
		{
			Name:     "CLA (conjugated linoleic acid)",
			Dosage:   "3-6g per day",
			Benefit:  "Supports fat loss",
			Priority: PriorityLow,
		},
	},
	models.GoalGainMuscle: {
		{
			Name:     "Mass gainer",
			Dosage:   "1 dose between meals",
			Benefit:  "Makes a calorie surplus easier to hit",
			Priority: PriorityMedium,
		},
		{
			Name:     "BCAA",
			Dosage:   "5-10g during training",
			Benefit:  "Reduces muscle catabolism",
			Priority: PriorityLow,
		},
		{
			Name:     "Glutamine",
			Dosage:   "5g post-workout",
			Benefit:  "Recovery and immune support",
			Priority: PriorityLow,
		},
	},
	models.GoalCut: {
		{
			Name:     "Thermogenic",
			Dosage:   "200-400mg before training",
			Benefit:  "Energy and fat burning",
			Priority: PriorityMedium,
		},
		{
			Name:     "L-Carnitine",
			Dosage:   "2g before training",
			Benefit:  "Shuttles fat for energy",
			Priority: PriorityLow,
		},
	},
	models.GoalGeneralHealth: {
		{
			Name:     "Vitamin D",
			Dosage:   "2000-4000 IU per day",
			Benefit:  "Bone and immune health",
			Priority: PriorityHigh,
		},
	},
}

// supplementNotes always accompany the plan, order fixed.
var supplementNotes = []string{
	"⚠️ Supplements do not replace a balanced diet",
	"👨‍⚕️ Talk to a nutritionist before starting supplementation",
	"💊 Buy only from trusted, certified brands",
	"📊 Run periodic lab work to reassess your needs",
}

// BuildSupplementPlan returns the baseline list plus the goal's
// additions and the standing safety notes.
func BuildSupplementPlan(p *models.Profile) SupplementPlan {
	return SupplementPlan{
		Baseline:     baselineSupplements,
		GoalSpecific: goalSupplements[p.Goal],
		Notes:        supplementNotes,
	}
}
