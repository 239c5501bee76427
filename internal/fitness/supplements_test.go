// ABOUTME: Tests for supplement plan baseline, goal extras, and notes.
// ABOUTME: Also covers the static education guide's shape.
package fitness

import (
	"testing"

	"github.com/harperreed/beastmode/internal/models"
)

func TestSupplementBaseline(t *testing.T) {
	plan := BuildSupplementPlan(&models.Profile{Goal: models.GoalGeneralHealth})

	wantNames := []string{"Whey Protein", "Creatine", "Multivitamin", "Omega-3"}
	if len(plan.Baseline) != len(wantNames) {
		t.Fatalf("baseline has %d items, want %d", len(plan.Baseline), len(wantNames))
	}
	for i, want := range wantNames {
		if plan.Baseline[i].Name != want {
			t.Errorf("Baseline[%d].Name = %s, want %s", i, plan.Baseline[i].Name, want)
		}
	}
	// Whey and creatine are the high-priority pair.
	if plan.Baseline[0].Priority != PriorityHigh || plan.Baseline[1].Priority != PriorityHigh {
		t.Error("whey and creatine should be high priority")
	}
}

func TestSupplementGoalSpecific(t *testing.T) {
	tests := []struct {
		goal  models.Goal
		count int
	}{
		{models.GoalLoseWeight, 2},
		{models.GoalGainMuscle, 3},
		{models.GoalCut, 2},
		{models.GoalGeneralHealth, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			plan := BuildSupplementPlan(&models.Profile{Goal: tt.goal})
			if len(plan.GoalSpecific) != tt.count {
				t.Errorf("%d goal-specific items, want %d", len(plan.GoalSpecific), tt.count)
			}
		})
	}
}

func TestThermogenicCarriesTimingCaveat(t *testing.T) {
	plan := BuildSupplementPlan(&models.Profile{Goal: models.GoalLoseWeight})
	if plan.GoalSpecific[0].Caveat == "" {
		t.Error("lose-weight thermogenic should carry a sleep-timing caveat")
	}
	for _, item := range plan.Baseline {
		if item.Caveat != "" {
			t.Errorf("baseline item %s should not have a caveat", item.Name)
		}
	}
}

func TestSupplementNotesAlwaysPresent(t *testing.T) {
	for _, goal := range models.AllGoals {
		plan := BuildSupplementPlan(&models.Profile{Goal: goal})
		if len(plan.Notes) != 4 {
			t.Errorf("goal %s: %d notes, want 4", goal, len(plan.Notes))
		}
	}
}

func TestAnabolicEducationContent(t *testing.T) {
	guide := AnabolicEducation()

	if guide.Warning == "" || guide.FinalAdvice == "" {
		t.Error("warning and final advice must be present")
	}
	if len(guide.Risks) != 6 {
		t.Errorf("%d risks, want 6", len(guide.Risks))
	}
	if len(guide.RequiredLabs) != 6 {
		t.Errorf("%d lab tests, want 6", len(guide.RequiredLabs))
	}
	if len(guide.LiverProtection) != 3 {
		t.Errorf("%d liver compounds, want 3", len(guide.LiverProtection))
	}
	if len(guide.PCT.Medications) != 3 {
		t.Errorf("%d PCT medications, want 3", len(guide.PCT.Medications))
	}
	if len(guide.CycleProtocols) != 5 {
		t.Errorf("%d cycle protocols, want 5", len(guide.CycleProtocols))
	}
	if len(guide.PCTProtocols) != 3 {
		t.Errorf("%d PCT protocols, want 3", len(guide.PCTProtocols))
	}
	if len(guide.SafetyChecklists) != 4 {
		t.Errorf("%d safety checklists, want 4", len(guide.SafetyChecklists))
	}
	for _, p := range guide.CycleProtocols {
		if p.Name == "" || p.Dosage == "" || p.Duration == "" || len(p.Notes) == 0 {
			t.Errorf("incomplete cycle protocol %+v", p)
		}
	}
}
