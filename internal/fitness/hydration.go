// ABOUTME: Daily water target and evenly spaced reminder schedule.
// ABOUTME: 35 ml/kg base scaled by goal, distributed 07:00-22:00.
package fitness

import (
	"fmt"
	"math"

	"github.com/harperreed/beastmode/internal/models"
)

// baseWaterMLPerKg is the standard hydration baseline.
const baseWaterMLPerKg = 35

var waterGoalFactors = map[models.Goal]float64{
	models.GoalLoseWeight:    1.2,
	models.GoalGainMuscle:    1.3,
	models.GoalCut:           1.25,
	models.GoalGeneralHealth: 1.0,
}

// DailyWaterML returns the daily water target in milliliters.
func DailyWaterML(weightKg float64, goal models.Goal) int {
	return int(math.Round(weightKg * baseWaterMLPerKg * waterGoalFactors[goal]))
}

// cupML is one reminder's worth of water.
const cupML = 250

// WaterSchedule spreads ceil(total/250) reminder times evenly between
// 07:00 and 22:00. Times floor to whole minutes, so the first entry is
// always 07:00 and the last lands before 22:00.
func WaterSchedule(totalML int) []string {
	cups := int(math.Ceil(float64(totalML) / cupML))
	if cups <= 0 {
		return nil
	}

	const startHour, endHour = 7, 22
	interval := float64(endHour-startHour) / float64(cups)

	times := make([]string, 0, cups)
	for i := 0; i < cups; i++ {
		offset := interval * float64(i)
		hour := startHour + int(offset)
		minute := int(math.Mod(offset, 1) * 60)
		times = append(times, fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return times
}
