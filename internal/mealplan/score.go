package mealplan

import (
	"math"

	"mealplan-backend/internal/macros"
)

// Weighted distance at or beyond which a meal scores 0. Differences map
// linearly onto 0-100 below it.
const maxMeaningfulDiff = 200

// Macro weights for scoring. Protein deviations are penalized most heavily
// since protein adherence is typically the tightest constraint.
const (
	weightProtein  = 4
	weightFat      = 3
	weightCarbs    = 2
	weightCalories = 1
)

// MatchScore rates how closely a meal matches the given targets, 0-100.
// Returns ok=false when no target macro is set, so the caller can show
// "no score" instead of a misleading 0%.
func MatchScore(meal Meal, targets macros.Targets) (int, bool) {
	weighted := 0.0
	set := 0

	if targets.Protein > 0 {
		weighted += weightProtein * math.Abs(float64(meal.Protein-targets.Protein))
		set++
	}
	if targets.Fat > 0 {
		weighted += weightFat * math.Abs(float64(meal.Fat-targets.Fat))
		set++
	}
	if targets.Carbs > 0 {
		weighted += weightCarbs * math.Abs(float64(meal.Carbs-targets.Carbs))
		set++
	}
	if targets.Calories > 0 {
		weighted += weightCalories * math.Abs(float64(meal.Calories-targets.Calories))
		set++
	}
	if set == 0 {
		return 0, false
	}

	normalized := weighted / float64(set)
	if normalized >= maxMeaningfulDiff {
		return 0, true
	}
	return int(math.Round(100 * (1 - normalized/maxMeaningfulDiff))), true
}
