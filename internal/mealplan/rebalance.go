package mealplan

import (
	"math"

	"mealplan-backend/internal/macros"
)

// Minimal-impact thresholds: a swap whose per-macro deltas all stay below
// these leaves the other meals untouched.
const (
	minImpactCalories = 50
	minImpactProtein  = 5
	minImpactCarbs    = 10
	minImpactFat      = 5
)

// Floors applied when adjusting a meal, so redistribution can never produce
// a degenerate meal. Adjustments are clamped to the floor, not rejected.
const (
	floorCalories = 100
	floorProtein  = 5
	floorCarbs    = 0
	floorFat      = 2
)

// Post-rebalance success bands. Looser than the AI-validation tolerance
// because integer rounding compounds across many meals.
const (
	rebalanceCaloriePct = 5
	rebalanceMacroPct   = 10
)

// RebalanceResult is the adjusted meal list plus whether the day's totals
// still sit inside the success bands.
type RebalanceResult struct {
	Meals   []Meal
	Success bool
}

type macroDelta struct {
	calories int
	protein  int
	carbs    int
	fat      int
}

// Rebalance swaps newMeal in at swappedIndex and redistributes the macro
// delta the swap introduced across the remaining meals. The input list is
// never mutated; the result must be applied by the caller as one transaction.
//
// Distribution is exact: each other meal gets round(delta/n) per macro and
// the last one absorbs the rounding remainder, so the applied adjustments
// always sum to the delta with no residual drift.
func Rebalance(meals []Meal, swappedIndex int, newMeal Meal, targets macros.Targets) RebalanceResult {
	out := make([]Meal, len(meals))
	copy(out, meals)
	if swappedIndex < 0 || swappedIndex >= len(out) {
		return RebalanceResult{Meals: out, Success: withinSuccessBands(out, targets)}
	}

	old := out[swappedIndex]
	newMeal.ID = old.ID
	out[swappedIndex] = newMeal

	delta := macroDelta{
		calories: old.Calories - newMeal.Calories,
		protein:  old.Protein - newMeal.Protein,
		carbs:    old.Carbs - newMeal.Carbs,
		fat:      old.Fat - newMeal.Fat,
	}

	others := len(out) - 1
	if others == 0 || belowImpactThresholds(delta) {
		return RebalanceResult{Meals: out, Success: withinSuccessBands(out, targets)}
	}

	calAdj := splitEvenly(delta.calories, others)
	proAdj := splitEvenly(delta.protein, others)
	carbAdj := splitEvenly(delta.carbs, others)
	fatAdj := splitEvenly(delta.fat, others)

	j := 0
	for i := range out {
		if i == swappedIndex {
			continue
		}
		out[i] = adjustMeal(out[i], macroDelta{
			calories: calAdj[j],
			protein:  proAdj[j],
			carbs:    carbAdj[j],
			fat:      fatAdj[j],
		})
		j++
	}

	return RebalanceResult{Meals: out, Success: withinSuccessBands(out, targets)}
}

func belowImpactThresholds(d macroDelta) bool {
	return abs(d.calories) < minImpactCalories &&
		abs(d.protein) < minImpactProtein &&
		abs(d.carbs) < minImpactCarbs &&
		abs(d.fat) < minImpactFat
}

// splitEvenly divides delta into n integer parts that sum to delta exactly:
// the first n-1 parts are round(delta/n), the last absorbs the remainder.
func splitEvenly(delta, n int) []int {
	parts := make([]int, n)
	per := int(math.Round(float64(delta) / float64(n)))
	sum := 0
	for i := 0; i < n-1; i++ {
		parts[i] = per
		sum += per
	}
	parts[n-1] = delta - sum
	return parts
}

// adjustMeal applies one meal's share of the delta, clamping to the macro
// floors. When the calorie change is large enough to matter, numeric
// ingredient quantities are rescaled by the calorie ratio.
func adjustMeal(m Meal, adj macroDelta) Meal {
	oldCalories := m.Calories

	m.Calories = clampFloor(m.Calories+adj.calories, floorCalories)
	m.Protein = clampFloor(m.Protein+adj.protein, floorProtein)
	m.Carbs = clampFloor(m.Carbs+adj.carbs, floorCarbs)
	m.Fat = clampFloor(m.Fat+adj.fat, floorFat)

	if abs(m.Calories-oldCalories) > minImpactCalories && oldCalories > 0 {
		ratio := float64(m.Calories) / float64(oldCalories)
		scaled := make([]Ingredient, len(m.Ingredients))
		for i, ing := range m.Ingredients {
			ing.Quantity = scaleQuantityText(ing.Quantity, ratio)
			scaled[i] = ing
		}
		m.Ingredients = scaled
	}
	return m
}

// withinSuccessBands reports whether the list's totals sit inside the
// post-rebalance bands. A zero target passes automatically.
func withinSuccessBands(meals []Meal, targets macros.Targets) bool {
	var cal, pro, carb, fat int
	for _, m := range meals {
		cal += m.Calories
		pro += m.Protein
		carb += m.Carbs
		fat += m.Fat
	}
	return withinPct(cal, targets.Calories, rebalanceCaloriePct) &&
		withinPct(pro, targets.Protein, rebalanceMacroPct) &&
		withinPct(carb, targets.Carbs, rebalanceMacroPct) &&
		withinPct(fat, targets.Fat, rebalanceMacroPct)
}

func withinPct(actual, target, pct int) bool {
	if target == 0 {
		return true
	}
	deviation := math.Abs(float64(actual-target)) / float64(target)
	return deviation <= float64(pct)/100
}

func clampFloor(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
