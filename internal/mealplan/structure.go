package mealplan

import "fmt"

// Share of daily calories carried by meals collectively when both meals and
// snacks are present. Snacks carry the rest.
const mealsAggregatePct = 75

var mealNames = []string{"Breakfast", "Lunch", "Dinner"}
var mealTypes = []string{"breakfast", "lunch", "dinner"}

// GenerateStructure partitions a day into named slots for the given counts.
// It is a pure function of its two arguments: the same counts always produce
// the same slot names, order, and percentages. The prompt builder and the
// response validator both derive the expected structure from this function,
// so they can never disagree.
//
// Meals are interleaved with snacks (Breakfast, Snack 1, Lunch, Snack 2, ...)
// rather than grouped. Integer calorie percentages always sum to exactly 100;
// the rounding remainder goes to the first slot(s) in final order.
func GenerateStructure(mealCount, snackCount int) Structure {
	if mealCount < 0 {
		mealCount = 0
	}
	if snackCount < 0 {
		snackCount = 0
	}
	total := mealCount + snackCount
	if total == 0 {
		return Structure{TotalItems: 0, Slots: []Slot{}}
	}

	mealsPct, snacksPct := mealsAggregatePct, 100-mealsAggregatePct
	if snackCount == 0 {
		mealsPct, snacksPct = 100, 0
	}
	if mealCount == 0 {
		mealsPct, snacksPct = 0, 100
	}

	slots := make([]Slot, 0, total)
	rounds := mealCount
	if snackCount > rounds {
		rounds = snackCount
	}
	for r := 0; r < rounds; r++ {
		if r < mealCount {
			slots = append(slots, Slot{
				Name:              mealName(r),
				Type:              mealType(r),
				Category:          CategoryMeal,
				CaloriePercentage: mealsPct / mealCount,
			})
		}
		if r < snackCount {
			slots = append(slots, Slot{
				Name:              fmt.Sprintf("Snack %d", r+1),
				Type:              "snack",
				Category:          CategorySnack,
				CaloriePercentage: snacksPct / snackCount,
			})
		}
	}

	sum := 0
	for i := range slots {
		slots[i].Index = i
		sum += slots[i].CaloriePercentage
	}
	for i := 0; i < 100-sum; i++ {
		slots[i%len(slots)].CaloriePercentage++
	}

	return Structure{TotalItems: total, Slots: slots}
}

func mealName(i int) string {
	if i < len(mealNames) {
		return mealNames[i]
	}
	return fmt.Sprintf("Meal %d", i+1)
}

func mealType(i int) string {
	if i < len(mealTypes) {
		return mealTypes[i]
	}
	return "meal"
}
