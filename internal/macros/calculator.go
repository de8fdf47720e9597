package macros

import (
	"math"
	"strings"
)

// Targets holds the daily macro targets. Calories are kilocalories, the
// other three are grams. A zero value means "no target set" for that macro.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// IsZero reports whether no target macro is set.
func (t Targets) IsZero() bool {
	return t.Calories == 0 && t.Protein == 0 && t.Carbs == 0 && t.Fat == 0
}

// Stats holds the personal inputs needed to compute daily targets.
type Stats struct {
	Sex           string  `json:"sex"`
	Age           int     `json:"age"`
	HeightCM      float64 `json:"heightCm"`
	WeightKG      float64 `json:"weightKg"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// goalSplit holds the calorie adjustment and macro percentage split for a goal.
type goalSplit struct {
	calorieDelta int
	proteinPct   int
	carbsPct     int
	fatPct       int
}

var goalSplits = map[string]goalSplit{
	"lose":     {calorieDelta: -500, proteinPct: 40, carbsPct: 30, fatPct: 30},
	"maintain": {calorieDelta: 0, proteinPct: 30, carbsPct: 40, fatPct: 30},
	"gain":     {calorieDelta: 300, proteinPct: 30, carbsPct: 45, fatPct: 25},
}

// minCalories is the floor applied after a goal deficit so the plan never
// targets a starvation-level budget.
const minCalories = 1200

// Calculate computes daily macro targets from personal stats. BMR uses
// Mifflin-St Jeor, TDEE applies the activity multiplier, and the goal picks
// both a calorie adjustment and a protein/carb/fat percentage split.
// Returns ok=false when any input is missing or implausible; callers must
// treat that as "cannot compute yet", not as an error.
func Calculate(s Stats) (Targets, bool) {
	if s.Age <= 0 || s.Age > 130 || s.HeightCM <= 0 || s.WeightKG <= 0 {
		return Targets{}, false
	}

	bmr := 10*s.WeightKG + 6.25*s.HeightCM - 5*float64(s.Age)
	switch strings.ToLower(strings.TrimSpace(s.Sex)) {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return Targets{}, false
	}

	mult, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(s.ActivityLevel))]
	if !ok {
		return Targets{}, false
	}
	tdee := bmr * mult

	split, ok := goalSplits[strings.ToLower(strings.TrimSpace(s.Goal))]
	if !ok {
		return Targets{}, false
	}

	calories := tdee + float64(split.calorieDelta)
	if calories < minCalories {
		calories = minCalories
	}

	// Protein and carbs carry 4 kcal per gram, fat 9.
	return Targets{
		Calories: int(math.Round(calories)),
		Protein:  int(math.Round(calories * float64(split.proteinPct) / 100 / 4)),
		Carbs:    int(math.Round(calories * float64(split.carbsPct) / 100 / 4)),
		Fat:      int(math.Round(calories * float64(split.fatPct) / 100 / 9)),
	}, true
}
