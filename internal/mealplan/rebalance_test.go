package mealplan

import (
	"testing"

	"mealplan-backend/internal/macros"
)

func fiveEqualMeals() []Meal {
	meals := make([]Meal, 5)
	for i := range meals {
		meals[i] = Meal{
			ID: i + 1, Name: "Meal", Category: CategoryMeal,
			Calories: 500, Protein: 40, Carbs: 50, Fat: 20,
			Ingredients: []Ingredient{{Item: "oats", Quantity: "2 cups"}},
		}
	}
	return meals
}

func sumMeals(meals []Meal) (cal, pro, carb, fat int) {
	for _, m := range meals {
		cal += m.Calories
		pro += m.Protein
		carb += m.Carbs
		fat += m.Fat
	}
	return
}

func TestRebalanceConservesTotals(t *testing.T) {
	meals := fiveEqualMeals()
	targets := macros.Targets{Calories: 2500, Protein: 200, Carbs: 250, Fat: 100}
	newMeal := Meal{Name: "Lighter", Calories: 300, Protein: 30, Carbs: 40, Fat: 15}

	res := Rebalance(meals, 0, newMeal, targets)

	cal, pro, carb, fat := sumMeals(res.Meals)
	if cal != 2500 || pro != 200 || carb != 250 || fat != 100 {
		t.Fatalf("totals drifted: %d cal %dp %dc %df", cal, pro, carb, fat)
	}
	if !res.Success {
		t.Fatal("expected success inside bands")
	}
	if res.Meals[0].Name != "Lighter" || res.Meals[0].ID != 1 {
		t.Fatalf("swapped meal = %q id %d", res.Meals[0].Name, res.Meals[0].ID)
	}
}

func TestRebalanceSkipsSmallSwaps(t *testing.T) {
	meals := fiveEqualMeals()
	targets := macros.Targets{Calories: 2500, Protein: 200, Carbs: 250, Fat: 100}
	// Deltas of 40 cal, 4p, 9c, 4f all sit under the impact thresholds.
	newMeal := Meal{Name: "Similar", Calories: 460, Protein: 36, Carbs: 41, Fat: 16}

	res := Rebalance(meals, 2, newMeal, targets)

	for i, m := range res.Meals {
		if i == 2 {
			continue
		}
		if m.Calories != 500 || m.Protein != 40 {
			t.Fatalf("meal %d adjusted on a below-threshold swap: %+v", i, m)
		}
	}
}

func TestRebalanceScalesIngredientQuantities(t *testing.T) {
	meals := []Meal{
		{ID: 1, Calories: 500, Protein: 40, Carbs: 50, Fat: 20},
		{ID: 2, Calories: 500, Protein: 40, Carbs: 50, Fat: 20,
			Ingredients: []Ingredient{{Item: "rice", Quantity: "2 cups"}, {Item: "salt", Quantity: "to taste"}}},
		{ID: 3, Calories: 500, Protein: 40, Carbs: 50, Fat: 20},
	}
	targets := macros.Targets{Calories: 1500, Protein: 120, Carbs: 150, Fat: 60}
	newMeal := Meal{Name: "Light", Calories: 200, Protein: 25, Carbs: 30, Fat: 10}

	res := Rebalance(meals, 0, newMeal, targets)

	// Each remaining meal absorbs +150 calories, ratio 1.3.
	adjusted := res.Meals[1]
	if adjusted.Calories != 650 {
		t.Fatalf("calories = %d, want 650", adjusted.Calories)
	}
	if got := adjusted.Ingredients[0].Quantity; got != "2.6 cups" {
		t.Errorf("quantity = %q, want 2.6 cups", got)
	}
	if got := adjusted.Ingredients[1].Quantity; got != "to taste" {
		t.Errorf("freeform quantity changed: %q", got)
	}
}

func TestRebalanceClampsToFloors(t *testing.T) {
	meals := []Meal{
		{ID: 1, Calories: 600, Protein: 50, Carbs: 60, Fat: 25},
		{ID: 2, Calories: 120, Protein: 7, Carbs: 5, Fat: 3},
	}
	targets := macros.Targets{Calories: 720, Protein: 57, Carbs: 65, Fat: 28}
	// A much heavier replacement pushes the other meal toward the floors.
	newMeal := Meal{Name: "Heavy", Calories: 900, Protein: 80, Carbs: 90, Fat: 40}

	res := Rebalance(meals, 0, newMeal, targets)

	other := res.Meals[1]
	if other.Calories < 100 || other.Protein < 5 || other.Carbs < 0 || other.Fat < 2 {
		t.Fatalf("floors violated: %+v", other)
	}
	if res.Success {
		t.Fatal("expected success=false when clamping breaks the bands")
	}
}

func TestRebalanceDoesNotMutateInput(t *testing.T) {
	meals := fiveEqualMeals()
	targets := macros.Targets{Calories: 2500, Protein: 200, Carbs: 250, Fat: 100}
	Rebalance(meals, 0, Meal{Name: "X", Calories: 300, Protein: 30, Carbs: 40, Fat: 15}, targets)

	for i, m := range meals {
		if m.Calories != 500 || m.Name != "Meal" {
			t.Fatalf("input meal %d mutated: %+v", i, m)
		}
	}
}

func TestRebalanceSingleMealPlan(t *testing.T) {
	meals := []Meal{{ID: 1, Calories: 2000, Protein: 150, Carbs: 200, Fat: 70}}
	targets := macros.Targets{Calories: 2000, Protein: 150, Carbs: 200, Fat: 70}
	newMeal := Meal{Name: "Only", Calories: 1500, Protein: 100, Carbs: 150, Fat: 50}

	res := Rebalance(meals, 0, newMeal, targets)
	if res.Meals[0].Calories != 1500 {
		t.Fatalf("single meal not swapped: %+v", res.Meals[0])
	}
	if res.Success {
		t.Fatal("25%% calorie shortfall should fail the bands")
	}
}

func TestSplitEvenlySumsExactly(t *testing.T) {
	cases := []struct {
		delta, n int
	}{
		{200, 4}, {10, 4}, {-35, 3}, {1, 2}, {0, 5}, {-7, 1},
	}
	for _, tc := range cases {
		parts := splitEvenly(tc.delta, tc.n)
		if len(parts) != tc.n {
			t.Errorf("(%d,%d): %d parts", tc.delta, tc.n, len(parts))
			continue
		}
		sum := 0
		for _, p := range parts {
			sum += p
		}
		if sum != tc.delta {
			t.Errorf("(%d,%d): parts sum to %d", tc.delta, tc.n, sum)
		}
	}
}
