package mealplan

import (
	"time"

	"mealplan-backend/internal/macros"
)

// Slot categories.
const (
	CategoryMeal  = "meal"
	CategorySnack = "snack"
)

// DietaryAIGenerated tags meals whose dietary label came from the model
// rather than a user-selected restriction.
const DietaryAIGenerated = "ai-generated"

// Slot is one named position in a day's meal structure. It carries no food,
// only the share of daily calories the position must hit.
type Slot struct {
	Index             int    `json:"index"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Category          string `json:"category"`
	CaloriePercentage int    `json:"caloriePercentage"`
}

// Structure is the ordered slot list for a (mealCount, snackCount) pair.
type Structure struct {
	TotalItems int    `json:"totalItems"`
	Slots      []Slot `json:"slots"`
}

// Ingredient is a free-text ingredient line. Nutrition is captured at the
// meal level only, never per ingredient.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Serving  string `json:"serving,omitempty"`
}

// Meal is the internal meal record produced by the parser or derived by the
// rebalancer. IDs are 1-based and match slot position within a plan.
type Meal struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Category     string       `json:"category"`
	Dietary      string       `json:"dietary"`
	Calories     int          `json:"calories"`
	Protein      int          `json:"protein"`
	Carbs        int          `json:"carbs"`
	Fat          int          `json:"fat"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions,omitempty"`
	CookingTime  string       `json:"cookingTime,omitempty"`
	Description  string       `json:"description,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty"`
}

// Plan is a generated day plan plus everything needed to regenerate a single
// slot later: the targets, the structure counts, and the preference inputs
// that shaped the original prompt.
type Plan struct {
	ID          string         `json:"id"`
	Targets     macros.Targets `json:"targets"`
	MealCount   int            `json:"mealCount"`
	SnackCount  int            `json:"snackCount"`
	Dietary     string         `json:"dietary"`
	Preferences []string       `json:"preferences,omitempty"`
	Exclusions  []string       `json:"exclusions,omitempty"`
	Meals       []Meal         `json:"meals"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
