package mealplan

import "strings"

// Supported dietary restriction values. Anything else normalizes to "none".
const (
	DietaryNone       = "none"
	DietaryVegetarian = "vegetarian"
	DietaryVegan      = "vegan"
	DietaryGlutenFree = "gluten-free"
	DietaryDairyFree  = "dairy-free"
)

// dietaryGuidance maps each restriction to the substitution guidance embedded
// in the prompt. Every entry spells out where protein should come from, since
// that is the macro most affected by cutting a food group.
var dietaryGuidance = map[string]string{
	DietaryNone:       "No dietary restrictions apply. Use any whole-food ingredients.",
	DietaryVegetarian: "Strictly vegetarian: no meat, poultry, or fish. Source protein from eggs, dairy, legumes, tofu, tempeh, and seitan.",
	DietaryVegan:      "Strictly vegan: no animal products of any kind, including eggs, dairy, and honey. Source protein from legumes, tofu, tempeh, seitan, nuts, and seeds.",
	DietaryGlutenFree: "Strictly gluten-free: no wheat, barley, rye, or standard oats. Use rice, quinoa, corn, and certified gluten-free grains. Protein sources are unrestricted.",
	DietaryDairyFree:  "Strictly dairy-free: no milk, cheese, yogurt, butter, or cream. Use plant milks and oils instead. Source protein from meat, fish, eggs, and legumes.",
}

// NormalizeDietary lowercases and validates a dietary value, falling back to
// "none" for anything unrecognized.
func NormalizeDietary(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := dietaryGuidance[d]; ok {
		return d
	}
	return DietaryNone
}

// DietaryGuidance returns the prompt guidance text for a dietary value.
func DietaryGuidance(raw string) string {
	return dietaryGuidance[NormalizeDietary(raw)]
}
