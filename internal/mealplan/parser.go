package mealplan

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"mealplan-backend/internal/macros"
	"mealplan-backend/internal/shared/telemetry"
)

// aiMacros mirrors the optional macro aggregates in the AI response. Pointer
// fields make absence explicit: a missing field is defaulted, never confused
// with zero.
type aiMacros struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

type aiIngredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Serving  string `json:"serving"`
}

// aiMeal is the untyped-edge record for one returned item. Macros may arrive
// nested under "macros" or flat on the object; both are accepted.
type aiMeal struct {
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	Dietary      string         `json:"dietary"`
	Macros       *aiMacros      `json:"macros"`
	Calories     *float64       `json:"calories"`
	Protein      *float64       `json:"protein"`
	Carbs        *float64       `json:"carbs"`
	Fat          *float64       `json:"fat"`
	Ingredients  []aiIngredient `json:"ingredients"`
	Description  string         `json:"description"`
	Instructions []string       `json:"instructions"`
	CookingTime  string         `json:"cookingTime"`
	Difficulty   string         `json:"difficulty"`
}

type aiResponse struct {
	Meals       []aiMeal  `json:"meals"`
	DailyTotals *aiMacros `json:"dailyTotals"`
}

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// extractJSON isolates the outermost {...} span of raw text, stripping any
// markdown code fences first. Returns ok=false when no span exists.
func extractJSON(raw string) (string, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// repairJSON strips trailing commas before a closing brace or bracket, the
// one malformation models produce often enough to be worth fixing locally.
func repairJSON(span string) string {
	return trailingCommaRe.ReplaceAllString(span, "$1")
}

func decodeResponse(raw string) (aiResponse, error) {
	span, ok := extractJSON(raw)
	if !ok {
		return aiResponse{}, ErrNoJSONFound
	}

	var parsed aiResponse
	if err := json.Unmarshal([]byte(span), &parsed); err == nil {
		return parsed, nil
	}

	if err := json.Unmarshal([]byte(repairJSON(span)), &parsed); err != nil {
		return aiResponse{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return parsed, nil
}

// ParseAndValidate converts a raw AI response into the internal meal list for
// the expected structure. It is all-or-nothing: count mismatches and daily
// totals outside the tolerance band reject the whole response, while missing
// per-item fields fall back to slot-derived defaults. Category labels are
// checked leniently (warning only); positional alignment between response
// items and expected slots is the contract.
func ParseAndValidate(raw string, mealCount, snackCount int, targets macros.Targets) ([]Meal, error) {
	parsed, err := decodeResponse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Meals == nil {
		return nil, ErrMissingMeals
	}

	structure := GenerateStructure(mealCount, snackCount)
	if len(parsed.Meals) != structure.TotalItems {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMealCountMismatch, len(parsed.Meals), structure.TotalItems)
	}

	if err := checkDailyTotals(parsed.DailyTotals, targets); err != nil {
		return nil, err
	}

	meals := make([]Meal, 0, structure.TotalItems)
	for i, slot := range structure.Slots {
		meals = append(meals, mapMeal(parsed.Meals[i], slot, targets))
	}
	return meals, nil
}

// ParseSlotMeal converts a single-slot regeneration response into one Meal
// for the given slot. The same isolation/repair path applies; the response
// must contain exactly one meal.
func ParseSlotMeal(raw string, slot Slot, targets macros.Targets) (Meal, error) {
	parsed, err := decodeResponse(raw)
	if err != nil {
		return Meal{}, err
	}
	if parsed.Meals == nil {
		// Some responses return the bare meal object instead of wrapping it.
		span, _ := extractJSON(raw)
		var single aiMeal
		if uErr := json.Unmarshal([]byte(repairJSON(span)), &single); uErr != nil || single.Name == "" {
			return Meal{}, ErrMissingMeals
		}
		return mapMeal(single, slot, targets), nil
	}
	if len(parsed.Meals) != 1 {
		return Meal{}, fmt.Errorf("%w: got %d, want 1", ErrMealCountMismatch, len(parsed.Meals))
	}
	return mapMeal(parsed.Meals[0], slot, targets), nil
}

// checkDailyTotals rejects the response when any reported aggregate deviates
// from its non-zero target by more than the shared tolerance. A zero target
// or an absent aggregate field passes automatically.
func checkDailyTotals(totals *aiMacros, targets macros.Targets) error {
	if totals == nil {
		return nil
	}
	checks := []struct {
		name   string
		actual *float64
		target int
	}{
		{"calories", totals.Calories, targets.Calories},
		{"protein", totals.Protein, targets.Protein},
		{"carbs", totals.Carbs, targets.Carbs},
		{"fat", totals.Fat, targets.Fat},
	}
	limit := float64(MacroTolerancePct) / 100
	for _, c := range checks {
		if c.actual == nil || c.target == 0 {
			continue
		}
		deviation := math.Abs(*c.actual-float64(c.target)) / float64(c.target)
		if deviation > limit {
			return fmt.Errorf("%w: %s is %.0f, target %d (deviation %.1f%%, limit %d%%)",
				ErrMacroTolerance, c.name, *c.actual, c.target, deviation*100, MacroTolerancePct)
		}
	}
	return nil
}

// mapMeal converts one untyped response item onto its expected slot. The
// result carries a 1-based ID matching the slot position; missing labels fall
// back to the slot, and each macro independently falls back to the slot's
// derived target when absent.
func mapMeal(m aiMeal, slot Slot, targets macros.Targets) Meal {
	if m.Category != "" && m.Category != slot.Category {
		telemetry.Warn("meal.category_mismatch", map[string]any{
			"slot":     slot.Index + 1,
			"got":      m.Category,
			"expected": slot.Category,
		})
	}

	st := SlotTargets(targets, slot)
	meal := Meal{
		ID:           slot.Index + 1,
		Name:         fallback(m.Name, slot.Name),
		Type:         fallback(m.Type, slot.Type),
		Category:     fallback(m.Category, slot.Category),
		Dietary:      fallback(m.Dietary, DietaryAIGenerated),
		Calories:     coerceMacro(m.Calories, nestedMacro(m.Macros, func(n aiMacros) *float64 { return n.Calories }), st.Calories),
		Protein:      coerceMacro(m.Protein, nestedMacro(m.Macros, func(n aiMacros) *float64 { return n.Protein }), st.Protein),
		Carbs:        coerceMacro(m.Carbs, nestedMacro(m.Macros, func(n aiMacros) *float64 { return n.Carbs }), st.Carbs),
		Fat:          coerceMacro(m.Fat, nestedMacro(m.Macros, func(n aiMacros) *float64 { return n.Fat }), st.Fat),
		Ingredients:  make([]Ingredient, 0, len(m.Ingredients)),
		Description:  m.Description,
		CookingTime:  m.CookingTime,
		Difficulty:   m.Difficulty,
	}
	for _, ing := range m.Ingredients {
		meal.Ingredients = append(meal.Ingredients, Ingredient{
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Serving:  ing.Serving,
		})
	}
	if len(m.Instructions) > 0 {
		meal.Instructions = append([]string(nil), m.Instructions...)
	}
	return meal
}

func nestedMacro(m *aiMacros, pick func(aiMacros) *float64) *float64 {
	if m == nil {
		return nil
	}
	return pick(*m)
}

// coerceMacro rounds the first present value to an integer, preferring the
// nested macros object over a flat field, and clamping negatives to zero.
func coerceMacro(flat, nested *float64, def int) int {
	v := def
	switch {
	case nested != nil:
		v = int(math.Round(*nested))
	case flat != nil:
		v = int(math.Round(*flat))
	}
	if v < 0 {
		return 0
	}
	return v
}

func fallback(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}
