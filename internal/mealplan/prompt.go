package mealplan

import (
	"fmt"
	"math"
	"strings"

	"mealplan-backend/internal/macros"
	"mealplan-backend/internal/shared/util"
)

// MacroTolerancePct is the single tolerance band, in percent, applied to
// every macro: the prompt asks the model to stay within it and the validator
// rejects daily totals outside it. Prompt and validator intentionally share
// one constant so they can never drift apart.
const MacroTolerancePct = 10

// PromptInput carries everything the prompt builder needs. All session state
// arrives as parameters; the builder reads nothing ambient.
type PromptInput struct {
	Targets     macros.Targets
	MealCount   int
	SnackCount  int
	Dietary     string
	Preferences []string
	Exclusions  []string
	FreeText    string
}

// SlotTargets derives one slot's numeric targets from the daily totals and
// the slot's calorie percentage. Per-slot targets are never stored; they are
// always recomputed from the same inputs so the prompt and the parser's
// fallback defaults agree.
func SlotTargets(total macros.Targets, slot Slot) macros.Targets {
	scale := func(v int) int {
		return int(math.Round(float64(v) * float64(slot.CaloriePercentage) / 100))
	}
	return macros.Targets{
		Calories: scale(total.Calories),
		Protein:  scale(total.Protein),
		Carbs:    scale(total.Carbs),
		Fat:      scale(total.Fat),
	}
}

// BuildPrompt constructs the full-day generation prompt. Pure string
// construction; the external call happens elsewhere.
func BuildPrompt(in PromptInput) string {
	structure := GenerateStructure(in.MealCount, in.SnackCount)

	var b strings.Builder
	b.WriteString("You are a meal planning assistant. Create a one-day meal plan that hits exact macro targets.\n\n")

	writeDailyTargets(&b, in.Targets)

	fmt.Fprintf(&b, "Generate exactly %d items in this exact order:\n", structure.TotalItems)
	for _, slot := range structure.Slots {
		st := SlotTargets(in.Targets, slot)
		fmt.Fprintf(&b, "%d. %s (%s, %s, %d%% of daily calories): %d calories, %dg protein, %dg carbs, %dg fat\n",
			slot.Index+1, slot.Name, slot.Category, slot.Type, slot.CaloriePercentage,
			st.Calories, st.Protein, st.Carbs, st.Fat)
	}
	b.WriteString("\n")

	writeCompositionRules(&b)
	writeDietary(&b, in.Dietary)
	writeFoodLists(&b, in.Preferences, in.Exclusions)

	if ft := util.SanitizeFreeText(in.FreeText); ft != "" {
		b.WriteString("Additional request from the user:\n")
		b.WriteString(ft)
		b.WriteString("\n\n")
	}

	writeOutputShape(&b)
	return b.String()
}

// BuildSlotPrompt constructs the single-slot regeneration prompt used by the
// replace flow. It encodes only the one slot's targets but keeps the full
// rule set so a replacement meal obeys the same constraints.
func BuildSlotPrompt(in PromptInput, slot Slot) string {
	st := SlotTargets(in.Targets, slot)

	var b strings.Builder
	b.WriteString("You are a meal planning assistant. Create one replacement item for an existing one-day meal plan.\n\n")
	fmt.Fprintf(&b, "The item is %q (%s, %s) and must hit, within %d%% per macro:\n",
		slot.Name, slot.Category, slot.Type, MacroTolerancePct)
	fmt.Fprintf(&b, "- Calories: %d kcal\n- Protein: %dg\n- Carbs: %dg\n- Fat: %dg\n\n",
		st.Calories, st.Protein, st.Carbs, st.Fat)

	writeCompositionRules(&b)
	writeDietary(&b, in.Dietary)
	writeFoodLists(&b, in.Preferences, in.Exclusions)

	if ft := util.SanitizeFreeText(in.FreeText); ft != "" {
		b.WriteString("Additional request from the user:\n")
		b.WriteString(ft)
		b.WriteString("\n\n")
	}

	b.WriteString("Respond with a single JSON object only, no markdown, shaped as:\n")
	b.WriteString(`{"meals": [{"name": "...", "category": "...", "type": "...", "description": "...", "macros": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}, "ingredients": [{"item": "...", "quantity": "...", "serving": "..."}], "instructions": ["..."], "cookingTime": "...", "difficulty": "easy|medium|hard"}]}`)
	b.WriteString("\nThe meals array must contain exactly one element.\n")
	return b.String()
}

func writeDailyTargets(b *strings.Builder, t macros.Targets) {
	fmt.Fprintf(b, "Daily totals must land within %d%% of each target:\n", MacroTolerancePct)
	fmt.Fprintf(b, "- Calories: %d kcal\n", t.Calories)
	fmt.Fprintf(b, "- Protein: %dg\n", t.Protein)
	fmt.Fprintf(b, "- Carbs: %dg\n", t.Carbs)
	fmt.Fprintf(b, "- Fat: %dg\n\n", t.Fat)
}

func writeCompositionRules(b *strings.Builder) {
	b.WriteString("Composition rules:\n")
	b.WriteString("- Meals: 3-5 ingredients each, with multi-step preparation instructions.\n")
	b.WriteString("- Snacks: 1-3 ingredients each, requiring little to no preparation.\n")
	b.WriteString("- Use US customary measurement units only (oz, cups, tbsp, tsp, lb).\n\n")
}

func writeDietary(b *strings.Builder, dietary string) {
	b.WriteString("Dietary restriction: ")
	b.WriteString(DietaryGuidance(dietary))
	b.WriteString("\n\n")
}

func writeFoodLists(b *strings.Builder, preferences, exclusions []string) {
	if prefs := cleanList(preferences); len(prefs) > 0 {
		b.WriteString("Prioritize these foods wherever they fit: ")
		b.WriteString(strings.Join(prefs, ", "))
		b.WriteString(".\n")
	}
	if excl := cleanList(exclusions); len(excl) > 0 {
		b.WriteString("Never use these foods under any circumstances: ")
		b.WriteString(strings.Join(excl, ", "))
		b.WriteString(".\n")
	}
	b.WriteString("\n")
}

func writeOutputShape(b *strings.Builder) {
	b.WriteString("Respond with a single JSON object only, no markdown, shaped as:\n")
	b.WriteString(`{"meals": [{"name": "...", "category": "meal|snack", "type": "...", "description": "...", "macros": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}, "ingredients": [{"item": "...", "quantity": "...", "serving": "..."}], "instructions": ["..."], "cookingTime": "...", "difficulty": "easy|medium|hard"}], "dailyTotals": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}}`)
	b.WriteString("\nThe meals array must list items in the exact order given above, one element per item.\n")
}

func cleanList(items []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
