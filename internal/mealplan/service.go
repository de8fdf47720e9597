package mealplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealplan-backend/internal/llm"
	"mealplan-backend/internal/macros"
	"mealplan-backend/internal/shared/metrics"
	"mealplan-backend/internal/shared/telemetry"
)

// ErrLLM wraps any failure of the external completion call so handlers can
// map transport errors to one status without interpreting provider details.
var ErrLLM = errors.New("completion call failed")

// Service runs the generation pipeline: prompt construction, the external
// completion call, validation, and persistence. It performs no retries;
// re-prompting after a rejected response is the caller's policy.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// GenerateInput is the full-plan request. All session state arrives here;
// the service holds nothing mutable between calls.
type GenerateInput struct {
	Targets     macros.Targets
	MealCount   int
	SnackCount  int
	Dietary     string
	Preferences []string
	Exclusions  []string
	FreeText    string
}

func (in GenerateInput) validate() error {
	if in.MealCount < 0 || in.SnackCount < 0 {
		return fmt.Errorf("%w: meal and snack counts must be non-negative", ErrInvalidInput)
	}
	if in.MealCount+in.SnackCount == 0 {
		return fmt.Errorf("%w: at least one meal or snack is required", ErrInvalidInput)
	}
	if in.Targets.Calories <= 0 {
		return fmt.Errorf("%w: a calorie target is required", ErrInvalidInput)
	}
	return nil
}

// Generate produces, validates, and stores a new plan. A failed attempt
// stores nothing, so any previously generated plan is left untouched.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (Plan, error) {
	if err := in.validate(); err != nil {
		return Plan{}, err
	}
	in.Dietary = NormalizeDietary(in.Dietary)

	metrics.IncGenerationStarted()
	started := time.Now()

	prompt := BuildPrompt(PromptInput{
		Targets:     in.Targets,
		MealCount:   in.MealCount,
		SnackCount:  in.SnackCount,
		Dietary:     in.Dietary,
		Preferences: in.Preferences,
		Exclusions:  in.Exclusions,
		FreeText:    in.FreeText,
	})

	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		metrics.IncGenerationFailed()
		return Plan{}, fmt.Errorf("%w: %v", ErrLLM, err)
	}

	meals, err := ParseAndValidate(raw, in.MealCount, in.SnackCount, in.Targets)
	if err != nil {
		metrics.IncGenerationFailed()
		return Plan{}, err
	}

	now := time.Now().UTC()
	plan := Plan{
		ID:          uuid.NewString(),
		Targets:     in.Targets,
		MealCount:   in.MealCount,
		SnackCount:  in.SnackCount,
		Dietary:     in.Dietary,
		Preferences: cleanList(in.Preferences),
		Exclusions:  cleanList(in.Exclusions),
		Meals:       meals,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, plan); err != nil {
		metrics.IncGenerationFailed()
		return Plan{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	telemetry.Info("plan.generated", map[string]any{
		"plan_id":     plan.ID,
		"meal_count":  in.MealCount,
		"snack_count": in.SnackCount,
		"dietary":     in.Dietary,
	})
	return plan, nil
}

// Get returns a stored plan.
func (s *Service) Get(ctx context.Context, id string) (Plan, error) {
	return s.Repo.GetByID(ctx, id)
}

// ReplaceInput is a single-slot regeneration request.
type ReplaceInput struct {
	PlanID    string
	SlotIndex int
	FreeText  string
	Rebalance bool
}

// ReplaceResult reports the updated plan plus rebalance details when a
// rebalance ran.
type ReplaceResult struct {
	Plan       Plan
	Rebalanced bool
	Success    bool
}

// Replace regenerates one slot and optionally rebalances the rest of the
// plan. The updated meal list is written in one positional transaction; a
// failure at any step leaves the stored plan untouched. Independent replace
// calls for different indexes may run concurrently; the last write for a
// given index wins.
func (s *Service) Replace(ctx context.Context, in ReplaceInput) (ReplaceResult, error) {
	plan, err := s.Repo.GetByID(ctx, in.PlanID)
	if err != nil {
		return ReplaceResult{}, err
	}
	structure := GenerateStructure(plan.MealCount, plan.SnackCount)
	if in.SlotIndex < 0 || in.SlotIndex >= len(structure.Slots) {
		return ReplaceResult{}, ErrBadSlotIndex
	}
	slot := structure.Slots[in.SlotIndex]

	prompt := BuildSlotPrompt(PromptInput{
		Targets:     plan.Targets,
		MealCount:   plan.MealCount,
		SnackCount:  plan.SnackCount,
		Dietary:     plan.Dietary,
		Preferences: plan.Preferences,
		Exclusions:  plan.Exclusions,
		FreeText:    in.FreeText,
	}, slot)

	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return ReplaceResult{}, fmt.Errorf("%w: %v", ErrLLM, err)
	}

	newMeal, err := ParseSlotMeal(raw, slot, plan.Targets)
	if err != nil {
		return ReplaceResult{}, err
	}

	result := ReplaceResult{Rebalanced: in.Rebalance}
	var meals []Meal
	if in.Rebalance {
		rebalanced := Rebalance(plan.Meals, in.SlotIndex, newMeal, plan.Targets)
		meals = rebalanced.Meals
		result.Success = rebalanced.Success
	} else {
		meals = cloneMeals(plan.Meals)
		newMeal.ID = in.SlotIndex + 1
		meals[in.SlotIndex] = newMeal
		result.Success = true
	}

	now := time.Now().UTC()
	if err := s.Repo.UpdateMeals(ctx, plan.ID, meals, now); err != nil {
		return ReplaceResult{}, err
	}

	plan.Meals = meals
	plan.UpdatedAt = now
	result.Plan = plan

	telemetry.Info("plan.meal_replaced", map[string]any{
		"plan_id":    plan.ID,
		"slot_index": in.SlotIndex,
		"rebalanced": in.Rebalance,
		"success":    result.Success,
	})
	return result, nil
}
