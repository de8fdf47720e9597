package mealplan

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo keeps plans in memory, used when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{plans: make(map[string]Plan)}
}

func (r *MemoryRepo) Create(ctx context.Context, plan Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.ID] = clonePlan(plan)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return clonePlan(plan), nil
}

func (r *MemoryRepo) UpdateMeals(ctx context.Context, id string, meals []Meal, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	plan, ok := r.plans[id]
	if !ok {
		return ErrPlanNotFound
	}
	plan.Meals = cloneMeals(meals)
	plan.UpdatedAt = updatedAt
	r.plans[id] = plan
	return nil
}

func clonePlan(p Plan) Plan {
	out := p
	out.Preferences = append([]string(nil), p.Preferences...)
	out.Exclusions = append([]string(nil), p.Exclusions...)
	out.Meals = cloneMeals(p.Meals)
	return out
}

func cloneMeals(meals []Meal) []Meal {
	out := make([]Meal, len(meals))
	for i, m := range meals {
		m.Ingredients = append([]Ingredient(nil), m.Ingredients...)
		m.Instructions = append([]string(nil), m.Instructions...)
		out[i] = m
	}
	return out
}
