package mealplan

import (
	"context"
	"time"
)

// Repo persists generated plans. UpdateMeals replaces the whole meal list in
// one write so a rebalance is applied as a single transaction; concurrent
// replacements resolve as last-write-wins.
type Repo interface {
	Create(ctx context.Context, plan Plan) error
	GetByID(ctx context.Context, id string) (Plan, error)
	UpdateMeals(ctx context.Context, id string, meals []Meal, updatedAt time.Time) error
}
