package mealplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. Targets, preference lists, and the
// meal list are stored as JSONB; the plan row is the unit of consistency.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, plan Plan) error {
	targetsJSON, err := json.Marshal(plan.Targets)
	if err != nil {
		return err
	}
	prefsJSON, err := json.Marshal(stringsOrEmpty(plan.Preferences))
	if err != nil {
		return err
	}
	exclJSON, err := json.Marshal(stringsOrEmpty(plan.Exclusions))
	if err != nil {
		return err
	}
	mealsJSON, err := json.Marshal(plan.Meals)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO meal_plans (id, targets, meal_count, snack_count, dietary, preferences, exclusions, meals, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		plan.ID, targetsJSON, plan.MealCount, plan.SnackCount, plan.Dietary,
		prefsJSON, exclJSON, mealsJSON, plan.CreatedAt, plan.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Plan, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, targets, meal_count, snack_count, dietary, preferences, exclusions, meals, created_at, updated_at
		FROM meal_plans WHERE id = $1`, id)

	var plan Plan
	var targetsJSON, prefsJSON, exclJSON, mealsJSON []byte
	err := row.Scan(&plan.ID, &targetsJSON, &plan.MealCount, &plan.SnackCount, &plan.Dietary,
		&prefsJSON, &exclJSON, &mealsJSON, &plan.CreatedAt, &plan.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, ErrPlanNotFound
	}
	if err != nil {
		return Plan{}, err
	}

	if err := json.Unmarshal(targetsJSON, &plan.Targets); err != nil {
		return Plan{}, err
	}
	if err := json.Unmarshal(prefsJSON, &plan.Preferences); err != nil {
		return Plan{}, err
	}
	if err := json.Unmarshal(exclJSON, &plan.Exclusions); err != nil {
		return Plan{}, err
	}
	if err := json.Unmarshal(mealsJSON, &plan.Meals); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (r *PGRepo) UpdateMeals(ctx context.Context, id string, meals []Meal, updatedAt time.Time) error {
	mealsJSON, err := json.Marshal(meals)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE meal_plans SET meals = $1, updated_at = $2 WHERE id = $3`,
		mealsJSON, updatedAt, id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func stringsOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

var _ Repo = (*PGRepo)(nil)
var _ Repo = (*MemoryRepo)(nil)
