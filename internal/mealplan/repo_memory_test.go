package mealplan

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	plan := testPlan()

	if err := repo.Create(context.Background(), plan); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != plan.ID || len(got.Meals) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("err = %v, want ErrPlanNotFound", err)
	}
	if err := repo.UpdateMeals(context.Background(), "missing", nil, time.Now()); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("err = %v, want ErrPlanNotFound", err)
	}
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryRepo()
	plan := testPlan()
	if err := repo.Create(context.Background(), plan); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), plan.ID)
	got.Meals[0].Name = "Mutated"

	again, _ := repo.GetByID(context.Background(), plan.ID)
	if again.Meals[0].Name != "Breakfast Bowl" {
		t.Fatal("stored plan shares memory with returned copy")
	}
}

func TestMemoryRepoUpdateMeals(t *testing.T) {
	repo := NewMemoryRepo()
	plan := testPlan()
	if err := repo.Create(context.Background(), plan); err != nil {
		t.Fatalf("Create: %v", err)
	}

	later := plan.UpdatedAt.Add(time.Minute)
	if err := repo.UpdateMeals(context.Background(), plan.ID, []Meal{{ID: 1, Name: "Swapped"}}, later); err != nil {
		t.Fatalf("UpdateMeals: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), plan.ID)
	if got.Meals[0].Name != "Swapped" {
		t.Fatalf("meals = %+v", got.Meals)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("updatedAt = %v, want %v", got.UpdatedAt, later)
	}
}
