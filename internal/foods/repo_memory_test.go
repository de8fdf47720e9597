package foods

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoListAll(t *testing.T) {
	repo := NewMemoryRepo()
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != len(defaultFoods) {
		t.Fatalf("got %d foods, want %d", len(items), len(defaultFoods))
	}
	for _, f := range items {
		if f.DataSource != "usda-fdc" || f.ConfidenceScore != 0.95 {
			t.Fatalf("provenance missing on %q: %+v", f.ID, f)
		}
	}
}

func TestMemoryRepoListByCategory(t *testing.T) {
	repo := NewMemoryRepo()
	items, err := repo.ListByCategory(context.Background(), CategoryVegetables)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("no vegetables")
	}
	for _, f := range items {
		if f.Category != CategoryVegetables {
			t.Fatalf("%q in wrong category %q", f.ID, f.Category)
		}
	}
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := NewMemoryRepo()
	f, err := repo.GetByID(context.Background(), "salmon")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if f.Name != "Salmon" || f.Category != CategoryProteins {
		t.Fatalf("got %+v", f)
	}

	if _, err := repo.GetByID(context.Background(), "unobtainium"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryProteins, CategoryCarbs, CategoryFats, CategoryVegetables} {
		if !ValidCategory(c) {
			t.Errorf("%q rejected", c)
		}
	}
	if ValidCategory("desserts") {
		t.Error("unknown category accepted")
	}
}
