package mealplan

import (
	"reflect"
	"testing"
)

func TestGenerateStructureInterleavesMealsAndSnacks(t *testing.T) {
	s := GenerateStructure(3, 2)

	if s.TotalItems != 5 {
		t.Fatalf("TotalItems = %d, want 5", s.TotalItems)
	}
	wantNames := []string{"Breakfast", "Snack 1", "Lunch", "Snack 2", "Dinner"}
	wantCats := []string{CategoryMeal, CategorySnack, CategoryMeal, CategorySnack, CategoryMeal}
	for i, slot := range s.Slots {
		if slot.Name != wantNames[i] {
			t.Errorf("slot %d name = %q, want %q", i, slot.Name, wantNames[i])
		}
		if slot.Category != wantCats[i] {
			t.Errorf("slot %d category = %q, want %q", i, slot.Category, wantCats[i])
		}
		if slot.Index != i {
			t.Errorf("slot %d index = %d", i, slot.Index)
		}
	}
}

func TestGenerateStructurePercentagesSumTo100(t *testing.T) {
	cases := []struct{ meals, snacks int }{
		{3, 2}, {4, 3}, {5, 0}, {0, 2}, {1, 1}, {7, 4}, {1, 0}, {0, 1},
	}
	for _, tc := range cases {
		s := GenerateStructure(tc.meals, tc.snacks)
		if len(s.Slots) != tc.meals+tc.snacks {
			t.Errorf("(%d,%d): %d slots", tc.meals, tc.snacks, len(s.Slots))
		}
		sum := 0
		for _, slot := range s.Slots {
			sum += slot.CaloriePercentage
		}
		if sum != 100 {
			t.Errorf("(%d,%d): percentages sum to %d", tc.meals, tc.snacks, sum)
		}
	}
}

func TestGenerateStructureKnownPercentages(t *testing.T) {
	s := GenerateStructure(3, 2)
	want := []int{26, 12, 25, 12, 25}
	for i, slot := range s.Slots {
		if slot.CaloriePercentage != want[i] {
			t.Errorf("slot %d pct = %d, want %d", i, slot.CaloriePercentage, want[i])
		}
	}
}

func TestGenerateStructureMealsOnly(t *testing.T) {
	s := GenerateStructure(3, 0)
	want := []int{34, 33, 33}
	for i, slot := range s.Slots {
		if slot.CaloriePercentage != want[i] {
			t.Errorf("slot %d pct = %d, want %d", i, slot.CaloriePercentage, want[i])
		}
		if slot.Category != CategoryMeal {
			t.Errorf("slot %d category = %q", i, slot.Category)
		}
	}
}

func TestGenerateStructureSnacksOnly(t *testing.T) {
	s := GenerateStructure(0, 2)
	if len(s.Slots) != 2 {
		t.Fatalf("%d slots", len(s.Slots))
	}
	for i, slot := range s.Slots {
		if slot.CaloriePercentage != 50 {
			t.Errorf("slot %d pct = %d, want 50", i, slot.CaloriePercentage)
		}
	}
}

func TestGenerateStructureExtraMealNames(t *testing.T) {
	s := GenerateStructure(4, 0)
	if got := s.Slots[3].Name; got != "Meal 4" {
		t.Fatalf("fourth meal name = %q, want Meal 4", got)
	}
}

func TestGenerateStructureDeterministic(t *testing.T) {
	a := GenerateStructure(4, 3)
	b := GenerateStructure(4, 3)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same counts produced different structures:\n%+v\n%+v", a, b)
	}
}

func TestGenerateStructureZeroAndNegativeCounts(t *testing.T) {
	for _, s := range []Structure{GenerateStructure(0, 0), GenerateStructure(-1, -3)} {
		if s.TotalItems != 0 || len(s.Slots) != 0 {
			t.Fatalf("empty counts produced %+v", s)
		}
	}
}
