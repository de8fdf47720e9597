package macros

import "testing"

func validStats() Stats {
	return Stats{
		Sex:           "male",
		Age:           30,
		HeightCM:      180,
		WeightKG:      80,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
}

func TestCalculateMaintainMale(t *testing.T) {
	targets, ok := Calculate(validStats())
	if !ok {
		t.Fatal("expected targets for valid stats")
	}

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5 = 1780; TDEE = 1780*1.55 = 2759.
	if targets.Calories != 2759 {
		t.Fatalf("calories = %d, want 2759", targets.Calories)
	}
	if targets.Protein != 207 {
		t.Fatalf("protein = %d, want 207", targets.Protein)
	}
	if targets.Carbs != 276 {
		t.Fatalf("carbs = %d, want 276", targets.Carbs)
	}
	if targets.Fat != 92 {
		t.Fatalf("fat = %d, want 92", targets.Fat)
	}
}

func TestCalculateGoalAdjustments(t *testing.T) {
	base, ok := Calculate(validStats())
	if !ok {
		t.Fatal("expected targets for valid stats")
	}

	lose := validStats()
	lose.Goal = "lose"
	loseTargets, ok := Calculate(lose)
	if !ok {
		t.Fatal("expected targets for lose goal")
	}
	if loseTargets.Calories != base.Calories-500 {
		t.Fatalf("lose calories = %d, want %d", loseTargets.Calories, base.Calories-500)
	}

	gain := validStats()
	gain.Goal = "gain"
	gainTargets, ok := Calculate(gain)
	if !ok {
		t.Fatal("expected targets for gain goal")
	}
	if gainTargets.Calories != base.Calories+300 {
		t.Fatalf("gain calories = %d, want %d", gainTargets.Calories, base.Calories+300)
	}
}

func TestCalculateCalorieFloor(t *testing.T) {
	s := Stats{Sex: "female", Age: 60, HeightCM: 150, WeightKG: 45, ActivityLevel: "sedentary", Goal: "lose"}
	targets, ok := Calculate(s)
	if !ok {
		t.Fatal("expected targets")
	}
	if targets.Calories != 1200 {
		t.Fatalf("calories = %d, want floor 1200", targets.Calories)
	}
}

func TestCalculateRejectsIncompleteStats(t *testing.T) {
	cases := map[string]func(*Stats){
		"zero age":         func(s *Stats) { s.Age = 0 },
		"implausible age":  func(s *Stats) { s.Age = 140 },
		"zero height":      func(s *Stats) { s.HeightCM = 0 },
		"zero weight":      func(s *Stats) { s.WeightKG = 0 },
		"unknown sex":      func(s *Stats) { s.Sex = "other" },
		"unknown activity": func(s *Stats) { s.ActivityLevel = "hyper" },
		"unknown goal":     func(s *Stats) { s.Goal = "bulk-hard" },
	}
	for name, mutate := range cases {
		s := validStats()
		mutate(&s)
		if _, ok := Calculate(s); ok {
			t.Errorf("%s: expected ok=false", name)
		}
	}
}

func TestTargetsIsZero(t *testing.T) {
	if !(Targets{}).IsZero() {
		t.Fatal("zero targets should report IsZero")
	}
	if (Targets{Protein: 150}).IsZero() {
		t.Fatal("targets with protein set should not report IsZero")
	}
}
