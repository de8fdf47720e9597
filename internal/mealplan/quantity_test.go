package mealplan

import "testing"

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw     string
		numeric bool
		value   float64
		unit    string
	}{
		{"2 cups", true, 2, "cups"},
		{"1.5 tbsp", true, 1.5, "tbsp"},
		{"1/2 cup", true, 0.5, "cup"},
		{"1 / 4 tsp", true, 0.25, "tsp"},
		{"3", true, 3, ""},
		{"a pinch", false, 0, ""},
		{"to taste", false, 0, ""},
	}
	for _, tc := range cases {
		q := ParseQuantity(tc.raw)
		if q.Numeric != tc.numeric {
			t.Errorf("%q: numeric = %v, want %v", tc.raw, q.Numeric, tc.numeric)
			continue
		}
		if !tc.numeric {
			if q.Raw != tc.raw {
				t.Errorf("%q: raw = %q", tc.raw, q.Raw)
			}
			continue
		}
		if q.Value != tc.value || q.Unit != tc.unit {
			t.Errorf("%q: got %v %q, want %v %q", tc.raw, q.Value, q.Unit, tc.value, tc.unit)
		}
	}
}

func TestQuantityScale(t *testing.T) {
	got := ParseQuantity("2 cups").Scale(0.75).String()
	if got != "1.5 cups" {
		t.Errorf("got %q, want 1.5 cups", got)
	}

	got = ParseQuantity("1/3 cup").Scale(1).String()
	if got != "0.33 cup" {
		t.Errorf("got %q, want 0.33 cup", got)
	}

	got = ParseQuantity("a pinch").Scale(2).String()
	if got != "a pinch" {
		t.Errorf("freeform changed: %q", got)
	}
}

func TestScaleQuantityText(t *testing.T) {
	if got := scaleQuantityText("4 oz", 1.5); got != "6 oz" {
		t.Errorf("got %q, want 6 oz", got)
	}
	if got := scaleQuantityText("to taste", 1.5); got != "to taste" {
		t.Errorf("got %q, want to taste", got)
	}
}
