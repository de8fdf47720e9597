package mealplan

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Quantity is a tagged variant over an ingredient quantity string: either a
// parsed numeric amount with a unit remainder, or opaque freeform text.
// Scaling applies only to the numeric variant; freeform text passes through
// untouched so a failed parse can never silently corrupt a quantity.
type Quantity struct {
	Numeric bool
	Value   float64
	Unit    string
	Raw     string
}

var quantityRe = regexp.MustCompile(`^(\d+(?:\.\d+)?(?:\s*/\s*\d+(?:\.\d+)?)?)\s*(.*)$`)

// ParseQuantity parses a quantity string into its tagged form. Leading
// integers, decimals, and simple fractions ("1/2 cup") are numeric; anything
// else ("a pinch") is freeform.
func ParseQuantity(raw string) Quantity {
	trimmed := strings.TrimSpace(raw)
	m := quantityRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Quantity{Raw: raw}
	}

	numText := strings.ReplaceAll(m[1], " ", "")
	var value float64
	if num, den, found := strings.Cut(numText, "/"); found {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return Quantity{Raw: raw}
		}
		value = n / d
	} else {
		n, err := strconv.ParseFloat(numText, 64)
		if err != nil {
			return Quantity{Raw: raw}
		}
		value = n
	}

	return Quantity{Numeric: true, Value: value, Unit: strings.TrimSpace(m[2]), Raw: raw}
}

// Scale multiplies a numeric quantity by ratio. Freeform quantities are
// returned unchanged.
func (q Quantity) Scale(ratio float64) Quantity {
	if !q.Numeric {
		return q
	}
	scaled := q
	scaled.Value = q.Value * ratio
	scaled.Raw = scaled.String()
	return scaled
}

// String serializes the quantity. Numeric values round to two decimals and
// drop trailing zeros.
func (q Quantity) String() string {
	if !q.Numeric {
		return q.Raw
	}
	rounded := math.Round(q.Value*100) / 100
	text := strconv.FormatFloat(rounded, 'f', -1, 64)
	if q.Unit == "" {
		return text
	}
	return text + " " + q.Unit
}

// scaleQuantityText rescales the numeric portion of a quantity string,
// passing freeform text through unchanged.
func scaleQuantityText(raw string, ratio float64) string {
	return ParseQuantity(raw).Scale(ratio).String()
}
