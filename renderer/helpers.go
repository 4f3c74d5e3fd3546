package renderer

import (
	"fmt"
	"strings"

	"github.com/prisca/nutrition"
)

// grams renders a weight in grams with one decimal, trimming ".0".
func grams(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0") + " g"
}

// kcal renders an energy amount as a whole number.
func kcal(v float64) string { return fmt.Sprintf("%.0f kcal", v) }

// macro renders a macronutrient amount in grams as a whole number.
func macro(v float64) string { return fmt.Sprintf("%.0f g", v) }

// cost renders a money amount, "-" when nothing is priced.
func cost(m nutrition.Money, priced bool) string {
	if !priced || m.IsZero() {
		return "-"
	}
	return m.String()
}

// titleCase capitalizes the first letter of a name for headings.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// slotTitle capitalizes a slot name for headings.
func slotTitle(s nutrition.Slot) string { return titleCase(s.String()) }

// progress renders "actual / goal" when a goal is set.
func progress(actual, goal float64, unit string) string {
	if goal <= 0 {
		return strings.TrimSpace(fmt.Sprintf("%.0f %s", actual, unit))
	}
	return strings.TrimSpace(fmt.Sprintf("%.0f / %.0f %s", actual, goal, unit))
}
