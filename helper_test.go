package nutrition

import "math"

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// almost compares floats with a tolerance suited to nutrient arithmetic.
func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
