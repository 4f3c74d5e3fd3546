package nutrition

import (
	"slices"
)

// Bucket is one grouping window of the averaging engine: a calendar period
// and the arithmetic mean of its member days.
type Bucket struct {
	Range Range
	Days  int // number of member days

	// Means over all member days.
	Nutrients
	Cost    Money
	WaterMl float64
	Steps   float64

	// BodyWeight is the mean over the member days that recorded one; nil
	// when no member day did (absent, not zero).
	BodyWeight *float64
}

// Label returns a short identifier for the bucket ("2025-W03", "2025-January", ...).
func (b Bucket) Label() string { return b.Range.Identifier() }

// GroupTotals buckets a sequence of day totals by the given period and
// produces per-bucket arithmetic means. A day's week membership follows the
// ISO rule (the Monday on or before it), its month membership the first day
// of its month. Buckets are returned in chronological order.
//
// Nutrients, cost, hydration and steps are always present on a day, so their
// mean divides by the full member count. Body weight is only sometimes
// recorded, so its mean only covers the days that have one.
func GroupTotals(totals []DayTotals, p Period) []Bucket {
	byStart := make(map[Date][]DayTotals)
	for _, t := range totals {
		key := t.Date.StartOf(p)
		byStart[key] = append(byStart[key], t)
	}

	starts := make([]Date, 0, len(byStart))
	for key := range byStart {
		starts = append(starts, key)
	}
	slices.SortFunc(starts, func(a, b Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})

	buckets := make([]Bucket, 0, len(starts))
	for _, start := range starts {
		members := byStart[start]
		b := Bucket{Range: p.Range(start), Days: len(members)}

		var weightSum float64
		var weighed int
		for _, t := range members {
			b.Nutrients = b.Nutrients.Add(t.Nutrients)
			b.Cost = b.Cost.Add(t.Cost)
			b.WaterMl += t.WaterMl
			b.Steps += float64(t.Steps)
			if t.BodyWeight != nil {
				weightSum += *t.BodyWeight
				weighed++
			}
		}

		n := float64(len(members))
		b.Nutrients = b.Nutrients.Scale(1 / n)
		b.Cost = b.Cost.Div(n)
		b.WaterMl /= n
		b.Steps /= n
		if weighed > 0 {
			mean := weightSum / float64(weighed)
			b.BodyWeight = &mean
		}
		buckets = append(buckets, b)
	}
	return buckets
}
