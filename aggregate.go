package nutrition

// DayTotals is the aggregate of one calendar day: summed nutrients, the
// day's total cost, and the wellness entries carried over for the period
// averager.
type DayTotals struct {
	Date Date
	Nutrients
	Cost Money // sum of all priced items; zero when nothing was priced

	BodyWeight *float64
	WaterMl    float64
	Steps      int
}

// AggregateDay sums the resolved contribution of every item in the day's
// four slots. A nil day aggregates to all-zero totals, so missing dates are
// indistinguishable from empty ones.
func AggregateDay(day *Day, foods map[string]*Food, meals map[string]*ComposedMeal) DayTotals {
	var t DayTotals
	if day == nil {
		return t
	}
	t.Date = day.Date
	t.BodyWeight = day.BodyWeight
	t.WaterMl = day.WaterMl
	t.Steps = day.Steps
	for _, item := range day.Items() {
		r := ResolveItem(item, foods, meals)
		t.Nutrients = t.Nutrients.Add(r.Nutrients)
		if r.Priced {
			t.Cost = t.Cost.Add(r.Cost)
		}
	}
	return t
}

// AggregateRange maps AggregateDay over every date of the inclusive range,
// producing exactly one DayTotals per calendar day. Days with no record
// yield all-zero totals, so range outputs have no gaps.
func AggregateRange(r Range, days map[Date]*Day, foods map[string]*Food, meals map[string]*ComposedMeal) []DayTotals {
	totals := make([]DayTotals, 0, r.Len())
	for date := range r.Days() {
		t := AggregateDay(days[date], foods, meals)
		t.Date = date
		totals = append(totals, t)
	}
	return totals
}

// SlotCosts sums the cost of a day per meal slot.
func SlotCosts(day *Day, foods map[string]*Food, meals map[string]*ComposedMeal) map[Slot]Money {
	costs := make(map[Slot]Money, len(slots))
	if day == nil {
		return costs
	}
	for s, item := range day.Items() {
		r := ResolveItem(item, foods, meals)
		if r.Priced {
			costs[s] = costs[s].Add(r.Cost)
		}
	}
	return costs
}
