package nutrition

// DayReport gathers everything needed to render a single day: every logged
// item resolved to its nutrient and cost contribution, per-slot subtotals,
// and the day totals next to the user's goals.
type DayReport struct {
	Date       Date
	Goals      Goals
	Slots      [len(slots)][]ItemLine
	SlotTotals [len(slots)]Resolved
	Totals     DayTotals
}

// ItemLine is one logged item, resolved.
type ItemLine struct {
	UniqueID string
	Label    string
	Weight   float64
	Dangling bool
	Resolved
}

// NewDayReport resolves one day's journal against the current food and meal
// collections.
func NewDayReport(s *Store, date Date) (*DayReport, error) {
	foods, err := s.Foods()
	if err != nil {
		return nil, err
	}
	meals, err := s.Meals()
	if err != nil {
		return nil, err
	}
	day, err := s.Day(date)
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}

	report := &DayReport{Date: date, Goals: goals}
	for slot, item := range day.Items() {
		res := ResolveItem(item, foods, meals)
		line := ItemLine{
			UniqueID: item.UniqueID,
			Label:    itemLabel(item, foods, meals),
			Weight:   item.Weight,
			Dangling: isDangling(item, foods, meals),
			Resolved: res,
		}
		report.Slots[slot] = append(report.Slots[slot], line)
		st := &report.SlotTotals[slot]
		st.Nutrients = st.Nutrients.Add(res.Nutrients)
		if res.Priced {
			st.Cost = st.Cost.Add(res.Cost)
			st.Priced = true
		}
	}
	report.Totals = AggregateDay(day, foods, meals)
	return report, nil
}

func itemLabel(item MealItem, foods map[string]*Food, meals map[string]*ComposedMeal) string {
	switch item.Kind {
	case MealRef:
		if m, ok := meals[item.RefID]; ok {
			return m.Name
		}
	default:
		if f, ok := foods[item.RefID]; ok {
			return f.Name
		}
	}
	return "? " + item.RefID
}

func isDangling(item MealItem, foods map[string]*Food, meals map[string]*ComposedMeal) bool {
	if item.Kind == MealRef {
		_, ok := meals[item.RefID]
		return !ok
	}
	_, ok := foods[item.RefID]
	return !ok
}
