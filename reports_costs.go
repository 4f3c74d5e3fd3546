package nutrition

// CostsReport breaks spending down per day and per meal slot over a range.
// Days without any priced item appear as zero rows.
type CostsReport struct {
	Range Range
	Days  []CostLine
	Total Money
}

// CostLine is one day's spending.
type CostLine struct {
	Date  Date
	Slots map[Slot]Money
	Total Money
}

// NewCostsReport computes per-slot and total spending for every day of the
// range.
func NewCostsReport(s *Store, r Range) (*CostsReport, error) {
	foods, err := s.Foods()
	if err != nil {
		return nil, err
	}
	meals, err := s.Meals()
	if err != nil {
		return nil, err
	}
	days, err := s.Days()
	if err != nil {
		return nil, err
	}

	report := &CostsReport{Range: r}
	for date := range r.Days() {
		line := CostLine{Date: date, Slots: map[Slot]Money{}}
		if day, ok := days[date]; ok {
			line.Slots = SlotCosts(day, foods, meals)
			for _, c := range line.Slots {
				line.Total = line.Total.Add(c)
			}
		}
		report.Total = report.Total.Add(line.Total)
		report.Days = append(report.Days, line)
	}
	return report, nil
}
