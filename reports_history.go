package nutrition

// HistoryReport is a day-by-day trace of totals over a range. Every calendar
// day of the range is present, unrecorded days as zero rows.
type HistoryReport struct {
	Range  Range
	Goals  Goals
	Totals []DayTotals
}

// NewHistoryReport aggregates every day of the range.
func NewHistoryReport(s *Store, r Range) (*HistoryReport, error) {
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
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}
	return &HistoryReport{
		Range:  r,
		Goals:  goals,
		Totals: AggregateRange(r, days, foods, meals),
	}, nil
}
