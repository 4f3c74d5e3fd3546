package nutrition

// AveragesReport groups a range of day totals into period buckets and keeps
// the per-day means of each bucket.
type AveragesReport struct {
	Range   Range
	Period  Period
	Goals   Goals
	Buckets []Bucket
}

// NewAveragesReport aggregates the range and buckets it by the given period.
func NewAveragesReport(s *Store, r Range, p Period) (*AveragesReport, error) {
	hist, err := NewHistoryReport(s, r)
	if err != nil {
		return nil, err
	}
	return &AveragesReport{
		Range:   r,
		Period:  p,
		Goals:   hist.Goals,
		Buckets: GroupTotals(hist.Totals, p),
	}, nil
}
