package nutrition

import (
	"testing"
)

func dayTotals(date string, calories float64) DayTotals {
	return DayTotals{Date: MustParse(date), Nutrients: Nutrients{Calories: calories}}
}

func TestGroupTotalsWeekly(t *testing.T) {
	// One full ISO week, Monday to Sunday.
	totals := []DayTotals{
		dayTotals("2025-01-13", 100),
		dayTotals("2025-01-14", 100),
		dayTotals("2025-01-15", 100),
		dayTotals("2025-01-16", 100),
		dayTotals("2025-01-17", 100),
		dayTotals("2025-01-18", 100),
		dayTotals("2025-01-19", 700),
	}
	buckets := GroupTotals(totals, Weekly)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	b := buckets[0]
	if b.Days != 7 {
		t.Errorf("Days = %d, want 7", b.Days)
	}
	if b.Label() != "2025-W03" {
		t.Errorf("Label = %q, want 2025-W03", b.Label())
	}
	// Mean of six quiet days and one feast: 1300 / 7.
	if !almost(b.Calories, 1300.0/7) {
		t.Errorf("mean calories = %g, want %g", b.Calories, 1300.0/7)
	}
}

func TestGroupTotalsSplitsWeeks(t *testing.T) {
	// A Sunday and the Monday after belong to different ISO weeks.
	totals := []DayTotals{
		dayTotals("2025-01-19", 100),
		dayTotals("2025-01-20", 200),
	}
	buckets := GroupTotals(totals, Weekly)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Label() != "2025-W03" || buckets[1].Label() != "2025-W04" {
		t.Errorf("labels = %q, %q", buckets[0].Label(), buckets[1].Label())
	}
}

func TestGroupTotalsMonthly(t *testing.T) {
	totals := []DayTotals{
		dayTotals("2025-01-31", 100),
		dayTotals("2025-02-01", 300),
		dayTotals("2025-02-02", 500),
	}
	buckets := GroupTotals(totals, Monthly)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Label() != "2025-January" {
		t.Errorf("first label = %q", buckets[0].Label())
	}
	if !almost(buckets[1].Calories, 400) {
		t.Errorf("february mean = %g, want 400", buckets[1].Calories)
	}
}

func TestGroupTotalsBodyWeight(t *testing.T) {
	w1, w2 := 70.0, 72.0
	totals := []DayTotals{
		{Date: MustParse("2025-01-13"), BodyWeight: &w1},
		{Date: MustParse("2025-01-14")},
		{Date: MustParse("2025-01-15"), BodyWeight: &w2},
		{Date: MustParse("2025-01-16")},
	}
	buckets := GroupTotals(totals, Weekly)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	b := buckets[0]
	if b.BodyWeight == nil || !almost(*b.BodyWeight, 71) {
		t.Errorf("weight mean should only cover weighed days, got %v", b.BodyWeight)
	}

	// A bucket with no weigh-in at all has no weight.
	empty := GroupTotals([]DayTotals{dayTotals("2025-01-13", 0)}, Weekly)
	if empty[0].BodyWeight != nil {
		t.Error("bucket without weigh-ins should have a nil weight")
	}
}
