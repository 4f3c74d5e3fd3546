package nutrition

import (
	"fmt"
	"strings"
)

// Period is the bucketing granularity used by the averaging engine.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	default:
		return "period"
	}
}

// Range returns a Range for the given period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// PeriodFor selects the bucketing granularity for a report over the given
// number of days. Short ranges stay daily, medium ones are averaged by week,
// long ones and the "all time" selection by month.
func PeriodFor(days int, allTime bool) Period {
	switch {
	case allTime:
		return Monthly
	case days <= 30:
		return Daily
	case days <= 180:
		return Weekly
	default:
		return Monthly
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
