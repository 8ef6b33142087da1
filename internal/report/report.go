package report

import "math"

// Period identifies one billing month. Month is a three-letter English
// abbreviation ("Aug"), Year the full calendar year.
type Period struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// PeriodRevenue is one grouped ledger reduction: the summed payment
// amount for a single billing period.
type PeriodRevenue struct {
	Month   string
	Year    int
	Revenue int64
}

// MonthRevenue is one point of the monthly revenue series.
type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// DefaultWindow is the six-period rolling window the dashboard reports
// over. It spans a calendar-year boundary, which is why reindexing keys
// on the full period and not the month label alone.
var DefaultWindow = []Period{
	{Month: "Aug", Year: 2025},
	{Month: "Sep", Year: 2025},
	{Month: "Oct", Year: 2025},
	{Month: "Nov", Year: 2025},
	{Month: "Dec", Year: 2025},
	{Month: "Jan", Year: 2026},
}

// CurrentPeriod returns the final period of a window, the one the
// dashboard treats as the current billing month.
func CurrentPeriod(window []Period) Period {
	if len(window) == 0 {
		return Period{}
	}
	return window[len(window)-1]
}

// Reindex maps grouped revenue sums onto the window's chronological
// order. Periods with no revenue are dropped, not emitted as zero.
func Reindex(groups []PeriodRevenue, window []Period) []MonthRevenue {
	byPeriod := make(map[Period]int64, len(groups))
	for _, g := range groups {
		byPeriod[Period{Month: g.Month, Year: g.Year}] += g.Revenue
	}

	series := make([]MonthRevenue, 0, len(window))
	for _, p := range window {
		if revenue := byPeriod[p]; revenue > 0 {
			series = append(series, MonthRevenue{Month: p.Month, Revenue: revenue})
		}
	}
	return series
}

// OccupancyRate returns the occupied share of rooms as a whole
// percentage, rounded half up. Zero rooms yields zero.
func OccupancyRate(totalRooms, availableRooms int64) int {
	if totalRooms <= 0 {
		return 0
	}
	occupied := float64(totalRooms - availableRooms)
	return int(math.Round(occupied / float64(totalRooms) * 100))
}
