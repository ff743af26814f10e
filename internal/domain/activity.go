package domain

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the wire and storage format of an activity day.
const DateLayout = "2006-01-02"

// Years outside MinYear..MaxYear are rejected for activities.
const (
	MinYear = 1970
	MaxYear = 9999
)

// Activity is the contribution record for a single day.
type Activity struct {
	Date  time.Time // UTC midnight
	Count int64
	Level Level
}

// ParseDate parses a YYYY-MM-DD day into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Day truncates t to UTC midnight of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the invariants a stored activity must satisfy.
func (a Activity) Validate() error {
	if a.Date.IsZero() {
		return ErrInvalidDate
	}
	if y := a.Date.Year(); y < MinYear || y > MaxYear {
		return fmt.Errorf("%w: year %d outside %d..%d", ErrInvalidDate, y, MinYear, MaxYear)
	}
	if a.Count < 0 {
		return fmt.Errorf("%w: %s has %d", ErrNegativeCount, a.Date.Format(DateLayout), a.Count)
	}
	if !a.Level.Valid() {
		return fmt.Errorf("%w: %s has %d", ErrInvalidLevel, a.Date.Format(DateLayout), a.Level)
	}
	return nil
}

// SortActivities orders activities chronologically in place.
func SortActivities(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.Before(activities[j].Date)
	})
}

// YearActivity holds one calendar year of activities and their total.
type YearActivity struct {
	Year       int
	Activities []Activity
	Total      int64
}

// PartitionByYear groups activities by calendar year. Every year in years is
// present in the result even without records; years found in the data are
// added as well. The result is ascending by year.
func PartitionByYear(activities []Activity, years []int) []YearActivity {
	byYear := make(map[int]*YearActivity)
	get := func(y int) *YearActivity {
		ya, ok := byYear[y]
		if !ok {
			ya = &YearActivity{Year: y}
			byYear[y] = ya
		}
		return ya
	}

	for _, y := range years {
		get(y)
	}
	for _, a := range activities {
		ya := get(a.Date.Year())
		ya.Activities = append(ya.Activities, a)
		ya.Total += a.Count
	}

	result := make([]YearActivity, 0, len(byYear))
	for _, ya := range byYear {
		SortActivities(ya.Activities)
		result = append(result, *ya)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})
	return result
}

// YearRange returns the inclusive list of years from..to.
// It returns nil when to precedes from.
func YearRange(from, to int) []int {
	if to < from {
		return nil
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}
