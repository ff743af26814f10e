package domain

import (
	"strings"
	"time"
)

// Block is one day placed on the calendar grid.
type Block struct {
	Activity  Activity
	WeekIndex int
	DayIndex  int
}

// MonthLabel marks the first week column showing a new month.
type MonthLabel struct {
	WeekIndex int
	Label     string
}

// Calendar is a year of activity laid out as week columns of seven days.
type Calendar struct {
	Year        int
	Weeks       int
	Blocks      []Block
	MonthLabels []MonthLabel
	Total       int64
}

// BuildCalendar lays the activities of ya into week columns. The first column
// starts on weekStart on or before the earliest record. Missing days leave
// holes in the grid.
func BuildCalendar(ya YearActivity, weekStart time.Weekday) Calendar {
	cal := Calendar{Year: ya.Year, Total: ya.Total}
	if len(ya.Activities) == 0 {
		return cal
	}

	activities := make([]Activity, len(ya.Activities))
	copy(activities, ya.Activities)
	SortActivities(activities)

	first := Day(activities[0].Date)
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	origin := first.AddDate(0, 0, -offset)

	lastMonth := time.Month(0)
	lastLabelWeek := -1
	cal.Blocks = make([]Block, 0, len(activities))
	for _, a := range activities {
		days := int(Day(a.Date).Sub(origin).Hours() / 24)
		week := days / 7
		cal.Blocks = append(cal.Blocks, Block{
			Activity:  a,
			WeekIndex: week,
			DayIndex:  days % 7,
		})
		if week+1 > cal.Weeks {
			cal.Weeks = week + 1
		}
		if m := a.Date.Month(); m != lastMonth {
			lastMonth = m
			if week != lastLabelWeek {
				cal.MonthLabels = append(cal.MonthLabels, MonthLabel{
					WeekIndex: week,
					Label:     m.String()[:3],
				})
				lastLabelWeek = week
			}
		}
	}
	return cal
}

// ParseWeekday maps an English weekday name to time.Weekday.
func ParseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, true
		}
	}
	return time.Sunday, false
}
