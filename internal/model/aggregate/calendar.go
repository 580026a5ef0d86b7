package aggregate

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const daysPerWeek = 7

// Span is one calendar week of a month: consecutive 7-day stretches
// counted from the 1st, the last one truncated at the month's end.
type Span struct {
	Week  int
	Start string
	End   string
}

func Day(date string) int {
	t, err := time.Parse(expense.DateLayout, date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// WeekRange returns the Sunday and Saturday of the instant's week as date
// strings.
func WeekRange(at time.Time) (start, end string) {
	first := now.With(at).BeginningOfWeek()
	last := first.AddDate(0, 0, daysPerWeek-1)
	return first.Format(expense.DateLayout), last.Format(expense.DateLayout)
}

// InRange reports whether the date falls inside [start, end]. The date
// layout sorts lexicographically, so this is a string comparison.
func InRange(date, start, end string) bool {
	return start <= date && date <= end
}

// MonthDates keeps the dates that share the instant's year and month.
func MonthDates(dates []string, at time.Time) []string {
	prefix := at.Format("2006-01")
	matched := make([]string, 0, len(dates))
	for _, date := range dates {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			matched = append(matched, date)
		}
	}
	return matched
}

// WeekOfMonth is the calendar week-of-month of the date, 1-indexed,
// relative to the 1st of the date's own month.
func WeekOfMonth(date string) int {
	return (Day(date)-1)/daysPerWeek + 1
}

// WeekSpan returns the first and last day-of-month of the given calendar
// week number.
func WeekSpan(week, year int, month time.Month) (startDay, endDay int) {
	startDay = 1 + (week-1)*daysPerWeek
	lastDay := now.With(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)).EndOfMonth().Day()
	endDay = startDay + daysPerWeek - 1
	if endDay > lastDay {
		endDay = lastDay
	}
	return startDay, endDay
}

// MonthWeeks partitions the month into its calendar weeks.
func MonthWeeks(year int, month time.Month) []Span {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := now.With(first).EndOfMonth().Day()

	spans := make([]Span, 0, lastDay/daysPerWeek+1)
	for week := 1; ; week++ {
		startDay, endDay := WeekSpan(week, year, month)
		if startDay > lastDay {
			return spans
		}
		spans = append(spans, Span{
			Week:  week,
			Start: first.AddDate(0, 0, startDay-1).Format(expense.DateLayout),
			End:   first.AddDate(0, 0, endDay-1).Format(expense.DateLayout),
		})
	}
}
