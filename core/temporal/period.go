package temporal

import (
	"fmt"
	"time"
)

// Period is a calendar-based quantity of years, months and days. Unlike a
// time.Duration it has no fixed length: adding one month to 31 January
// and to 1 March cover different spans. Components may be negative.
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero reports whether all components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// String renders the period in ISO-8601 style, e.g. "P1Y2M4D". The zero
// period renders as "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	s := "P"
	if p.Years != 0 {
		s += fmt.Sprintf("%dY", p.Years)
	}
	if p.Months != 0 {
		s += fmt.Sprintf("%dM", p.Months)
	}
	if p.Days != 0 {
		s += fmt.Sprintf("%dD", p.Days)
	}
	return s
}

// AddTo advances t by the period: months first (clamping the day of month
// to the target month's length), then days.
func (p Period) AddTo(t time.Time) time.Time {
	t = addMonths(t, int64(p.Years)*12+int64(p.Months))
	return t.AddDate(0, 0, p.Days)
}

// PeriodBetween returns the calendar difference from start to end,
// considering only the date components. The result is normalized so that
// days never exceed a whole month and all components share the sign of
// the span.
func PeriodBetween(start, end time.Time) Period {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	totalMonths := int64(ey-sy)*12 + int64(em) - int64(sm)
	days := ed - sd

	if totalMonths > 0 && days < 0 {
		totalMonths--
		anchor := addMonths(dateOnly(start), totalMonths)
		days = int(dateOnly(end).Sub(anchor).Hours() / 24)
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		days -= daysInMonth(ey, em)
	}

	return Period{
		Years:  int(totalMonths / 12),
		Months: int(totalMonths % 12),
		Days:   days,
	}
}

// addMonths advances t by n calendar months, clamping the day of month to
// the length of the target month (31 Jan + 1 month = 28/29 Feb). This
// differs from time.AddDate, which normalizes overflow into the next
// month instead.
func addMonths(t time.Time, n int64) time.Time {
	year, month, day := t.Date()
	total := int64(year)*12 + int64(month) - 1 + n
	newYear := int(total / 12)
	newMonth := time.Month(total%12 + 1)
	if total < 0 && total%12 != 0 {
		newYear--
		newMonth += 12
	}
	if limit := daysInMonth(newYear, newMonth); day > limit {
		day = limit
	}
	hour, min, sec := t.Clock()
	return time.Date(newYear, newMonth, day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
