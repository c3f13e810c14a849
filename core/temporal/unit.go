package temporal

// Unit is a calendar time unit, from nanoseconds up to decades.
type Unit int

const (
	// Nanosecond is one billionth of a second.
	Nanosecond Unit = iota
	// Microsecond is one millionth of a second.
	Microsecond
	// Millisecond is one thousandth of a second.
	Millisecond
	// Second is the SI second.
	Second
	// Minute is 60 seconds.
	Minute
	// Hour is 60 minutes.
	Hour
	// Day is 24 hours.
	Day
	// Week is 7 days.
	Week
	// Month is a calendar month; its length depends on the basis date.
	Month
	// Year is a calendar year; its length depends on the basis date.
	Year
	// Decade is 10 calendar years.
	Decade
)

// String returns the lowercase unit name.
func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return "nanosecond"
	case Microsecond:
		return "microsecond"
	case Millisecond:
		return "millisecond"
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	case Decade:
		return "decade"
	default:
		return "unknown"
	}
}

// IsEstimated reports whether the unit has no fixed length and must be
// resolved against a reference date. Month, year and decade lengths vary
// with the calendar; everything below them is fixed.
func (u Unit) IsEstimated() bool {
	switch u {
	case Month, Year, Decade:
		return true
	default:
		return false
	}
}

// months returns how many calendar months the unit spans, for the
// estimated units that advance the calendar by whole months.
func (u Unit) months() int64 {
	switch u {
	case Month:
		return 1
	case Year:
		return 12
	case Decade:
		return 120
	default:
		return 0
	}
}

// unitNanos maps each unit to a fixed nanosecond magnitude. For month and
// year these are approximations (30 and 365 days) used only by the
// formatter; the parser resolves estimated units against the live basis.
var unitNanos = map[Unit]int64{
	Nanosecond:  1,
	Microsecond: 1_000,
	Millisecond: 1_000_000,
	Second:      1_000_000_000,
	Minute:      60 * 1_000_000_000,
	Hour:        60 * 60 * 1_000_000_000,
	Day:         24 * 60 * 60 * 1_000_000_000,
	Week:        7 * 24 * 60 * 60 * 1_000_000_000,
	Month:       30 * 24 * 60 * 60 * 1_000_000_000,
	Year:        365 * 24 * 60 * 60 * 1_000_000_000,
	Decade:      10 * 365 * 24 * 60 * 60 * 1_000_000_000,
}

// carryCapacity is the mixed-radix carry capacity per unit: how many of
// this unit fit in the next larger one before the digit rolls over.
// Zero means no carry (the digit is unbounded). Decade has no entry, so
// formatting a table that registers a decade symbol fails.
var carryCapacity = map[Unit]int64{
	Nanosecond:  1000,
	Microsecond: 1000,
	Millisecond: 1000,
	Second:      60,
	Minute:      60,
	Hour:        24,
	Day:         7,
	Week:        4,
	Month:       12,
	Year:        0,
}
