package temporal

import "time"

// Basis supplies the reference instant used to resolve estimated units.
// It is invoked fresh each time an estimated unit must be resolved, never
// cached across a Parse or Format call, so a wall-clock basis can yield
// different estimates on different calls. Tests and replay tooling should
// inject a fixed basis via At or AtDate.
type Basis func() time.Time

// Now returns a basis backed by the live wall clock.
func Now() Basis {
	return time.Now
}

// StartOfToday returns a fixed basis producing midnight of the current
// day in the local time zone. The date is captured once, when the helper
// is called; a codec configured with it keeps the same reference day even
// if later calls cross midnight.
func StartOfToday() Basis {
	year, month, day := time.Now().Date()
	return At(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// At returns a fixed basis producing the given instant.
func At(t time.Time) Basis {
	return func() time.Time { return t }
}

// AtDate returns a fixed basis producing midnight UTC of the given date.
func AtDate(year int, month time.Month, day int) Basis {
	return At(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
