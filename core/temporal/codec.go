package temporal

import "time"

// factory builds the public result value from the basis and the internal
// signed duration produced by the parser.
type factory[T any] func(basis Basis, d time.Duration) T

// extractor recovers the internal signed duration from a public result
// value, using the basis to resolve calendar-shaped values.
type extractor[T any] func(basis Basis, value T) time.Duration

// Codec converts between compact time-amount strings and values of type
// T, which is either time.Duration (exact elapsed time) or Period
// (calendar fields). A codec is immutable: WithUnit and
// WithBasisForTimeEstimation return new instances, so a configured codec
// can be shared freely across goroutines.
type Codec[T any] struct {
	table     unitTable
	factory   factory[T]
	extractor extractor[T]
	basis     Basis
}

// NewDuration returns an empty codec producing exact time.Duration
// values. The internal duration passes through both ways unchanged.
func NewDuration() Codec[time.Duration] {
	return Codec[time.Duration]{
		factory:   func(_ Basis, d time.Duration) time.Duration { return d },
		extractor: func(_ Basis, d time.Duration) time.Duration { return d },
		basis:     Now(),
	}
}

// NewPeriod returns an empty codec producing calendar Period values.
// Parsing derives the period as the calendar-date difference between the
// basis and the basis advanced by the parsed duration; formatting walks
// the calendar forward by the period to recover a duration.
func NewPeriod() Codec[Period] {
	return Codec[Period]{
		factory: func(basis Basis, d time.Duration) Period {
			start := basis()
			return PeriodBetween(start, start.Add(d))
		},
		extractor: func(basis Basis, p Period) time.Duration {
			start := basis()
			return p.AddTo(start).Sub(start)
		},
		basis: Now(),
	}
}

// WithUnit returns a new codec whose table additionally maps symbol to
// unit, appended after the existing entries. It fails if the symbol is
// already registered or contains non-letter characters; the receiver is
// never modified.
func (c Codec[T]) WithUnit(symbol string, unit Unit) (Codec[T], error) {
	table, err := c.table.withUnit(symbol, unit)
	if err != nil {
		return Codec[T]{}, err
	}
	c.table = table
	return c, nil
}

// MustWithUnit is like WithUnit but panics on error. It is intended for
// package-level table literals.
func (c Codec[T]) MustWithUnit(symbol string, unit Unit) Codec[T] {
	next, err := c.WithUnit(symbol, unit)
	if err != nil {
		panic(err)
	}
	return next
}

// WithBasisForTimeEstimation returns a new codec that resolves estimated
// units against the given basis.
func (c Codec[T]) WithBasisForTimeEstimation(basis Basis) Codec[T] {
	c.basis = basis
	return c
}

// Symbols returns the registered symbols in insertion order.
func (c Codec[T]) Symbols() []string {
	symbols := make([]string, len(c.table.entries))
	for i, e := range c.table.entries {
		symbols[i] = e.symbol
	}
	return symbols
}

// Unit returns the unit registered for symbol.
func (c Codec[T]) Unit(symbol string) (Unit, bool) {
	return c.table.lookup(symbol)
}

// TimeUnits is the ready-made exact-duration configuration covering
// milliseconds through hours.
var TimeUnits = NewDuration().
	MustWithUnit("ms", Millisecond).
	MustWithUnit("s", Second).
	MustWithUnit("m", Minute).
	MustWithUnit("h", Hour)

// DateUnits is the ready-made calendar-period configuration covering days
// through years.
var DateUnits = NewPeriod().
	MustWithUnit("d", Day).
	MustWithUnit("w", Week).
	MustWithUnit("mo", Month).
	MustWithUnit("y", Year)

// DateTimeUnits is the ready-made exact-duration configuration spanning
// all granularities from nanoseconds through years.
var DateTimeUnits = NewDuration().
	MustWithUnit("ns", Nanosecond).
	MustWithUnit("us", Microsecond).
	MustWithUnit("ms", Millisecond).
	MustWithUnit("s", Second).
	MustWithUnit("m", Minute).
	MustWithUnit("h", Hour).
	MustWithUnit("d", Day).
	MustWithUnit("w", Week).
	MustWithUnit("mo", Month).
	MustWithUnit("y", Year)
