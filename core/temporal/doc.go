// Package temporal implements a compact, bidirectional codec between
// human-readable time-amount strings (such as "1d2h3m", "-2h1m" or
// "1y2mo4d") and concrete time quantities.
//
// A quantity can be produced in two shapes: an exact time.Duration, or a
// calendar Period (years, months, days) measured from a reference instant.
// Units divide into exact units (nanosecond through week, each with a
// fixed nanosecond length) and estimated units (month, year, decade),
// whose real length depends on when they are counted from. Estimated
// units are resolved against a pluggable Basis, so "1mo" parsed in
// February is shorter than "1mo" parsed in March.
//
// Codec instances are immutable. Extend them with WithUnit and
// WithBasisForTimeEstimation, which return new instances, or use the
// ready-made TimeUnits, DateUnits and DateTimeUnits configurations.
// Parse and Format are pure, synchronous and safe for concurrent use.
package temporal
