package temporal

import (
	"math/big"
	"strings"
)

// Format renders a value back to compact text, walking the codec's table
// in reverse insertion order (largest configured unit first) and emitting
// one mixed-radix digit per unit: the whole count of the unit, taken
// modulo its carry capacity, followed by the unit's symbol. Zero digits
// are skipped; a zero value therefore renders as the empty string.
//
// Formatting always uses the fixed nanosecond approximations from the
// unit catalog, including the 30-day month and 365-day year. A value
// parsed through estimated units against a live basis may therefore not
// format back to the original token sequence; only exact units round-trip
// in all cases.
//
// The place-value arithmetic runs on big integers so that digits above
// the carry ladder (years have no carry) stay correct for durations near
// the representation's range.
func (c Codec[T]) Format(value T) (string, error) {
	var b strings.Builder

	remaining := new(big.Int).SetInt64(int64(c.extractor(c.basis, value)))
	if remaining.Sign() < 0 {
		b.WriteByte('-')
		remaining.Neg(remaining)
	}

	for i := len(c.table.entries) - 1; i >= 0; i-- {
		entry := c.table.entries[i]

		nanos, ok := unitNanos[entry.unit]
		if !ok {
			return "", &FormatError{Symbol: entry.symbol, Unit: entry.unit}
		}
		capacity, ok := carryCapacity[entry.unit]
		if !ok {
			return "", &FormatError{Symbol: entry.symbol, Unit: entry.unit}
		}

		magnitude := big.NewInt(nanos)
		count := new(big.Int).Quo(remaining, magnitude)
		if capacity > 0 {
			count.Mod(count, big.NewInt(capacity))
		}
		if count.Sign() == 0 {
			continue
		}

		b.WriteString(count.String())
		b.WriteString(entry.symbol)
		remaining.Sub(remaining, count.Mul(count, magnitude))
	}

	return b.String(), nil
}
