package temporal

import (
	"math"
	"strconv"
	"time"
)

// Parse converts a compact time-amount string such as "1d2h3m" into a
// value of the codec's result type. The accepted grammar is an optional
// leading '-' followed by one or more <digits><symbol> tokens, with no
// whitespace. The sign applies once to the whole sum, never per token.
//
// Exact units contribute count times their fixed length. Estimated units
// (month, year, decade) are each resolved against a fresh read of the
// codec's basis: the basis is advanced by the counted units using
// calendar arithmetic and the elapsed span is the contribution. Tokens
// are not chained: "1y1mo" measures the year and the month from two
// independent basis reads, not from the basis advanced by the year first.
func (c Codec[T]) Parse(input string) (T, error) {
	var zero T
	if len(input) == 0 {
		return zero, &SyntaxError{Input: input, Err: ErrEmptyInput}
	}

	var total time.Duration
	negative := false
	var number, unit []byte

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == '-':
			if i != 0 {
				return zero, &SyntaxError{Input: input, Position: i, Fragment: "-", Err: ErrMisplacedSign}
			}
			negative = true
			continue
		case isDigit(ch):
			number = append(number, ch)
			continue
		case isLetter(ch):
			unit = append(unit, ch)
		default:
			return zero, &SyntaxError{Input: input, Position: i, Fragment: string(ch), Err: ErrInvalidCharacter}
		}

		// a unit token closes when its letter is the last character or
		// the next character starts a new number
		if i == len(input)-1 || isDigit(input[i+1]) {
			contribution, err := c.resolveToken(input, i, string(number), string(unit))
			if err != nil {
				return zero, err
			}
			if total > math.MaxInt64-contribution {
				return zero, &SyntaxError{Input: input, Position: i, Fragment: string(number) + string(unit), Err: ErrInvalidNumber}
			}
			total += contribution
			number = number[:0]
			unit = unit[:0]
		}
	}

	if len(number) > 0 || len(unit) > 0 {
		return zero, &SyntaxError{Input: input, Position: len(input), Fragment: string(number) + string(unit), Err: ErrMissingUnit}
	}

	if negative {
		total = -total
	}

	return c.factory(c.basis, total), nil
}

// resolveToken turns one closed <number><unit> token into its elapsed
// contribution. The contribution is always non-negative; the global sign
// is applied by the caller.
func (c Codec[T]) resolveToken(input string, pos int, number, unit string) (time.Duration, error) {
	if number == "" {
		return 0, &SyntaxError{Input: input, Position: pos, Fragment: unit, Err: ErrMissingNumber}
	}

	u, ok := c.table.lookup(unit)
	if !ok {
		return 0, &SyntaxError{Input: input, Position: pos, Fragment: unit, Err: ErrUnknownUnit}
	}

	count, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, &SyntaxError{Input: input, Position: pos, Fragment: number, Err: ErrInvalidNumber}
	}

	if u.IsEstimated() {
		// counts whose calendar span cannot fit the duration range fail
		// like any other out-of-range number
		const maxEstimatedMonths = 12 * 10000
		monthsPer := u.months()
		if count > maxEstimatedMonths/monthsPer {
			return 0, &SyntaxError{Input: input, Position: pos, Fragment: number, Err: ErrInvalidNumber}
		}
		start := c.basis()
		span := addMonths(start, count*monthsPer).Sub(start)
		if span == math.MaxInt64 {
			return 0, &SyntaxError{Input: input, Position: pos, Fragment: number, Err: ErrInvalidNumber}
		}
		return span, nil
	}

	nanos := unitNanos[u]
	if count > math.MaxInt64/nanos {
		return 0, &SyntaxError{Input: input, Position: pos, Fragment: number, Err: ErrInvalidNumber}
	}
	return time.Duration(count * nanos), nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
