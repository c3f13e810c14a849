// Package basisspec parses the textual estimation-basis specs accepted by
// the hourglass CLI. A spec is either a keyword ("now", "today") or a
// fixed date with an optional time of day:
//
//	now
//	today
//	2024-03-01
//	2024-03-01T10:30
//	2024-03-01T10:30:45
package basisspec

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/Hourglass/core/temporal"
)

//nolint:govet // participle grammar tags are not standard struct tags
type specGrammar struct {
	Keyword string    `@Ident`
	Date    *datePart `| @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type datePart struct {
	Year     int       `@Int`
	Month    int       `"-" @Int`
	Day      int       `"-" @Int`
	TimePart *timePart `( "T" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type timePart struct {
	Hour   int  `@Int`
	Minute int  `":" @Int`
	Second *int `( ":" @Int )?`
}

// specLexer defines the lexer for basis specs.
// Note: Ident is lowercase-only so the "T" date/time separator lexes as
// its own token.
var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "TSep", Pattern: `T`},
	{Name: "Punct", Pattern: `[-:]`},
})

var specParser = participle.MustBuild[specGrammar](
	participle.Lexer(specLexer),
)

// Parse converts a basis spec into a temporal.Basis. Keyword specs map to
// the live helpers ("now" re-reads the wall clock on every estimation);
// date specs produce a fixed basis in UTC.
func Parse(s string) (temporal.Basis, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty basis spec")
	}

	parsed, err := specParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid basis spec: %q: %w", s, err)
	}

	if parsed.Keyword != "" {
		switch parsed.Keyword {
		case "now":
			return temporal.Now(), nil
		case "today":
			return temporal.StartOfToday(), nil
		default:
			return nil, fmt.Errorf("invalid basis spec: unknown keyword %q", parsed.Keyword)
		}
	}

	instant, err := parsed.Date.instant()
	if err != nil {
		return nil, fmt.Errorf("invalid basis spec: %q: %w", s, err)
	}
	return temporal.At(instant), nil
}

func (d *datePart) instant() (time.Time, error) {
	if d.Month < 1 || d.Month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", d.Month)
	}
	month := time.Month(d.Month)
	if d.Day < 1 || d.Day > daysIn(d.Year, month) {
		return time.Time{}, fmt.Errorf("day %d out of range for %d-%02d", d.Day, d.Year, d.Month)
	}

	hour, minute, second := 0, 0, 0
	if d.TimePart != nil {
		hour, minute = d.TimePart.Hour, d.TimePart.Minute
		if d.TimePart.Second != nil {
			second = *d.TimePart.Second
		}
		if hour > 23 {
			return time.Time{}, fmt.Errorf("hour %d out of range", hour)
		}
		if minute > 59 {
			return time.Time{}, fmt.Errorf("minute %d out of range", minute)
		}
		if second > 59 {
			return time.Time{}, fmt.Errorf("second %d out of range", second)
		}
	}

	return time.Date(d.Year, month, d.Day, hour, minute, second, 0, time.UTC), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
