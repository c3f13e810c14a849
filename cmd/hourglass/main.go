// Command hourglass converts compact time-amount strings (1d2h3m, -2h1m,
// 1y2mo4d) to concrete durations and calendar periods, and back.
//
// Usage:
//
//	hourglass parse 1d2h3m4s
//	hourglass parse --table date --basis 2024-02-29 1y2mo4d
//	hourglass format 25h
//	hourglass units --table time
//	hourglass version
package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/Hourglass/core/temporal"
	"github.com/FocuswithJustin/Hourglass/internal/basisspec"
	"github.com/FocuswithJustin/Hourglass/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for hourglass.
var CLI struct {
	// Global flags
	Verbose   bool   `name:"verbose" short:"v" help:"Enable debug logging"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format (text, json)"`

	Parse   ParseCmd   `cmd:"" help:"Parse a compact time amount"`
	Format  FormatCmd  `cmd:"" help:"Format a duration as a compact time amount"`
	Units   UnitsCmd   `cmd:"" help:"List the unit symbols of a table"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// durationCodec returns the exact-duration codec for a table name.
func durationCodec(table string) (temporal.Codec[time.Duration], error) {
	switch table {
	case "time":
		return temporal.TimeUnits, nil
	case "datetime":
		return temporal.DateTimeUnits, nil
	default:
		return temporal.Codec[time.Duration]{}, fmt.Errorf("table %q has no duration form", table)
	}
}

// ParseCmd parses a compact time amount into a duration or period.
type ParseCmd struct {
	Amount string `arg:"" help:"Compact time amount, e.g. 1d2h3m"`
	Table  string `help:"Unit table: time, date or datetime" enum:"time,date,datetime" default:"datetime"`
	Basis  string `help:"Estimation basis: now, today or a date like 2024-03-01[T10:30[:45]]" default:"now"`
}

func (c *ParseCmd) Run(ctx *kong.Context) error {
	basis, err := basisspec.Parse(c.Basis)
	if err != nil {
		return err
	}
	logging.Debug("parsing amount", "amount", c.Amount, "table", c.Table, "basis", c.Basis)

	if c.Table == "date" {
		codec := temporal.DateUnits.WithBasisForTimeEstimation(basis)
		period, err := codec.Parse(c.Amount)
		if err != nil {
			return err
		}
		canonical, err := codec.Format(period)
		if err != nil {
			return err
		}
		fmt.Printf("period:    %s\n", period)
		fmt.Printf("canonical: %s\n", emptyAsZero(canonical))
		return nil
	}

	base, err := durationCodec(c.Table)
	if err != nil {
		return err
	}
	codec := base.WithBasisForTimeEstimation(basis)
	d, err := codec.Parse(c.Amount)
	if err != nil {
		return err
	}
	canonical, err := codec.Format(d)
	if err != nil {
		return err
	}
	fmt.Printf("duration:    %s\n", d)
	fmt.Printf("nanoseconds: %d\n", d.Nanoseconds())
	fmt.Printf("canonical:   %s\n", emptyAsZero(canonical))
	return nil
}

// FormatCmd renders a Go-style duration as a compact time amount.
type FormatCmd struct {
	Duration string `arg:"" help:"Go duration string, e.g. 25h or 90m30s"`
	Table    string `help:"Unit table: time or datetime" enum:"time,datetime" default:"datetime"`
}

func (c *FormatCmd) Run(ctx *kong.Context) error {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", c.Duration, err)
	}

	codec, err := durationCodec(c.Table)
	if err != nil {
		return err
	}
	logging.Debug("formatting duration", "duration", d, "table", c.Table)

	out, err := codec.Format(d)
	if err != nil {
		return err
	}
	fmt.Println(emptyAsZero(out))
	return nil
}

// UnitsCmd lists the symbols of a unit table in insertion order.
type UnitsCmd struct {
	Table string `help:"Unit table: time, date or datetime" enum:"time,date,datetime" default:"datetime"`
}

func (c *UnitsCmd) Run(ctx *kong.Context) error {
	symbols, lookup := tableSymbols(c.Table)

	fmt.Printf("Units in table %q:\n\n", c.Table)
	for _, symbol := range symbols {
		unit, _ := lookup(symbol)
		kind := "exact"
		if unit.IsEstimated() {
			kind = "estimated"
		}
		fmt.Printf("  %-3s %-12s %s\n", symbol, unit, kind)
	}
	return nil
}

func tableSymbols(table string) ([]string, func(string) (temporal.Unit, bool)) {
	switch table {
	case "time":
		return temporal.TimeUnits.Symbols(), temporal.TimeUnits.Unit
	case "date":
		return temporal.DateUnits.Symbols(), temporal.DateUnits.Unit
	default:
		return temporal.DateTimeUnits.Symbols(), temporal.DateTimeUnits.Unit
	}
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Printf("hourglass %s\n", version)
	return nil
}

// emptyAsZero makes the zero amount visible; the codec renders it as the
// empty string.
func emptyAsZero(s string) string {
	if s == "" {
		return "0 (empty amount)"
	}
	return s
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hourglass"),
		kong.Description("Compact time-amount codec (1d2h3m <-> durations and periods)"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level := logging.LevelInfo
	if CLI.Verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
