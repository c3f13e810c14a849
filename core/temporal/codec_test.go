package temporal

import (
	"errors"
	"testing"
	"time"
)

func TestWithUnit(t *testing.T) {
	codec, err := NewDuration().WithUnit("s", Second)
	if err != nil {
		t.Fatalf("WithUnit failed: %v", err)
	}

	got, err := codec.Parse("5s")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != 5*time.Second {
		t.Errorf("Parse(\"5s\") = %v, want %v", got, 5*time.Second)
	}
}

func TestWithUnitErrors(t *testing.T) {
	base := NewDuration().MustWithUnit("s", Second)

	tests := []struct {
		name   string
		symbol string
		want   error
	}{
		{"duplicate symbol", "s", ErrDuplicateSymbol},
		{"digit in symbol", "s2", ErrInvalidSymbol},
		{"empty symbol", "", ErrInvalidSymbol},
		{"whitespace in symbol", "m s", ErrInvalidSymbol},
		{"non-ascii letter in symbol", "µs", ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := base.WithUnit(tt.symbol, Minute)
			if err == nil {
				t.Fatalf("WithUnit(%q) succeeded, want error", tt.symbol)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("WithUnit(%q) error = %v, want %v", tt.symbol, err, tt.want)
			}
		})
	}
}

func TestWithUnitCopyOnWrite(t *testing.T) {
	base := NewDuration().MustWithUnit("s", Second)
	extended := base.MustWithUnit("m", Minute)

	// the receiver must be unaffected by the extension
	if _, err := base.Parse("1m"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("base.Parse(\"1m\") error = %v, want %v", err, ErrUnknownUnit)
	}
	if _, err := extended.Parse("1m"); err != nil {
		t.Errorf("extended.Parse(\"1m\") failed: %v", err)
	}

	// further extension of the base must not leak into the sibling
	other := base.MustWithUnit("h", Hour)
	if _, err := extended.Parse("1h"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("extended.Parse(\"1h\") error = %v, want %v", err, ErrUnknownUnit)
	}
	if _, err := other.Parse("1h"); err != nil {
		t.Errorf("other.Parse(\"1h\") failed: %v", err)
	}
}

func TestWithBasisForTimeEstimationCopyOnWrite(t *testing.T) {
	leap := DateTimeUnits.WithBasisForTimeEstimation(AtDate(2024, time.January, 1))
	common := DateTimeUnits.WithBasisForTimeEstimation(AtDate(2023, time.January, 1))

	gotLeap, err := leap.Parse("1y")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	gotCommon, err := common.Parse("1y")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if gotLeap != 366*24*time.Hour {
		t.Errorf("leap basis Parse(\"1y\") = %v, want %v", gotLeap, 366*24*time.Hour)
	}
	if gotCommon != 365*24*time.Hour {
		t.Errorf("common basis Parse(\"1y\") = %v, want %v", gotCommon, 365*24*time.Hour)
	}
}

func TestMustWithUnitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustWithUnit did not panic on duplicate symbol")
		}
	}()
	NewDuration().MustWithUnit("s", Second).MustWithUnit("s", Second)
}

func TestPresetSymbols(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"TimeUnits", TimeUnits.Symbols(), []string{"ms", "s", "m", "h"}},
		{"DateUnits", DateUnits.Symbols(), []string{"d", "w", "mo", "y"}},
		{"DateTimeUnits", DateTimeUnits.Symbols(), []string{"ns", "us", "ms", "s", "m", "h", "d", "w", "mo", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("Symbols() = %v, want %v", tt.got, tt.want)
			}
			for i := range tt.want {
				if tt.got[i] != tt.want[i] {
					t.Errorf("Symbols()[%d] = %q, want %q", i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnitLookup(t *testing.T) {
	unit, ok := DateUnits.Unit("mo")
	if !ok {
		t.Fatal("Unit(\"mo\") not found")
	}
	if unit != Month {
		t.Errorf("Unit(\"mo\") = %v, want %v", unit, Month)
	}
	if !unit.IsEstimated() {
		t.Error("Month.IsEstimated() = false, want true")
	}

	if _, ok := DateUnits.Unit("h"); ok {
		t.Error("Unit(\"h\") found in DateUnits, want absent")
	}
}
