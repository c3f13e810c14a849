package basisspec

import (
	"testing"
	"time"
)

func TestParseFixedDates(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-01", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"2024-03-01T10:30", time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-03-01T10:30:45", time.Date(2024, time.March, 1, 10, 30, 45, 0, time.UTC)},
		{"1999-12-31T23:59:59", time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC)},
		{" 2024-03-01 ", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			basis, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got := basis(); !got.Equal(tt.want) {
				t.Errorf("Parse(%q)() = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseKeywords(t *testing.T) {
	basis, err := Parse("now")
	if err != nil {
		t.Fatalf("Parse(\"now\") failed: %v", err)
	}
	before := time.Now()
	got := basis()
	if got.Before(before.Add(-time.Second)) || got.After(time.Now().Add(time.Second)) {
		t.Errorf("Parse(\"now\")() = %v, want close to %v", got, before)
	}

	basis, err = Parse("today")
	if err != nil {
		t.Fatalf("Parse(\"today\") failed: %v", err)
	}
	got = basis()
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("Parse(\"today\")() = %v, want midnight", got)
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"yesterday",
		"2024",
		"2024-03",
		"2024-13-01",
		"2024-02-30",
		"2023-02-29",
		"2024-03-01T25:00",
		"2024-03-01T10:61",
		"2024-03-01T10:30:61",
		"03/01/2024",
		"not a date",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}
