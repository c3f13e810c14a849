package main

import (
	"testing"
	"time"
)

func TestDurationCodec(t *testing.T) {
	codec, err := durationCodec("time")
	if err != nil {
		t.Fatalf("durationCodec(\"time\") failed: %v", err)
	}
	got, err := codec.Parse("90m")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != 90*time.Minute {
		t.Errorf("Parse(\"90m\") = %v, want %v", got, 90*time.Minute)
	}

	if _, err := durationCodec("date"); err == nil {
		t.Error("durationCodec(\"date\") succeeded, want error (date table is period-typed)")
	}
}

func TestTableSymbols(t *testing.T) {
	tests := []struct {
		table string
		first string
		count int
	}{
		{"time", "ms", 4},
		{"date", "d", 4},
		{"datetime", "ns", 10},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			symbols, lookup := tableSymbols(tt.table)
			if len(symbols) != tt.count {
				t.Fatalf("len(symbols) = %d, want %d", len(symbols), tt.count)
			}
			if symbols[0] != tt.first {
				t.Errorf("symbols[0] = %q, want %q", symbols[0], tt.first)
			}
			if _, ok := lookup(symbols[0]); !ok {
				t.Errorf("lookup(%q) not found", symbols[0])
			}
		})
	}
}

func TestEmptyAsZero(t *testing.T) {
	if got := emptyAsZero(""); got != "0 (empty amount)" {
		t.Errorf("emptyAsZero(\"\") = %q", got)
	}
	if got := emptyAsZero("1h"); got != "1h" {
		t.Errorf("emptyAsZero(\"1h\") = %q, want %q", got, "1h")
	}
}
