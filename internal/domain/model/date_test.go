package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if d.String() != "2025-03-10" {
		t.Fatalf("unexpected string %q", d.String())
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("10.03.2025"); err == nil {
		t.Fatal("expected error for non-ISO input")
	}
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	d := NewDate(2025, time.March, 31)
	next := d.AddDays(1)
	if next.String() != "2025-04-01" {
		t.Fatalf("expected 2025-04-01, got %s", next)
	}
	prev := NewDate(2025, time.March, 1).AddDays(-1)
	if prev.String() != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s", prev)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 10)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(data) != `"2025-03-10"` {
		t.Fatalf("unexpected payload %s", data)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if !parsed.Equal(d) {
		t.Fatalf("round trip changed value: %s", parsed)
	}

	var zero Date
	if err := json.Unmarshal([]byte("null"), &zero); err != nil {
		t.Fatalf("unmarshal null returned error: %v", err)
	}
	if !zero.IsZero() {
		t.Fatal("expected zero date for null")
	}
}

func TestRangesOverlap(t *testing.T) {
	day := func(d int) Date { return NewDate(2025, time.March, d) }

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd Date
		want                       bool
	}{
		{"disjoint before", day(1), day(5), day(6), day(10), false},
		{"disjoint after", day(11), day(15), day(6), day(10), false},
		{"touching boundary", day(1), day(5), day(5), day(10), true},
		{"contained", day(3), day(4), day(1), day(10), true},
		{"containing", day(1), day(10), day(3), day(4), true},
		{"identical", day(2), day(8), day(2), day(8), true},
		{"single day inside", day(5), day(5), day(1), day(10), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("expected %v", tc.want)
			}
			// Overlap is symmetric.
			if got := RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Fatalf("expected symmetric result %v", tc.want)
			}
		})
	}
}
