package model

import (
	"testing"
	"time"
)

func TestPriceRecordSingleDay(t *testing.T) {
	day := NewDate(2025, time.March, 10)
	if !(PriceRecord{StartDate: day, EndDate: day}).SingleDay() {
		t.Fatal("expected single day record")
	}
	if (PriceRecord{StartDate: day, EndDate: day.AddDays(1)}).SingleDay() {
		t.Fatal("two-day record must not be single day")
	}
}

func TestPriceRecordOverlaps(t *testing.T) {
	rec := PriceRecord{
		StartDate: NewDate(2025, time.March, 1),
		EndDate:   NewDate(2025, time.March, 15),
	}
	if !rec.Overlaps(NewDate(2025, time.March, 10), NewDate(2025, time.March, 20)) {
		t.Fatal("expected overlap")
	}
	if rec.Overlaps(NewDate(2025, time.March, 16), NewDate(2025, time.March, 20)) {
		t.Fatal("expected no overlap past end date")
	}
}
