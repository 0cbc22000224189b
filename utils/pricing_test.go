package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two full nights", date(2025, 3, 10), date(2025, 3, 12), 2},
		{"one night", date(2025, 3, 10), date(2025, 3, 11), 1},
		{"same day floors to one", date(2025, 3, 10), date(2025, 3, 10), 1},
		{"fractional day rounds up", time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), 1},
		{"just over one day rounds to two", time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC), 2},
		{"inverted range floors to one", date(2025, 3, 12), date(2025, 3, 10), 1},
	}
	for _, tc := range cases {
		if got := Nights(tc.checkIn, tc.checkOut); got != tc.want {
			t.Errorf("%s: Nights() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestRoomTotalAndSuggestedDeposit(t *testing.T) {
	t.Parallel()

	// Two rooms over two nights: 800k and 500k per night.
	total := RoomTotal(800000, 2) + RoomTotal(500000, 2)
	if total != 2600000 {
		t.Fatalf("booking total = %v, want 2600000", total)
	}
	if got := SuggestedDeposit(total, 30); got != 780000 {
		t.Fatalf("SuggestedDeposit(%v, 30) = %v, want 780000", total, got)
	}
	if got := SuggestedDeposit(0, 30); got != 0 {
		t.Fatalf("SuggestedDeposit(0, 30) = %v, want 0", got)
	}
	// Rounding, not truncation.
	if got := SuggestedDeposit(1005, 30); got != 302 {
		t.Fatalf("SuggestedDeposit(1005, 30) = %v, want 302", got)
	}
}

func TestRemainingNights(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	if got := RemainingNights(date(2025, 3, 13), now); got != 3 {
		t.Errorf("RemainingNights three days out = %d, want 3", got)
	}
	// Last night of the stay still counts as one.
	if got := RemainingNights(date(2025, 3, 10), now); got != 1 {
		t.Errorf("RemainingNights on check-out day = %d, want 1", got)
	}
}

func TestPriceDifference(t *testing.T) {
	t.Parallel()

	if got := PriceDifference(500000, 800000, 2); got != 600000 {
		t.Errorf("upgrade difference = %v, want 600000", got)
	}
	if got := PriceDifference(800000, 500000, 2); got != -600000 {
		t.Errorf("downgrade difference = %v, want -600000", got)
	}
	if got := PriceDifference(500000, 500000, 3); got != 0 {
		t.Errorf("equal rates difference = %v, want 0", got)
	}
}

func TestPriceDifferenceLabel(t *testing.T) {
	t.Parallel()

	if got := PriceDifferenceLabel(100000); got == "" {
		t.Error("positive difference should produce a surcharge sentence")
	}
	if got := PriceDifferenceLabel(-100000); got == "" {
		t.Error("negative difference should produce a refund sentence")
	}
	if got := PriceDifferenceLabel(0); got != "" {
		t.Errorf("zero difference label = %q, want empty", got)
	}
}

func TestMidnightOf(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, 7, 4, 23, 59, 58, 123, time.FixedZone("ICT", 7*3600))
	got := MidnightOf(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("MidnightOf left a time component: %v", got)
	}
	if got.Year() != 2025 || got.Month() != time.July || got.Day() != 4 {
		t.Fatalf("MidnightOf changed the date: %v", got)
	}
	if got.Location() != in.Location() {
		t.Fatalf("MidnightOf changed the location: %v", got.Location())
	}
}
