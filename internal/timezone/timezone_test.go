package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	if !IsValid("America/Sao_Paulo") || !IsValid("UTC") {
		t.Fatal("known zones must be valid")
	}
	if IsValid("") || IsValid("Mars/Olympus") {
		t.Fatal("unknown zones must be invalid")
	}
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("not-a-zone")
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC)

	start, end := DayBounds(date, "UTC")
	if !start.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day start: %s", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("expected 24h window, got %s", end.Sub(start))
	}
}
