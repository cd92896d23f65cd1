package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

func TestGroupForDay_FiltersAndSorts(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		existingAt(2, at(15, 0), minutes(30), "confirmed"),
		existingAt(3, at(9, 0), minutes(45), "cancelled"),
		existingAt(1, at(10, 0), nil, "pending"),
	}

	overview := GroupForDay(day, aps)

	if overview.Date != "2026-03-10" {
		t.Fatalf("expected date 2026-03-10, got %q", overview.Date)
	}
	if overview.Count != 2 {
		t.Fatalf("expected 2 slots (cancelled filtered), got %d", overview.Count)
	}
	if overview.Slots[0].ID != 1 || overview.Slots[1].ID != 2 {
		t.Fatalf("expected slots sorted by time [1 2], got %+v", overview.Slots)
	}
	if overview.Slots[0].DurationMinutes != DefaultDurationMinutes {
		t.Fatalf("expected default duration, got %d", overview.Slots[0].DurationMinutes)
	}
}

func TestGroupForDay_StableOnTies(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		existingAt(5, at(14, 0), minutes(30), "pending"),
		existingAt(6, at(14, 0), minutes(30), "pending"),
	}

	overview := GroupForDay(day, aps)
	if overview.Slots[0].ID != 5 || overview.Slots[1].ID != 6 {
		t.Fatalf("expected input order kept on ties, got %+v", overview.Slots)
	}
}

func TestGroupForDay_DoesNotMutateInput(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		existingAt(2, at(15, 0), minutes(30), "pending"),
		existingAt(1, at(10, 0), minutes(30), "pending"),
	}

	GroupForDay(day, aps)

	if aps[0].ID != 2 || aps[1].ID != 1 {
		t.Fatalf("input slice must not be reordered, got %+v", aps)
	}
}

func TestGroupForDay_Empty(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	overview := GroupForDay(day, nil)
	if overview.Count != 0 || len(overview.Slots) != 0 {
		t.Fatalf("expected empty overview, got %+v", overview)
	}
}
