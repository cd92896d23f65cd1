package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func minutes(n int) *int {
	return &n
}

func existingAt(id uint, start time.Time, duration *int, status string) models.Appointment {
	return models.Appointment{
		ID:              id,
		ScheduledAt:     start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestFindConflicts_Overlap(t *testing.T) {
	existing := []models.Appointment{
		existingAt(1, at(14, 0), minutes(60), "pending"), // [14:00, 15:00)
	}

	cases := []struct {
		name     string
		start    time.Time
		duration int
		want     int
	}{
		{"identical window", at(14, 0), 60, 1},
		{"starts inside", at(14, 30), 60, 1},
		{"ends inside", at(13, 30), 60, 1},
		{"fully contains", at(13, 0), 180, 1},
		{"fully contained", at(14, 15), 15, 1},
		{"touches at end", at(15, 0), 30, 0},   // começa onde o outro termina
		{"touches at start", at(13, 0), 60, 0}, // termina onde o outro começa
		{"before", at(10, 0), 30, 0},
		{"after", at(16, 0), 30, 0},
	}

	for _, tt := range cases {
		got := FindConflicts(Candidate{Start: tt.start, DurationMinutes: tt.duration}, existing)
		if len(got) != tt.want {
			t.Fatalf("%s: expected %d conflicts, got %d", tt.name, tt.want, len(got))
		}
	}
}

func TestFindConflicts_CancelledNeverConflicts(t *testing.T) {
	existing := []models.Appointment{
		existingAt(1, at(14, 0), minutes(60), "cancelled"),
	}

	got := FindConflicts(Candidate{Start: at(14, 0), DurationMinutes: 60}, existing)
	if len(got) != 0 {
		t.Fatalf("expected no conflicts against cancelled, got %d", len(got))
	}
}

func TestFindConflicts_ExcludeSelf(t *testing.T) {
	existing := []models.Appointment{
		existingAt(7, at(14, 0), minutes(30), "confirmed"),
	}

	// reagendar para o mesmo horário não conflita com o próprio registro
	got := FindConflicts(Candidate{Start: at(14, 0), DurationMinutes: 30, ExcludeID: 7}, existing)
	if len(got) != 0 {
		t.Fatalf("expected no self-conflict, got %d", len(got))
	}

	// mas um outro registro na mesma janela ainda conflita
	existing = append(existing, existingAt(8, at(14, 0), minutes(30), "pending"))
	got = FindConflicts(Candidate{Start: at(14, 0), DurationMinutes: 30, ExcludeID: 7}, existing)
	if len(got) != 1 || got[0].ID != 8 {
		t.Fatalf("expected only appointment 8 in conflict, got %+v", got)
	}
}

func TestFindConflicts_DefaultDuration(t *testing.T) {
	// sem duração própria: janela assumida de 30 minutos
	existing := []models.Appointment{
		existingAt(1, at(14, 0), nil, "pending"), // [14:00, 14:30)
	}

	if got := FindConflicts(Candidate{Start: at(14, 29), DurationMinutes: 30}, existing); len(got) != 1 {
		t.Fatalf("expected conflict inside default window, got %d", len(got))
	}
	if got := FindConflicts(Candidate{Start: at(14, 30), DurationMinutes: 30}, existing); len(got) != 0 {
		t.Fatalf("expected no conflict at default window end, got %d", len(got))
	}
}

func TestFindConflicts_EmptyAndOrder(t *testing.T) {
	if got := FindConflicts(Candidate{Start: at(14, 0), DurationMinutes: 30}, nil); len(got) != 0 {
		t.Fatalf("expected no conflicts on empty input, got %d", len(got))
	}

	// ordem de entrada preservada, mesmo quando fora de ordem cronológica
	existing := []models.Appointment{
		existingAt(3, at(14, 30), minutes(30), "pending"),
		existingAt(1, at(14, 0), minutes(30), "pending"),
	}
	got := FindConflicts(Candidate{Start: at(14, 0), DurationMinutes: 60}, existing)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected input order [3 1], got %+v", got)
	}
}

func TestFindConflicts_Symmetric(t *testing.T) {
	a := existingAt(1, at(14, 0), minutes(45), "pending")
	b := existingAt(2, at(14, 30), minutes(45), "pending")

	fromA := FindConflicts(Candidate{Start: b.ScheduledAt, DurationMinutes: 45}, []models.Appointment{a})
	fromB := FindConflicts(Candidate{Start: a.ScheduledAt, DurationMinutes: 45}, []models.Appointment{b})

	if len(fromA) != 1 || len(fromB) != 1 {
		t.Fatalf("overlap must be symmetric: got %d and %d", len(fromA), len(fromB))
	}
}

func TestWindow_DefaultAndExplicit(t *testing.T) {
	ap := existingAt(1, at(9, 0), nil, "pending")
	start, end := Window(&ap)
	if !start.Equal(at(9, 0)) || !end.Equal(at(9, 30)) {
		t.Fatalf("expected default window [09:00, 09:30), got [%s, %s)", start, end)
	}

	ap.DurationMinutes = minutes(90)
	_, end = Window(&ap)
	if !end.Equal(at(10, 30)) {
		t.Fatalf("expected explicit window end 10:30, got %s", end)
	}
}
