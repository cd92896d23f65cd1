package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

func TestConfirm(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Confirm(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) || ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Fatalf("confirm did not apply: %+v", ap)
	}

	// confirmar de novo é inválido
	if err := Confirm(ap, now); err == nil {
		t.Fatal("expected error confirming an already confirmed appointment")
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for _, from := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(from)}
		if err := Cancel(ap, now); err != nil {
			t.Fatalf("cancel from %s: %v", from, err)
		}
		if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
			t.Fatalf("cancel did not apply from %s: %+v", from, ap)
		}
	}

	ap := &models.Appointment{Status: string(StatusCompleted)}
	if err := Cancel(ap, now); err == nil {
		t.Fatal("expected error cancelling a completed appointment")
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("complete did not apply: %+v", ap)
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	if err := Complete(cancelled, now); err == nil {
		t.Fatal("expected error completing a cancelled appointment")
	}
}
