package appointment

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  Status
		to    Status
		valid bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestCanReschedule(t *testing.T) {
	if err := CanReschedule(StatusPending); err != nil {
		t.Fatalf("pending should be reschedulable: %v", err)
	}
	if err := CanReschedule(StatusConfirmed); err != nil {
		t.Fatalf("confirmed should be reschedulable: %v", err)
	}
	if err := CanReschedule(StatusCompleted); err == nil {
		t.Fatal("completed must not be reschedulable")
	}
	if err := CanReschedule(StatusCancelled); err == nil {
		t.Fatal("cancelled must not be reschedulable")
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("expected initial status pending, got %q", InitialStatus())
	}
}
