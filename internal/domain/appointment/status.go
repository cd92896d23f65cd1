package appointment

import "github.com/BruksfildServices01/receptionist-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transições
// ===============================

var allowedTransitions = map[Status][]Status{
	StatusConfirmed: {StatusPending},
	StatusCompleted: {StatusPending, StatusConfirmed},
	StatusCancelled: {StatusPending, StatusConfirmed},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range allowedTransitions[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

func CanConfirm(current Status) error {
	if !CanTransition(current, StatusConfirmed) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !CanTransition(current, StatusCompleted) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !CanTransition(current, StatusCancelled) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule: só faz sentido mover o que ainda vai acontecer
func CanReschedule(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
