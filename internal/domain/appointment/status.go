package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusShow      Status = "show"
	StatusNoShow    Status = "no_show"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

var knownStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusConfirmed: {},
	StatusShow:      {},
	StatusNoShow:    {},
	StatusCanceled:  {},
	StatusCompleted: {},
}

// transitions is the intended lifecycle. Any state may move to canceled.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed},
	StatusConfirmed: {StatusShow, StatusNoShow},
	StatusShow:      {StatusCompleted},
	StatusNoShow:    {StatusCompleted},
}

func InitialStatus() Status {
	return StatusScheduled
}

// ParseStatus accepts only the six known values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := knownStatuses[st]; !ok {
		return "", httperr.ErrValidation("invalid_status")
	}
	return st, nil
}

// CanTransition reports whether from -> to follows the lifecycle.
// Staying in the same state is always allowed.
func CanTransition(from, to Status) bool {
	if from == to || to == StatusCanceled {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition is a no-op unless strict is set. Accepting any known
// status is the default behaviour.
func ValidateTransition(from, to Status, strict bool) error {
	if !strict {
		return nil
	}
	if !CanTransition(from, to) {
		return httperr.ErrValidation("invalid_transition")
	}
	return nil
}
