package professional

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ValidateAssignments checks the per-professional service terms. Services
// must be listed once.
func ValidateAssignments(as []models.ServiceAssignment) error {
	seen := make(map[string]struct{}, len(as))
	for _, a := range as {
		if a.ServiceID == "" {
			return httperr.ErrValidation("invalid_id")
		}
		if _, dup := seen[a.ServiceID]; dup {
			return httperr.ErrValidation("duplicate_service")
		}
		seen[a.ServiceID] = struct{}{}

		if a.Price < 0 {
			return httperr.ErrValidation("invalid_price")
		}
		if a.SlotCount < 1 {
			return httperr.ErrValidation("invalid_slot_count")
		}
	}
	return nil
}

func ValidateSchedule(entries []models.ScheduleEntry) error {
	for _, e := range entries {
		if err := appointment.ValidateScheduleEntry(e); err != nil {
			return err
		}
	}
	return nil
}
