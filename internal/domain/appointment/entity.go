package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ApplySchedule fixes the start and duration of ap and derives the slot
// fields from them.
func ApplySchedule(ap *models.Appointment, start time.Time, slots int) {
	slots = ClampSlotCount(slots)
	start = start.UTC()

	ap.StartDate = start
	ap.EndDate = start.Add(SlotDuration(slots))
	ap.Slots = slots
	ap.SlotStart = SlotIndexOf(start)
	ap.SlotEnd = ap.SlotStart + slots
}

// RecordStatus sets the status and appends it to the history when it changes.
func RecordStatus(ap *models.Appointment, st Status, by string, at time.Time) {
	if ap.Status == string(st) && len(ap.Statuses) > 0 {
		return
	}
	ap.Status = string(st)
	ap.Statuses = append(ap.Statuses, models.StatusChange{
		Status:    string(st),
		ChangedAt: at.UTC(),
		ChangedBy: by,
	})
}

// Cancel marks ap as removed. Status is left as-is; the record stays.
func Cancel(ap *models.Appointment) {
	ap.Active = false
}
