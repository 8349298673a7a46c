package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Booking is an existing active appointment reduced to its slot interval.
type Booking struct {
	ID        string
	SlotStart int
	SlotEnd   int
}

func (b Booking) startMinutes() int { return b.SlotStart * SlotMinutes }
func (b Booking) endMinutes() int   { return b.SlotEnd * SlotMinutes }

// BookingsFrom keeps the active appointments and reduces them to intervals.
func BookingsFrom(aps []models.Appointment) []Booking {
	out := make([]Booking, 0, len(aps))
	for _, ap := range aps {
		if !ap.Active {
			continue
		}
		out = append(out, Booking{
			ID:        ap.ID,
			SlotStart: ap.SlotStart,
			SlotEnd:   ap.SlotStart + ap.Slots,
		})
	}
	return out
}

type AvailabilityQuery struct {
	Professional *models.Professional
	Date         time.Time
	SlotCount    int
	Bookings     []Booking
	Now          time.Time

	// EditingID is the appointment being rescheduled, empty for a new booking.
	EditingID string
}

func (q AvailabilityQuery) editing() bool {
	return q.EditingID != ""
}

// Overlaps is the half-open interval test.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ComputeAvailableSlots returns the bookable start times, ascending.
func ComputeAvailableSlots(q AvailabilityQuery) []TimeOfDay {
	slots := []TimeOfDay{}
	if q.Professional == nil {
		return slots
	}

	windows := OpenWindowsFor(q.Professional, models.WeekdayOf(q.Date))
	if len(windows) == 0 {
		return slots
	}

	// Past-time filter. Skipped entirely when editing so the appointment's
	// own time stays selectable.
	earliest := -1
	if !q.editing() {
		day := timezone.StartOfDay(q.Date)
		today := timezone.StartOfDay(q.Now)
		if day.Before(today) {
			return slots
		}
		if day.Equal(today) {
			earliest = MinutesSinceMidnight(q.Now)
		}
	}

	duration := ClampSlotCount(q.SlotCount) * SlotMinutes

	for idx := 0; idx < SlotsPerDay; idx++ {
		start := idx * SlotMinutes
		end := start + duration

		if start <= earliest {
			continue
		}
		if !fitsAnyWindow(windows, start, end) {
			continue
		}
		if collides(q.Bookings, q.EditingID, start, end) {
			continue
		}
		slots = append(slots, FromMinutes(start))
	}

	return slots
}

// IsSlotAvailable reports whether start is one of the computed slots.
func IsSlotAvailable(q AvailabilityQuery, start TimeOfDay) bool {
	for _, s := range ComputeAvailableSlots(q) {
		if s == start {
			return true
		}
	}
	return false
}

func fitsAnyWindow(windows []Window, start, end int) bool {
	for _, w := range windows {
		if w.Contains(start, end) {
			return true
		}
	}
	return false
}

func collides(bookings []Booking, skipID string, start, end int) bool {
	for _, b := range bookings {
		if skipID != "" && b.ID == skipID {
			continue
		}
		if Overlaps(start, end, b.startMinutes(), b.endMinutes()) {
			return true
		}
	}
	return false
}
