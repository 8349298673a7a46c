package appointment

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Window is an open [Start, End) interval in minutes since midnight.
type Window struct {
	Start int
	End   int
}

func (w Window) Contains(start, end int) bool {
	return start >= w.Start && end <= w.End
}

// OpenWindowsFor lists the professional's open windows on a weekday in
// schedule order. Entries are not merged; an entry whose times cannot be
// parsed or whose start is not before its end is skipped.
func OpenWindowsFor(p *models.Professional, day models.Weekday) []Window {
	if p == nil {
		return nil
	}

	windows := []Window{}
	for _, entry := range p.Schedule {
		if entry.Weekday != day {
			continue
		}
		start, ok := TimeToMinutes(entry.Start)
		if !ok {
			continue
		}
		end, ok := TimeToMinutes(entry.End)
		if !ok || start >= end {
			continue
		}
		windows = append(windows, Window{Start: start, End: end})
	}
	return windows
}

// ValidateScheduleEntry is the write-side check used when a schedule is stored.
func ValidateScheduleEntry(e models.ScheduleEntry) error {
	if !e.Weekday.Valid() {
		return httperr.ErrValidation("invalid_weekday")
	}
	start, ok := ParseTimeOfDay(e.Start)
	if !ok {
		return httperr.ErrValidation("invalid_schedule_time")
	}
	end, ok := ParseTimeOfDay(e.End)
	if !ok {
		return httperr.ErrValidation("invalid_schedule_time")
	}
	if !start.Aligned() || !end.Aligned() {
		return httperr.ErrValidation("unaligned_schedule_time")
	}
	if start.Minutes() >= end.Minutes() {
		return httperr.ErrValidation("invalid_schedule_range")
	}
	return nil
}
