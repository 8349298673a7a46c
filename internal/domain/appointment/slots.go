package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	SlotMinutes = 15
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// TimeOfDay is a venue wall-clock HH:mm with no date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Aligned reports whether t sits on the slot grid.
func (t TimeOfDay) Aligned() bool {
	return t.Minute%SlotMinutes == 0
}

// FromMinutes converts minutes since midnight back to a TimeOfDay.
func FromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// ParseTimeOfDay parses HH:mm (H:mm is tolerated).
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || len(m) != 2 || h == "" || len(h) > 2 || !allDigits(h) || !allDigits(m) {
		return TimeOfDay{}, false
	}

	hour, err := strconv.Atoi(h)
	if err != nil {
		return TimeOfDay{}, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return TimeOfDay{}, false
	}
	if hour < 0 || hour >= 24 || minute < 0 || minute >= 60 {
		return TimeOfDay{}, false
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TimeToMinutes returns minutes since midnight, ok=false when s cannot be
// evaluated. Callers drop such values from any result.
func TimeToMinutes(s string) (int, bool) {
	t, ok := ParseTimeOfDay(s)
	if !ok {
		return 0, false
	}
	return t.Minutes(), true
}

func MinutesToSlotIndex(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes / SlotMinutes
}

// MinutesSinceMidnight of t in UTC.
func MinutesSinceMidnight(t time.Time) int {
	t = t.UTC()
	return t.Hour()*60 + t.Minute()
}

// SlotIndexOf rounds t's UTC time-of-day down to its slot.
func SlotIndexOf(t time.Time) int {
	return MinutesToSlotIndex(MinutesSinceMidnight(t))
}

// IsAlignedInstant reports whether t falls exactly on a slot boundary.
func IsAlignedInstant(t time.Time) bool {
	t = t.UTC()
	return t.Second() == 0 && t.Nanosecond() == 0 && t.Minute()%SlotMinutes == 0
}

// ClampSlotCount maps non-positive durations to a single slot.
func ClampSlotCount(n int) int {
	return max(n, 1)
}

func SlotDuration(slots int) time.Duration {
	return time.Duration(slots*SlotMinutes) * time.Minute
}
