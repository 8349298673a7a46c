package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func mondayMorning() *models.Professional {
	return &models.Professional{
		ID: "prof-1",
		Schedule: []models.ScheduleEntry{
			{Weekday: models.Monday, Start: "09:00", End: "12:00"},
		},
	}
}

func times(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestComputeAvailableSlotsOverlapAndContainment(t *testing.T) {
	q := AvailabilityQuery{
		Professional: mondayMorning(),
		Date:         monday,
		SlotCount:    2,
		Bookings:     []Booking{{ID: "b1", SlotStart: 38, SlotEnd: 40}}, // 09:30-10:00
		Now:          monday.AddDate(0, 0, -1),
	}

	got := times(ComputeAvailableSlots(q))

	assert.Equal(t, []string{
		"09:00",
		"10:00", "10:15", "10:30", "10:45",
		"11:00", "11:15", "11:30",
	}, got)
	assert.NotContains(t, got, "09:15")
	assert.NotContains(t, got, "09:45")
	assert.NotContains(t, got, "11:45")
}

func TestComputeAvailableSlotsNoScheduleForWeekday(t *testing.T) {
	q := AvailabilityQuery{
		Professional: mondayMorning(),
		Date:         monday.AddDate(0, 0, 1),
		SlotCount:    1,
		Now:          monday,
	}

	got := ComputeAvailableSlots(q)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeAvailableSlotsNilProfessional(t *testing.T) {
	assert.Empty(t, ComputeAvailableSlots(AvailabilityQuery{Date: monday, Now: monday}))
}

func TestComputeAvailableSlotsDurationPastWindowEnd(t *testing.T) {
	q := AvailabilityQuery{
		Professional: mondayMorning(),
		Date:         monday,
		SlotCount:    4,
		Now:          monday.AddDate(0, 0, -1),
	}

	got := times(ComputeAvailableSlots(q))

	require.NotEmpty(t, got)
	assert.Equal(t, "11:00", got[len(got)-1])
	assert.NotContains(t, got, "11:15")
}

func TestComputeAvailableSlotsClampsSlotCount(t *testing.T) {
	base := AvailabilityQuery{Professional: mondayMorning(), Date: monday, Now: monday.AddDate(0, 0, -1)}

	one := base
	one.SlotCount = 1
	zero := base
	zero.SlotCount = 0
	negative := base
	negative.SlotCount = -3

	assert.Equal(t, ComputeAvailableSlots(one), ComputeAvailableSlots(zero))
	assert.Equal(t, ComputeAvailableSlots(one), ComputeAvailableSlots(negative))
	assert.Len(t, ComputeAvailableSlots(one), 12)
}

func TestComputeAvailableSlotsSplitShifts(t *testing.T) {
	p := &models.Professional{Schedule: []models.ScheduleEntry{
		{Weekday: models.Monday, Start: "09:00", End: "10:00"},
		{Weekday: models.Monday, Start: "14:00", End: "14:30"},
		{Weekday: models.Monday, Start: "bogus", End: "16:00"},
	}}

	got := times(ComputeAvailableSlots(AvailabilityQuery{
		Professional: p,
		Date:         monday,
		SlotCount:    2,
		Now:          monday.AddDate(0, 0, -1),
	}))

	assert.Equal(t, []string{"09:00", "09:15", "09:30", "14:00"}, got)
}

func TestComputeAvailableSlotsPastDate(t *testing.T) {
	q := AvailabilityQuery{
		Professional: mondayMorning(),
		Date:         monday,
		SlotCount:    1,
		Now:          monday.AddDate(0, 0, 1),
	}
	assert.Empty(t, ComputeAvailableSlots(q))

	q.EditingID = "ap-1"
	assert.NotEmpty(t, ComputeAvailableSlots(q))
}

func TestComputeAvailableSlotsTodayExcludesElapsed(t *testing.T) {
	now := monday.Add(10*time.Hour + 7*time.Minute)
	q := AvailabilityQuery{
		Professional: mondayMorning(),
		Date:         monday,
		SlotCount:    1,
		Now:          now,
	}

	got := ComputeAvailableSlots(q)
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Greater(t, s.Minutes(), MinutesSinceMidnight(now))
	}
	assert.Equal(t, "10:15", got[0].String())

	// a start exactly at the current minute is already gone
	q.Now = monday.Add(10 * time.Hour)
	assert.Equal(t, "10:15", ComputeAvailableSlots(q)[0].String())
}

func TestComputeAvailableSlotsEditingKeepsOwnTime(t *testing.T) {
	now := monday.Add(11 * time.Hour)
	own := Booking{ID: "ap-1", SlotStart: 36, SlotEnd: 38} // 09:00-09:30
	other := Booking{ID: "ap-2", SlotStart: 40, SlotEnd: 42}

	q := AvailabilityQuery{
		Professional: mondayMorning(),
		Date:         monday,
		SlotCount:    2,
		Bookings:     []Booking{own, other},
		Now:          now,
		EditingID:    "ap-1",
	}

	got := times(ComputeAvailableSlots(q))
	assert.Contains(t, got, "09:00")
	assert.NotContains(t, got, "09:45")
	assert.True(t, IsSlotAvailable(q, TimeOfDay{Hour: 9}))

	q.EditingID = ""
	assert.NotContains(t, times(ComputeAvailableSlots(q)), "09:00")
}

func TestComputeAvailableSlotsNeverOffersOverlap(t *testing.T) {
	bookings := []Booking{
		{ID: "a", SlotStart: 36, SlotEnd: 37},
		{ID: "b", SlotStart: 41, SlotEnd: 44},
		{ID: "c", SlotStart: 46, SlotEnd: 47},
	}

	for slots := 1; slots <= 6; slots++ {
		q := AvailabilityQuery{
			Professional: mondayMorning(),
			Date:         monday,
			SlotCount:    slots,
			Bookings:     bookings,
			Now:          monday.AddDate(0, 0, -1),
		}
		windows := OpenWindowsFor(q.Professional, models.Monday)

		for _, s := range ComputeAvailableSlots(q) {
			start := MinutesToSlotIndex(s.Minutes())
			end := start + slots
			for _, b := range bookings {
				assert.True(t, end <= b.SlotStart || b.SlotEnd <= start,
					"slots=%d start=%s overlaps %s", slots, s, b.ID)
			}
			assert.True(t, fitsAnyWindow(windows, s.Minutes(), s.Minutes()+slots*SlotMinutes))
		}
	}
}

func TestBookingsFromSkipsInactive(t *testing.T) {
	got := BookingsFrom([]models.Appointment{
		{ID: "a", SlotStart: 40, Slots: 2, Active: true},
		{ID: "b", SlotStart: 50, Slots: 1, Active: false},
	})

	assert.Equal(t, []Booking{{ID: "a", SlotStart: 40, SlotEnd: 42}}, got)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(0, 30, 15, 45))
	assert.False(t, Overlaps(0, 30, 30, 45))
	assert.False(t, Overlaps(30, 45, 0, 30))
	assert.True(t, Overlaps(10, 20, 0, 60))
}
