package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"9:15", 555, true},
		{"23:45", 1425, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"ab:cd", 0, false},
		{"1230", 0, false},
		{"+9:00", 0, false},
		{"-0:00", 0, false},
		{"09:+5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := TimeToMinutes(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToSlotIndex(t *testing.T) {
	assert.Equal(t, 0, MinutesToSlotIndex(14))
	assert.Equal(t, 1, MinutesToSlotIndex(15))
	assert.Equal(t, 38, MinutesToSlotIndex(9*60+30))
	assert.Equal(t, 95, MinutesToSlotIndex(23*60+59))
}

func TestIsAlignedInstant(t *testing.T) {
	assert.True(t, IsAlignedInstant(time.Date(2025, 3, 3, 9, 45, 0, 0, time.UTC)))
	assert.False(t, IsAlignedInstant(time.Date(2025, 3, 3, 9, 40, 0, 0, time.UTC)))
	assert.False(t, IsAlignedInstant(time.Date(2025, 3, 3, 9, 45, 1, 0, time.UTC)))
}

func TestApplySchedule(t *testing.T) {
	var ap models.Appointment
	start := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)

	ApplySchedule(&ap, start, 3)

	assert.Equal(t, start, ap.StartDate)
	assert.Equal(t, start.Add(45*time.Minute), ap.EndDate)
	assert.Equal(t, 38, ap.SlotStart)
	assert.Equal(t, 41, ap.SlotEnd)
	assert.Equal(t, ap.SlotEnd-ap.SlotStart, ap.Slots)

	ApplySchedule(&ap, start, 0)
	assert.Equal(t, 1, ap.Slots)
}

func TestRecordStatus(t *testing.T) {
	var ap models.Appointment
	at := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	RecordStatus(&ap, StatusScheduled, "u1", at)
	RecordStatus(&ap, StatusScheduled, "u1", at)
	RecordStatus(&ap, StatusConfirmed, "u2", at.Add(time.Hour))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	if assert.Len(t, ap.Statuses, 2) {
		assert.Equal(t, "scheduled", ap.Statuses[0].Status)
		assert.Equal(t, "u2", ap.Statuses[1].ChangedBy)
	}
}
