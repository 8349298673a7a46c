package professional

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestValidateAssignments(t *testing.T) {
	tests := []struct {
		name string
		in   []models.ServiceAssignment
		code string
	}{
		{"empty", nil, ""},
		{"ok", []models.ServiceAssignment{{ServiceID: "s1", Price: 0, SlotCount: 1}, {ServiceID: "s2", Price: 20, SlotCount: 3}}, ""},
		{"missing id", []models.ServiceAssignment{{Price: 1, SlotCount: 1}}, "invalid_id"},
		{"negative price", []models.ServiceAssignment{{ServiceID: "s1", Price: -1, SlotCount: 1}}, "invalid_price"},
		{"zero slots", []models.ServiceAssignment{{ServiceID: "s1", Price: 1}}, "invalid_slot_count"},
		{"duplicate", []models.ServiceAssignment{{ServiceID: "s1", SlotCount: 1}, {ServiceID: "s1", SlotCount: 2}}, "duplicate_service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssignments(tt.in)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule([]models.ScheduleEntry{
		{Weekday: models.Monday, Start: "09:00", End: "12:00"},
		{Weekday: models.Monday, Start: "13:00", End: "18:00"},
	}))

	err := ValidateSchedule([]models.ScheduleEntry{
		{Weekday: models.Monday, Start: "09:00", End: "12:00"},
		{Weekday: models.Saturday, Start: "12:00", End: "09:00"},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_schedule_range"))
}
