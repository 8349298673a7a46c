package models

import (
	"time"

	"gorm.io/datatypes"
)

type ScheduleEntry struct {
	Weekday Weekday `json:"weekday"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
}

type ServiceAssignment struct {
	ServiceID string  `json:"service_id"`
	Price     float64 `json:"price"`
	SlotCount int     `json:"slot_count"`
}

type Professional struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	UserID   string `gorm:"size:36;index;not null" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Services datatypes.JSONSlice[ServiceAssignment] `json:"services"`
	Schedule datatypes.JSONSlice[ScheduleEntry]     `json:"schedule"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Assignment returns the professional's terms for a service.
func (p *Professional) Assignment(serviceID string) (ServiceAssignment, bool) {
	for _, a := range p.Services {
		if a.ServiceID == serviceID {
			return a, true
		}
	}
	return ServiceAssignment{}, false
}
