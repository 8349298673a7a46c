package models

import (
	"time"

	"gorm.io/datatypes"
)

type AppointmentService struct {
	ServiceID string  `json:"service_id"`
	Price     float64 `json:"price"`
}

type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // lng, lat
}

type Place struct {
	Address  string    `json:"address"`
	Location *GeoPoint `json:"location,omitempty"`
}

type StatusChange struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by,omitempty"`
}

type Appointment struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Code string `gorm:"size:6;uniqueIndex;not null" json:"code"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ProfessionalID *string       `gorm:"size:36;index" json:"professional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UserID *string `gorm:"size:36;index" json:"user_id"`
	User   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartDate time.Time `gorm:"index" json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	SlotStart int       `json:"slot_start"`
	SlotEnd   int       `json:"slot_end"`
	Slots     int       `json:"slots"`

	Services datatypes.JSONSlice[AppointmentService] `json:"services"`
	Status   string                                  `gorm:"size:20;default:'scheduled'" json:"status"`
	Statuses datatypes.JSONSlice[StatusChange]       `json:"statuses"`

	Place datatypes.JSONType[Place] `json:"place"`
	Notes string                    `gorm:"size:500" json:"notes"`

	Active       bool `gorm:"index;default:true" json:"active"`
	ReminderSent bool `gorm:"default:false" json:"reminder_sent"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceIDs lists the booked services in order.
func (a *Appointment) ServiceIDs() []string {
	ids := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		ids = append(ids, s.ServiceID)
	}
	return ids
}
