package models

import "time"

// Service is an entry of a tenant's catalogue. Price and Slots are list values;
// professionals override both through their ServiceAssignment.
type Service struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"size:36;index;not null" json:"client_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	Slots       int     `gorm:"default:1" json:"slots"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
