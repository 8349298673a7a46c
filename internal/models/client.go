package models

import "time"

// Client is the tenant (a salon). Professionals, services and customers hang off it.
type Client struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Code int    `gorm:"uniqueIndex;not null" json:"code"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Rif   string `gorm:"size:30;uniqueIndex;not null" json:"rif"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	NotifySMS   bool `gorm:"default:true" json:"notify_sms"`
	NotifyEmail bool `gorm:"default:true" json:"notify_email"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
