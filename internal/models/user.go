package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

const (
	RoleAdmin        = "admin"
	RoleOwner        = "owner"
	RoleProfessional = "professional"
	RoleCustomer     = "customer"
)

type User struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	ClientID *string `gorm:"size:36;index" json:"client_id"`

	Name         string                      `gorm:"size:100;not null" json:"name"`
	Email        string                      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string                      `gorm:"size:255;not null" json:"-"`
	Phone        string                      `gorm:"size:20" json:"phone"`
	Roles        datatypes.JSONSlice[string] `json:"roles"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasRole(role string) bool {
	return slices.Contains([]string(u.Roles), role)
}
