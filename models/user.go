package models

import (
	"time"
)

type AdminUser struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;size:150" json:"username"`
	Email       string    `gorm:"size:254" json:"email"`
	Password    string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	IsSuperuser bool      `gorm:"column:is_superuser;default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
