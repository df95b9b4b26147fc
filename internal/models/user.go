package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null;size:120" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"`
	Username  string    `gorm:"not null;size:80" json:"username"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
