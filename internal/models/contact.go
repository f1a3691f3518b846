package models

import (
	"time"

	"gorm.io/gorm"
)

type Contact struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	FirstName string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string         `gorm:"type:varchar(100)" json:"last_name"`
	Email     string         `gorm:"type:varchar(200)" json:"email"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Addresses []Address `gorm:"foreignKey:ContactID" json:"addresses,omitempty"`
}
