package models

import (
	"time"

	"gorm.io/gorm"
)

type Address struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	ContactID  uint64         `gorm:"not null;index" json:"contact_id"`
	Street     string         `gorm:"type:varchar(200)" json:"street"`
	City       string         `gorm:"type:varchar(100)" json:"city"`
	Province   string         `gorm:"type:varchar(100)" json:"province"`
	Country    string         `gorm:"type:varchar(100);not null" json:"country"`
	PostalCode string         `gorm:"type:varchar(10)" json:"postal_code"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Contact Contact `gorm:"foreignKey:ContactID" json:"-"`
}
