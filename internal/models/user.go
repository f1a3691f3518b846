package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(200);not null" json:"email"`
	FirstName    string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string         `gorm:"type:varchar(100)" json:"last_name"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	RefreshToken string         `gorm:"type:varchar(512);index" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Notes          []Note          `gorm:"foreignKey:UserID" json:"-"`
	Collaborations []Collaboration `gorm:"foreignKey:UserID" json:"-"`
	Contacts       []Contact       `gorm:"foreignKey:UserID" json:"-"`
}
