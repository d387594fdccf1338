package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is poll-only: clients fetch their list and flip Read.
// RecipientID references the recipient's Profile.
type Notification struct {
	gorm.Model
	RecipientID uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Message     string `gorm:"type:text"`
	Date        time.Time
	Read        bool `gorm:"default:false"`
}
