package models

import (
	"gorm.io/gorm"
)

// User is the auth account. Role and display data live on Profile;
// Name here is only the signup metadata the profile fallback draws from.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string
}
