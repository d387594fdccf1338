package models

import (
	"gorm.io/gorm"
)

const (
	RoleNutritionist = "nutritionist"
	RolePatient      = "patient"
	RoleAdmin        = "admin"
)

// Profile is the role-bearing identity record, 1:1 with User.
// Role is set once at signup (directly or via invitation) and no
// update path rewrites it.
type Profile struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"not null"`
	Role     string `gorm:"size:20;not null"`
	PhotoURL string
}

func ValidRole(role string) bool {
	switch role {
	case RoleNutritionist, RolePatient, RoleAdmin:
		return true
	}
	return false
}
