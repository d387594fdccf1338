package models

import (
	"gorm.io/gorm"
)

const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMaintenance = "maintenance"
)

// Patient record. ProfileID is nullable: admins create placeholder
// records before the patient ever logs in. NutritionistID is the
// ownership link the transfer operation rewrites.
type Patient struct {
	gorm.Model
	ProfileID      *uint `gorm:"uniqueIndex"`
	NutritionistID *uint `gorm:"index"`
	Age            int
	Gender         string `gorm:"size:16"`
	Height         float64 // cm
	Weight         float64 // kg
	Email          string
	Phone          string
	Goal           string `gorm:"size:20"`
	Notes          string `gorm:"type:text"`
}

func ValidGoal(goal string) bool {
	switch goal {
	case GoalWeightLoss, GoalWeightGain, GoalMaintenance:
		return true
	}
	return false
}
