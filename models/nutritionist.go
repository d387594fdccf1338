package models

import (
	"gorm.io/gorm"
)

// Nutritionist exists only for profiles with Role = nutritionist.
// The patient association is not stored here; it lives on Patient.NutritionistID.
type Nutritionist struct {
	gorm.Model
	ProfileID      uint `gorm:"uniqueIndex;not null"`
	Specialization string
	LicenseNumber  string `gorm:"size:64"`
}
