package models

import (
	"time"

	"gorm.io/gorm"
)

// Assessment is an append-only body-metric snapshot, ordered by Date.
// BMI and BasalMetabolicRate are computed server-side at creation and
// frozen; there are no update or delete paths.
type Assessment struct {
	gorm.Model
	PatientID          uint      `gorm:"index;not null"`
	Date               time.Time `gorm:"index;not null"`
	Weight             float64   // kg
	BMI                float64
	BodyFatPercentage  float64
	Waist              float64 // circumferences in cm
	Hip                float64
	Arm                float64
	Calf               float64
	BasalMetabolicRate float64 // kcal/day
	Notes              string  `gorm:"type:text"`
}
