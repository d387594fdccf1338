package models

import (
	"gorm.io/gorm"
)

// A catalog food entry, macros per 100g.
type Food struct {
	gorm.Model
	Name     string `gorm:"not null;index"`
	Category string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
