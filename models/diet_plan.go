package models

import (
	"gorm.io/gorm"
)

// DietPlan belongs to one patient. Macro percentages are plan-level
// attributes; they are not derived from the foods below.
type DietPlan struct {
	gorm.Model
	PatientID     uint `gorm:"index;not null"`
	Name          string
	TotalCalories float64
	CarbsPct      float64
	ProteinPct    float64
	FatPct        float64
	Meals         []Meal
}

// One meal of a plan (breakfast, lunch, ...), kept in Position order.
type Meal struct {
	gorm.Model
	DietPlanID uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	Time       string `gorm:"size:8"` // "08:00"
	Position   int
	Items      []MealFood
}

// MealFood links a meal to a catalog food with a quantity.
type MealFood struct {
	gorm.Model
	MealID   uint `gorm:"index;not null"`
	FoodID   uint `gorm:"index;not null"`
	Food     Food
	Quantity float64
	Unit     string `gorm:"size:16"` // "g" | "ml" | "unit"
}
