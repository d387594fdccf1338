// services/diet_plan_service.go
package services

import (
	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"gorm.io/gorm"
)

type MealFoodRequest struct {
	FoodID   uint    `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type MealRequest struct {
	Name  string            `json:"name"`
	Time  string            `json:"time"`
	Items []MealFoodRequest `json:"items"`
}

type DietPlanRequest struct {
	Name          string        `json:"name"`
	TotalCalories float64       `json:"total_calories"`
	CarbsPct      float64       `json:"carbs_pct"`
	ProteinPct    float64       `json:"protein_pct"`
	FatPct        float64       `json:"fat_pct"`
	Meals         []MealRequest `json:"meals"`
}

func CreateDietPlan(patientID uint, req DietPlanRequest) (*models.DietPlan, error) {
	plan := &models.DietPlan{
		PatientID:     patientID,
		Name:          req.Name,
		TotalCalories: req.TotalCalories,
		CarbsPct:      req.CarbsPct,
		ProteinPct:    req.ProteinPct,
		FatPct:        req.FatPct,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		return createMeals(tx, plan.ID, req.Meals)
	})
	if err != nil {
		return nil, err
	}

	return GetDietPlan(plan.ID)
}

func createMeals(tx *gorm.DB, planID uint, meals []MealRequest) error {
	for position, m := range meals {
		meal := &models.Meal{
			DietPlanID: planID,
			Name:       m.Name,
			Time:       m.Time,
			Position:   position,
		}
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for _, it := range m.Items {
			mf := &models.MealFood{
				MealID:   meal.ID,
				FoodID:   it.FoodID,
				Quantity: it.Quantity,
				Unit:     it.Unit,
			}
			if err := tx.Create(mf).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func GetDietPlan(id uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := config.DB.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Meals.Items.Food").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func ListDietPlansByPatient(patientID uint) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	err := config.DB.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Meals.Items.Food").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// UpdateDietPlan replaces the plan attributes and its whole meal tree,
// the same way the dashboard edits plans: submit everything, rewrite.
// The lookup is scoped to the patient the caller was authorized for, so
// a plan id belonging to another patient answers like a missing plan.
func UpdateDietPlan(patientID, planID uint, req DietPlanRequest) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND patient_id = ?", planID, patientID).
			First(&plan).Error; err != nil {
			return err
		}

		plan.Name = req.Name
		plan.TotalCalories = req.TotalCalories
		plan.CarbsPct = req.CarbsPct
		plan.ProteinPct = req.ProteinPct
		plan.FatPct = req.FatPct
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		if err := deleteMeals(tx, plan.ID); err != nil {
			return err
		}
		return createMeals(tx, plan.ID, req.Meals)
	})
	if err != nil {
		return nil, err
	}

	return GetDietPlan(plan.ID)
}

// DeleteDietPlan removes a plan and its meal tree, scoped to the
// patient the same way UpdateDietPlan is.
func DeleteDietPlan(patientID, planID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		if err := tx.Where("id = ? AND patient_id = ?", planID, patientID).
			First(&plan).Error; err != nil {
			return err
		}
		if err := deleteMeals(tx, plan.ID); err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
}

func deleteMeals(tx *gorm.DB, planID uint) error {
	var mealIDs []uint
	if err := tx.Model(&models.Meal{}).
		Where("diet_plan_id = ?", planID).
		Pluck("id", &mealIDs).Error; err != nil {
		return err
	}
	if len(mealIDs) > 0 {
		if err := tx.Where("meal_id IN ?", mealIDs).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("diet_plan_id = ?", planID).Delete(&models.Meal{}).Error
}
