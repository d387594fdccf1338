package services

import (
	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
)

type NutritionistInput struct {
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number"`
}

// NutritionistView joins the practice record with its profile for the
// admin listing.
type NutritionistView struct {
	models.Nutritionist
	Name         string `json:"name"`
	PatientCount int64  `json:"patient_count"`
}

func GetNutritionistByProfile(profileID uint) (*models.Nutritionist, error) {
	var nutritionist models.Nutritionist
	if err := config.DB.Where("profile_id = ?", profileID).First(&nutritionist).Error; err != nil {
		return nil, err
	}
	return &nutritionist, nil
}

func ListNutritionists() ([]NutritionistView, error) {
	var nutritionists []models.Nutritionist
	if err := config.DB.Order("created_at DESC").Find(&nutritionists).Error; err != nil {
		return nil, err
	}

	views := make([]NutritionistView, 0, len(nutritionists))
	for _, n := range nutritionists {
		view := NutritionistView{Nutritionist: n}

		var profile models.Profile
		if err := config.DB.First(&profile, n.ProfileID).Error; err == nil {
			view.Name = profile.Name
		}
		config.DB.Model(&models.Patient{}).
			Where("nutritionist_id = ?", n.ID).
			Count(&view.PatientCount)

		views = append(views, view)
	}
	return views, nil
}

func GetNutritionist(id uint) (*models.Nutritionist, error) {
	var nutritionist models.Nutritionist
	if err := config.DB.First(&nutritionist, id).Error; err != nil {
		return nil, err
	}
	return &nutritionist, nil
}

func UpdateNutritionist(id uint, input NutritionistInput) (*models.Nutritionist, error) {
	var nutritionist models.Nutritionist
	if err := config.DB.First(&nutritionist, id).Error; err != nil {
		return nil, err
	}

	if input.Specialization != "" {
		nutritionist.Specialization = input.Specialization
	}
	if input.LicenseNumber != "" {
		nutritionist.LicenseNumber = input.LicenseNumber
	}

	if err := config.DB.Save(&nutritionist).Error; err != nil {
		return nil, err
	}
	return &nutritionist, nil
}

// DeleteNutritionist removes the practice record. Assigned patients
// are detached, not deleted.
func DeleteNutritionist(id uint) error {
	if err := config.DB.Model(&models.Patient{}).
		Where("nutritionist_id = ?", id).
		Update("nutritionist_id", nil).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.Nutritionist{}, id).Error
}
