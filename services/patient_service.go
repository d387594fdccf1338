package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"gorm.io/gorm"
)

var (
	ErrNotNutritionist = errors.New("acting user is not a nutritionist")
	ErrTransferDenied  = errors.New("patient is not assigned to the acting nutritionist")
)

type PatientInput struct {
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Goal   string  `json:"goal"`
	Notes  string  `json:"notes"`
}

func CreatePatient(nutritionistID *uint, input PatientInput) (*models.Patient, error) {
	if input.Goal != "" && !models.ValidGoal(input.Goal) {
		return nil, fmt.Errorf("invalid goal %q", input.Goal)
	}

	patient := models.Patient{
		NutritionistID: nutritionistID,
		Age:            input.Age,
		Gender:         input.Gender,
		Height:         input.Height,
		Weight:         input.Weight,
		Email:          input.Email,
		Phone:          input.Phone,
		Goal:           input.Goal,
		Notes:          input.Notes,
	}
	if err := config.DB.Create(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func GetPatient(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := config.DB.First(&patient, id).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &patient, nil
}

func ListPatientsByNutritionist(nutritionistID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := config.DB.
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at DESC").
		Find(&patients).Error
	return patients, err
}

func ListAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := config.DB.Order("created_at DESC").Find(&patients).Error
	return patients, err
}

func UpdatePatient(id uint, input PatientInput) (*models.Patient, error) {
	var patient models.Patient
	if err := config.DB.First(&patient, id).Error; err != nil {
		return nil, err
	}

	if input.Age > 0 {
		patient.Age = input.Age
	}
	if input.Gender != "" {
		patient.Gender = input.Gender
	}
	if input.Height > 0 {
		patient.Height = input.Height
	}
	if input.Weight > 0 {
		patient.Weight = input.Weight
	}
	if input.Email != "" {
		patient.Email = input.Email
	}
	if input.Phone != "" {
		patient.Phone = input.Phone
	}
	if input.Goal != "" {
		if !models.ValidGoal(input.Goal) {
			return nil, fmt.Errorf("invalid goal %q", input.Goal)
		}
		patient.Goal = input.Goal
	}
	if input.Notes != "" {
		patient.Notes = input.Notes
	}

	if err := config.DB.Save(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func DeletePatient(id uint) error {
	return config.DB.Delete(&models.Patient{}, id).Error
}

// IsPatientOfNutritionist is the ownership predicate behind the access
// gate: true iff the patient's nutritionist_id equals the given
// nutritionist. Never evaluated client-side only; every patient
// sub-resource route re-checks it.
func IsPatientOfNutritionist(nutritionistID, patientID uint) bool {
	var count int64
	err := config.DB.Model(&models.Patient{}).
		Where("id = ? AND nutritionist_id = ?", patientID, nutritionistID).
		Count(&count).Error
	return err == nil && count == 1
}

// TransferPatient reassigns a patient to another nutritionist. The
// ownership check and the rewrite are a single conditional update in
// one transaction: a non-owner can never move the patient and a failed
// transfer mutates nothing.
func TransferPatient(actingProfileID, patientID, newNutritionistID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var acting models.Nutritionist
		if err := tx.Where("profile_id = ?", actingProfileID).First(&acting).Error; err != nil {
			return ErrNotNutritionist
		}

		var target models.Nutritionist
		if err := tx.First(&target, newNutritionistID).Error; err != nil {
			return errors.New("target nutritionist not found")
		}

		result := tx.Model(&models.Patient{}).
			Where("id = ? AND nutritionist_id = ?", patientID, acting.ID).
			Update("nutritionist_id", target.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return ErrTransferDenied
		}

		var patient models.Patient
		if err := tx.First(&patient, patientID).Error; err != nil {
			return err
		}
		notification := models.Notification{
			RecipientID: target.ProfileID,
			Title:       "Paciente transferido",
			Message:     fmt.Sprintf("O paciente %s foi transferido para você.", patientDisplayName(tx, &patient)),
			Date:        time.Now(),
		}
		return tx.Create(&notification).Error
	})
}

func patientDisplayName(tx *gorm.DB, patient *models.Patient) string {
	if patient.ProfileID != nil {
		var profile models.Profile
		if err := tx.First(&profile, *patient.ProfileID).Error; err == nil {
			return profile.Name
		}
	}
	if patient.Email != "" {
		return patient.Email
	}
	return fmt.Sprintf("#%d", patient.ID)
}
