package services

import (
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"
)

type AssessmentInput struct {
	Date              string  `json:"date"` // YYYY-MM-DD, defaults to today
	Weight            float64 `json:"weight" binding:"required"`
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	Waist             float64 `json:"waist"`
	Hip               float64 `json:"hip"`
	Arm               float64 `json:"arm"`
	Calf              float64 `json:"calf"`
	Notes             string  `json:"notes"`
}

// CreateAssessment appends a snapshot to the patient's history. BMI
// and BMR are computed here from the patient's current height, gender
// and age, and frozen into the record; later profile edits never
// rewrite past assessments.
func CreateAssessment(patientID uint, input AssessmentInput) (*models.Assessment, error) {
	patient, err := GetPatient(patientID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != "" {
		if parsed, err := time.Parse("2006-01-02", input.Date); err == nil {
			date = parsed
		}
	}

	assessment := models.Assessment{
		PatientID:         patientID,
		Date:              date,
		Weight:            input.Weight,
		BodyFatPercentage: input.BodyFatPercentage,
		Waist:             input.Waist,
		Hip:               input.Hip,
		Arm:               input.Arm,
		Calf:              input.Calf,
		Notes:             input.Notes,
	}

	if bmi, err := utils.CalculateBMI(patient.Height, input.Weight); err == nil {
		assessment.BMI = utils.Round2(bmi)
	}
	if bmr, err := utils.CalculateBMR(patient.Gender, input.Weight, patient.Height, patient.Age); err == nil {
		assessment.BasalMetabolicRate = utils.RoundKcal(bmr)
	}

	if err := config.DB.Create(&assessment).Error; err != nil {
		return nil, err
	}

	// keep the patient record's current weight in step with the most
	// recent assessment; a backdated record must not regress it
	var newer int64
	if err := config.DB.Model(&models.Assessment{}).
		Where("patient_id = ? AND date > ?", patientID, date).
		Count(&newer).Error; err != nil {
		return nil, err
	}
	if newer == 0 {
		if err := config.DB.Model(&models.Patient{}).
			Where("id = ?", patientID).
			Update("weight", input.Weight).Error; err != nil {
			return nil, err
		}
	}

	return &assessment, nil
}

func ListAssessments(patientID uint) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := config.DB.
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&assessments).Error
	return assessments, err
}

func LatestAssessment(patientID uint) (*models.Assessment, error) {
	var assessment models.Assessment
	err := config.DB.
		Where("patient_id = ?", patientID).
		Order("date DESC").
		First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}
