package services

import (
	"errors"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResolvedProfile is a profile enriched with its role-specific
// associations. Expansion is best-effort: a nutritionist with no
// nutritionist row yet simply has no patients, it does not block login.
type ResolvedProfile struct {
	Profile        models.Profile       `json:"profile"`
	Nutritionist   *models.Nutritionist `json:"nutritionist,omitempty"`
	Patient        *models.Patient      `json:"patient,omitempty"`
	PatientIDs     []uint               `json:"associated_patient_ids,omitempty"`
	NutritionistID *uint                `json:"nutritionist_id,omitempty"`
}

func ExpandProfile(profile *models.Profile) *ResolvedProfile {
	resolved := &ResolvedProfile{Profile: *profile}

	switch profile.Role {
	case models.RoleNutritionist:
		var nutritionist models.Nutritionist
		err := config.DB.Where("profile_id = ?", profile.ID).First(&nutritionist).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				config.Logger.Warn("nutritionist expansion failed",
					zap.Uint("profile_id", profile.ID), zap.Error(err))
			}
			return resolved
		}
		resolved.Nutritionist = &nutritionist

		var ids []uint
		err = config.DB.Model(&models.Patient{}).
			Where("nutritionist_id = ?", nutritionist.ID).
			Pluck("id", &ids).Error
		if err != nil {
			config.Logger.Warn("patient association lookup failed",
				zap.Uint("nutritionist_id", nutritionist.ID), zap.Error(err))
			return resolved
		}
		resolved.PatientIDs = ids

	case models.RolePatient:
		var patient models.Patient
		err := config.DB.Where("profile_id = ?", profile.ID).First(&patient).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				config.Logger.Warn("patient expansion failed",
					zap.Uint("profile_id", profile.ID), zap.Error(err))
			}
			return resolved
		}
		resolved.Patient = &patient
		resolved.NutritionistID = patient.NutritionistID
	}

	// admin needs no expansion
	return resolved
}
