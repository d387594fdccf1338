package services

import (
	"errors"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

// RegisterUser creates the auth user and its profile in one
// transaction. With an invitation code the profile takes the
// invitation's role and the code is redeemed atomically alongside —
// a partial signup can never consume a code.
func RegisterUser(email, password, name, invitationCode string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		user = models.User{Email: email, Password: hashedPassword, Name: name}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		role := models.RolePatient
		if invitationCode != "" {
			invitation, err := redeemInvitation(tx, invitationCode, user.ID)
			if err != nil {
				return err
			}
			role = invitation.Role
		}

		profile := models.Profile{UserID: user.ID, Name: name, Role: role}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		// Give nutritionists their practice record right away so the
		// expander finds it on first login.
		if role == models.RoleNutritionist {
			if err := tx.Create(&models.Nutritionist{ProfileID: profile.ID}).Error; err != nil {
				return err
			}
		}

		// Claim any placeholder patient record an admin pre-created
		// for this email; otherwise start a fresh one.
		if role == models.RolePatient {
			var patient models.Patient
			err := tx.Where("email = ? AND profile_id IS NULL", email).First(&patient).Error
			switch {
			case err == nil:
				patient.ProfileID = &profile.ID
				if err := tx.Save(&patient).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				patient = models.Patient{ProfileID: &profile.ID, Email: email, Goal: models.GoalMaintenance}
				if err := tx.Create(&patient).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", nil, errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// RefreshToken reissues a session token for an already-authenticated user.
func RefreshToken(userID uint) (string, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return "", errors.New("user not found")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
