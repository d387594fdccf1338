package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrProfileResolution covers every profile-fetch failure that is NOT
// the "no rows" case. Callers must treat it as "cannot determine role"
// while keeping the session valid, so the UI can retry instead of
// bouncing to login.
var ErrProfileResolution = errors.New("profile resolution failed")

// ResolveProfile fetches the profile for an authenticated user. A
// missing row is not an error: signup creates the auth user and the
// profile in separate steps, so a first request can arrive before the
// profile exists. In that case a default patient profile is
// synthesized from the auth metadata and persisted best-effort.
func ResolveProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrProfileResolution, err)
	}

	fallback := models.Profile{
		UserID: userID,
		Name:   fallbackName(userID),
		Role:   models.RolePatient,
	}
	if err := config.DB.Create(&fallback).Error; err != nil {
		// Persisting is opportunistic; the synthesized value is still
		// good for this request.
		config.Logger.Warn("could not persist fallback profile",
			zap.Uint("user_id", userID), zap.Error(err))
	}
	return &fallback, nil
}

func fallbackName(userID uint) string {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return "Usuário"
	}
	if user.Name != "" {
		return user.Name
	}
	if at := strings.Index(user.Email, "@"); at > 0 {
		return user.Email[:at]
	}
	return "Usuário"
}

type ProfileUpdateInput struct {
	Name        string `json:"name"`
	PhotoBase64 string `json:"photo"`
}

// UpdateProfile rewrites name and photo only. Role is immutable after
// creation; nothing here or elsewhere accepts one.
func UpdateProfile(userID uint, input ProfileUpdateInput) (*models.Profile, error) {
	var profile models.Profile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, errors.New("profile not found")
	}

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.PhotoBase64 != "" {
		url, err := utils.UploadBase64PhotoToS3(input.PhotoBase64, fmt.Sprintf("user-%d", userID))
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %v", err)
		}
		profile.PhotoURL = url
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
