package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the global handle at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Nutritionist{},
		&models.Patient{},
		&models.Assessment{},
		&models.DietPlan{},
		&models.Meal{},
		&models.Food{},
		&models.MealFood{},
		&models.Invitation{},
		&models.Notification{},
	))

	config.DB = db
	return db
}

// seedNutritionist creates a user + nutritionist profile and returns
// the profile and practice record.
func seedNutritionist(t *testing.T, email string) (*models.Profile, *models.Nutritionist) {
	t.Helper()

	user := models.User{Email: email, Password: "x", Name: "Dra. Ana"}
	require.NoError(t, config.DB.Create(&user).Error)

	profile := models.Profile{UserID: user.ID, Name: user.Name, Role: models.RoleNutritionist}
	require.NoError(t, config.DB.Create(&profile).Error)

	nutritionist := models.Nutritionist{ProfileID: profile.ID}
	require.NoError(t, config.DB.Create(&nutritionist).Error)

	return &profile, &nutritionist
}

func seedPatient(t *testing.T, nutritionistID *uint) *models.Patient {
	t.Helper()

	patient := models.Patient{
		NutritionistID: nutritionistID,
		Age:            30,
		Gender:         "male",
		Height:         180,
		Weight:         80,
		Email:          fmt.Sprintf("p-%s@example.com", uuid.NewString()[:8]),
		Goal:           models.GoalWeightLoss,
	}
	require.NoError(t, config.DB.Create(&patient).Error)
	return &patient
}

func seedInvitation(t *testing.T, role string, expiresAt time.Time) *models.Invitation {
	t.Helper()

	invitation := models.Invitation{
		Code:      uuid.NewString(),
		Role:      role,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, config.DB.Create(&invitation).Error)
	return &invitation
}
