package services

import (
	"testing"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFood(t *testing.T, name string) *models.Food {
	t.Helper()
	food, err := CreateFood(FoodInput{Name: name, Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3})
	require.NoError(t, err)
	return food
}

func TestCreateDietPlanWithMeals(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	patient := seedPatient(t, &n1.ID)
	rice := seedFood(t, "Arroz branco")
	chicken := seedFood(t, "Frango grelhado")

	plan, err := CreateDietPlan(patient.ID, DietPlanRequest{
		Name:          "Plano de emagrecimento",
		TotalCalories: 1800,
		CarbsPct:      50,
		ProteinPct:    30,
		FatPct:        20,
		Meals: []MealRequest{
			{Name: "Café da manhã", Time: "08:00", Items: []MealFoodRequest{
				{FoodID: rice.ID, Quantity: 100, Unit: "g"},
			}},
			{Name: "Almoço", Time: "12:30", Items: []MealFoodRequest{
				{FoodID: rice.ID, Quantity: 150, Unit: "g"},
				{FoodID: chicken.ID, Quantity: 120, Unit: "g"},
			}},
		},
	})
	require.NoError(t, err)

	require.Len(t, plan.Meals, 2)
	// meals come back in submitted order
	assert.Equal(t, "Café da manhã", plan.Meals[0].Name)
	assert.Equal(t, "Almoço", plan.Meals[1].Name)
	require.Len(t, plan.Meals[1].Items, 2)
	assert.Equal(t, "Arroz branco", plan.Meals[1].Items[0].Food.Name)
}

func TestUpdateDietPlanReplacesMealTree(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	patient := seedPatient(t, &n1.ID)
	rice := seedFood(t, "Arroz branco")

	plan, err := CreateDietPlan(patient.ID, DietPlanRequest{
		Name: "v1",
		Meals: []MealRequest{
			{Name: "Café da manhã", Items: []MealFoodRequest{{FoodID: rice.ID, Quantity: 100, Unit: "g"}}},
		},
	})
	require.NoError(t, err)

	updated, err := UpdateDietPlan(patient.ID, plan.ID, DietPlanRequest{
		Name: "v2",
		Meals: []MealRequest{
			{Name: "Jantar", Items: []MealFoodRequest{{FoodID: rice.ID, Quantity: 80, Unit: "g"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Name)
	require.Len(t, updated.Meals, 1)
	assert.Equal(t, "Jantar", updated.Meals[0].Name)

	// no orphaned meals or items left behind
	var mealCount, itemCount int64
	config.DB.Model(&models.Meal{}).Count(&mealCount)
	config.DB.Model(&models.MealFood{}).Count(&itemCount)
	assert.EqualValues(t, 1, mealCount)
	assert.EqualValues(t, 1, itemCount)
}

// A plan id belonging to another patient must be unreachable through
// the write path, exactly as if the plan did not exist.
func TestUpdateDietPlanScopedToPatient(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	mine := seedPatient(t, &n1.ID)

	_, n2 := seedNutritionist(t, "n2@example.com")
	theirs := seedPatient(t, &n2.ID)
	rice := seedFood(t, "Arroz branco")

	foreign, err := CreateDietPlan(theirs.ID, DietPlanRequest{
		Name: "plano alheio",
		Meals: []MealRequest{
			{Name: "Almoço", Items: []MealFoodRequest{{FoodID: rice.ID, Quantity: 150, Unit: "g"}}},
		},
	})
	require.NoError(t, err)

	_, err = UpdateDietPlan(mine.ID, foreign.ID, DietPlanRequest{Name: "sequestrado"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the foreign plan is untouched, meal tree included
	kept, err := GetDietPlan(foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, "plano alheio", kept.Name)
	assert.Equal(t, theirs.ID, kept.PatientID)
	require.Len(t, kept.Meals, 1)
}

func TestDeleteDietPlanScopedToPatient(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	mine := seedPatient(t, &n1.ID)

	_, n2 := seedNutritionist(t, "n2@example.com")
	theirs := seedPatient(t, &n2.ID)
	rice := seedFood(t, "Arroz branco")

	foreign, err := CreateDietPlan(theirs.ID, DietPlanRequest{
		Name: "plano alheio",
		Meals: []MealRequest{
			{Name: "Lanche", Items: []MealFoodRequest{{FoodID: rice.ID, Quantity: 50, Unit: "g"}}},
		},
	})
	require.NoError(t, err)

	err = DeleteDietPlan(mine.ID, foreign.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var planCount, mealCount int64
	config.DB.Model(&models.DietPlan{}).Count(&planCount)
	config.DB.Model(&models.Meal{}).Count(&mealCount)
	assert.EqualValues(t, 1, planCount)
	assert.EqualValues(t, 1, mealCount)
}

func TestDeleteDietPlanCascades(t *testing.T) {
	setupTestDB(t)
	_, n1 := seedNutritionist(t, "n1@example.com")
	patient := seedPatient(t, &n1.ID)
	rice := seedFood(t, "Arroz branco")

	plan, err := CreateDietPlan(patient.ID, DietPlanRequest{
		Name: "descartável",
		Meals: []MealRequest{
			{Name: "Lanche", Items: []MealFoodRequest{{FoodID: rice.ID, Quantity: 50, Unit: "g"}}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, DeleteDietPlan(patient.ID, plan.ID))

	var mealCount, itemCount int64
	config.DB.Model(&models.Meal{}).Count(&mealCount)
	config.DB.Model(&models.MealFood{}).Count(&itemCount)
	assert.EqualValues(t, 0, mealCount)
	assert.EqualValues(t, 0, itemCount)
}
