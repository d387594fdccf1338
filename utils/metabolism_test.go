package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMRMale(t *testing.T) {
	bmr, err := CalculateBMR("male", 80, 180, 30)
	require.NoError(t, err)
	// 10*80 + 6.25*180 - 5*30 + 5
	assert.InDelta(t, 1912.5, bmr, 0.001)
	assert.Equal(t, 1913.0, RoundKcal(bmr))
}

func TestCalculateBMRFemale(t *testing.T) {
	bmr, err := CalculateBMR("female", 60, 165, 25)
	require.NoError(t, err)
	// 10*60 + 6.25*165 - 5*25 - 161
	assert.InDelta(t, 1345.25, bmr, 0.001)
}

func TestCalculateBMRPortugueseGender(t *testing.T) {
	masc, err := CalculateBMR("masculino", 80, 180, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1912.5, masc, 0.001)

	_, err = CalculateBMR("other", 80, 180, 30)
	assert.Error(t, err)
}

func TestCalculateTDEE(t *testing.T) {
	bmr, err := CalculateBMR("male", 80, 180, 30)
	require.NoError(t, err)

	// TDEE derives from the unrounded BMR: 1912.5 * 1.2 = 2295 exactly
	tdee, err := CalculateTDEE(bmr, "sedentary")
	require.NoError(t, err)
	assert.Equal(t, 2295.0, RoundKcal(tdee))

	_, err = CalculateTDEE(bmr, "heroic")
	assert.Error(t, err)
}

func TestGoalAdjustment(t *testing.T) {
	assert.Equal(t, -500.0, GoalAdjustment("weight_loss"))
	assert.Equal(t, 500.0, GoalAdjustment("weight_gain"))
	assert.Equal(t, 0.0, GoalAdjustment("maintenance"))
}
