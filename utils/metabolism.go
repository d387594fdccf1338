package utils

import (
	"errors"
	"math"
	"strings"
)

// Activity multipliers applied on top of BMR.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateBMR implements Mifflin-St Jeor. Returns the raw kcal/day
// value; callers round only at the response boundary so TDEE is not
// computed from an already-rounded BMR.
func CalculateBMR(gender string, weightKg, heightCm float64, age int) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m", "masculino":
		return base + 5, nil
	case "female", "f", "feminino":
		return base - 161, nil
	}
	return 0, errors.New("gender must be male or female")
}

func CalculateTDEE(bmr float64, activityLevel string) (float64, error) {
	factor, ok := activityFactors[strings.ToLower(strings.TrimSpace(activityLevel))]
	if !ok {
		return 0, errors.New("unknown activity level")
	}
	return bmr * factor, nil
}

// RoundKcal applies the whole-kcal display rule.
func RoundKcal(v float64) float64 {
	return math.Round(v)
}

// GoalAdjustment shifts the daily target by the patient's goal.
func GoalAdjustment(goal string) float64 {
	switch goal {
	case "weight_loss":
		return -500
	case "weight_gain":
		return 500
	default:
		return 0
	}
}
