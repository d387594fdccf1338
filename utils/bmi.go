package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

// ClassifyBMI returns the pt-BR class label shown on the dashboard.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi < 25.0:
		return "Peso normal"
	case bmi < 30.0:
		return "Sobrepeso"
	case bmi < 35.0:
		return "Obesidade grau I"
	case bmi < 40.0:
		return "Obesidade grau II"
	default:
		return "Obesidade grau III"
	}
}

// Round2 applies the two-decimal display rule.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
