package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, Round2(bmi), 0.001)
	assert.Equal(t, "Peso normal", ClassifyBMI(bmi))
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	_, err := CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(175, -5)
	assert.Error(t, err)

	// implausible ranges
	_, err = CalculateBMI(30, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(175, 500)
	assert.Error(t, err)
}

func TestClassifyBMI(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Abaixo do peso"},
		{18.5, "Peso normal"},
		{24.9, "Peso normal"},
		{25.0, "Sobrepeso"},
		{29.9, "Sobrepeso"},
		{30.0, "Obesidade grau I"},
		{35.0, "Obesidade grau II"},
		{40.0, "Obesidade grau III"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyBMI(tc.bmi), "bmi=%v", tc.bmi)
	}
}
