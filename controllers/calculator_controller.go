package controllers

import (
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/utils"

	"github.com/gin-gonic/gin"
)

type BMIInput struct {
	Height float64 `json:"height" binding:"required"` // cm
	Weight float64 `json:"weight" binding:"required"` // kg
}

func CalculateBMI(c *gin.Context) {
	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmi, err := utils.CalculateBMI(input.Height, input.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":            utils.Round2(bmi),
		"classification": utils.ClassifyBMI(bmi),
	})
}

type EnergyInput struct {
	Gender        string  `json:"gender" binding:"required"`
	Weight        float64 `json:"weight" binding:"required"` // kg
	Height        float64 `json:"height" binding:"required"` // cm
	Age           int     `json:"age" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal"`
}

// CalculateEnergy backs the calculator page: Mifflin-St Jeor BMR, TDEE
// by activity factor, and a goal-adjusted daily target. Rounding
// happens only here, so TDEE derives from the unrounded BMR.
func CalculateEnergy(c *gin.Context) {
	var input EnergyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr, err := utils.CalculateBMR(input.Gender, input.Weight, input.Height, input.Age)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tdee, err := utils.CalculateTDEE(bmr, input.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmr":             utils.RoundKcal(bmr),
		"tdee":            utils.RoundKcal(tdee),
		"target_calories": utils.RoundKcal(tdee + utils.GoalAdjustment(input.Goal)),
	})
}
