package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateDietPlan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req services.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := services.CreateDietPlan(id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func ListDietPlans(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	plans, err := services.ListDietPlansByPatient(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func planID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("planId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return 0, false
	}
	return uint(id), true
}

func UpdateDietPlan(c *gin.Context) {
	patientID, ok := paramID(c)
	if !ok {
		return
	}
	id, ok := planID(c)
	if !ok {
		return
	}

	var req services.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := services.UpdateDietPlan(patientID, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func DeleteDietPlan(c *gin.Context) {
	patientID, ok := paramID(c)
	if !ok {
		return
	}
	id, ok := planID(c)
	if !ok {
		return
	}

	if err := services.DeleteDietPlan(patientID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan removed"})
}

// MyDietPlans lists the plans of the requesting patient.
func MyDietPlans(c *gin.Context) {
	resolved := ownPatient(c)
	if resolved == nil {
		return
	}

	plans, err := services.ListDietPlansByPatient(resolved.Patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}
