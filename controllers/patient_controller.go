package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// actingNutritionist resolves the nutritionist record for the request's
// profile, or writes the error response and returns nil.
func actingNutritionist(c *gin.Context) *uint {
	profile := middlewares.CurrentProfile(c)

	nutritionist, err := services.GetNutritionistByProfile(profile.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "nutritionist record not found"})
		return nil
	}
	return &nutritionist.ID
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func CreatePatient(c *gin.Context) {
	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nutritionistID := actingNutritionist(c)
	if nutritionistID == nil {
		return
	}

	patient, err := services.CreatePatient(nutritionistID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func ListPatients(c *gin.Context) {
	nutritionistID := actingNutritionist(c)
	if nutritionistID == nil {
		return
	}

	patients, err := services.ListPatientsByNutritionist(*nutritionistID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patients)
}

func GetPatient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	patient, err := services.GetPatient(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found", "redirect": "/patients"})
		return
	}

	c.JSON(http.StatusOK, patient)
}

func UpdatePatient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := services.UpdatePatient(id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found", "redirect": "/patients"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := services.DeletePatient(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "patient removed"})
}

type TransferInput struct {
	NewNutritionistID uint `json:"new_nutritionist_id" binding:"required"`
}

func TransferPatient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input TransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := middlewares.CurrentProfile(c)
	err := services.TransferPatient(profile.ID, id, input.NewNutritionistID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotNutritionist), errors.Is(err, services.ErrTransferDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "patient transferred"})
}

// ExportPatientAssessments streams the assessment history as .xlsx.
func ExportPatientAssessments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	file, err := services.BuildAssessmentWorkbook(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("avaliacoes-paciente-%d-%s.xlsx", id, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
