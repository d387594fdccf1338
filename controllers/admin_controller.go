package controllers

import (
	"errors"
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminListNutritionists(c *gin.Context) {
	nutritionists, err := services.ListNutritionists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, nutritionists)
}

func AdminGetNutritionist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	nutritionist, err := services.GetNutritionist(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "nutritionist not found"})
		return
	}

	c.JSON(http.StatusOK, nutritionist)
}

func AdminUpdateNutritionist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input services.NutritionistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nutritionist, err := services.UpdateNutritionist(id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "nutritionist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, nutritionist)
}

func AdminDeleteNutritionist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := services.DeleteNutritionist(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "nutritionist removed"})
}

// AdminListPatients sees every patient regardless of association.
func AdminListPatients(c *gin.Context) {
	patients, err := services.ListAllPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patients)
}

// AdminCreatePatient creates a placeholder record (no profile yet);
// the patient claims it at signup by email match.
func AdminCreatePatient(c *gin.Context) {
	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := services.CreatePatient(nil, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func AdminDeletePatient(c *gin.Context) {
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
