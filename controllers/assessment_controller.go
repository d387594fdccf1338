package controllers

import (
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/services"
	"github.com/vReis72/nutri-vita-plan-sub000/utils"

	"github.com/gin-gonic/gin"
)

func CreateAssessment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input services.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := services.CreateAssessment(id, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

func ListAssessments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	assessments, err := services.ListAssessments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assessments)
}

// ownPatient resolves the patient record of a patient-role session, or
// writes the degraded "no record yet" response and returns nil.
func ownPatient(c *gin.Context) *services.ResolvedProfile {
	profile := middlewares.CurrentProfile(c)
	resolved := services.ExpandProfile(profile)
	if resolved.Patient == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no patient record yet"})
		return nil
	}
	return resolved
}

// MyAssessments backs the patient's own assessment history page.
func MyAssessments(c *gin.Context) {
	resolved := ownPatient(c)
	if resolved == nil {
		return
	}

	assessments, err := services.ListAssessments(resolved.Patient.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assessments)
}

// MyProgress condenses the patient's latest numbers for the progress page.
func MyProgress(c *gin.Context) {
	resolved := ownPatient(c)
	if resolved == nil {
		return
	}
	patient := resolved.Patient

	response := gin.H{
		"patient": patient,
		"goal":    patient.Goal,
	}

	if latest, err := services.LatestAssessment(patient.ID); err == nil {
		response["latest_assessment"] = latest
		response["bmi"] = latest.BMI
		response["bmi_class"] = utils.ClassifyBMI(latest.BMI)
	} else if bmi, err := utils.CalculateBMI(patient.Height, patient.Weight); err == nil {
		response["bmi"] = utils.Round2(bmi)
		response["bmi_class"] = utils.ClassifyBMI(bmi)
	}

	if plans, err := services.ListDietPlansByPatient(patient.ID); err == nil && len(plans) > 0 {
		response["current_plan"] = plans[0]
	}

	c.JSON(http.StatusOK, response)
}

// MyPatientProfile backs the patient's own profile page.
func MyPatientProfile(c *gin.Context) {
	resolved := ownPatient(c)
	if resolved == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         resolved.Profile,
		"patient":         resolved.Patient,
		"nutritionist_id": resolved.NutritionistID,
	})
}
