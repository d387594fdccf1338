package controllers

import (
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
)

// Me returns the resolved profile plus its role-specific associations,
// the payload every shell renders from.
func Me(c *gin.Context) {
	profile := middlewares.CurrentProfile(c)

	resolved := services.ExpandProfile(profile)
	c.JSON(http.StatusOK, resolved)
}

func UpdateMe(c *gin.Context) {
	profile := middlewares.CurrentProfile(c)

	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := services.UpdateProfile(profile.UserID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}
