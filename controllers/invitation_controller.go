package controllers

import (
	"net/http"
	"time"

	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
)

type CreateInvitationInput struct {
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email"`
	TTLHours int    `json:"ttl_hours"`
}

func CreateInvitation(c *gin.Context) {
	var input CreateInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := middlewares.CurrentProfile(c)

	invitation, err := services.CreateInvitation(
		profile.ID,
		input.Role,
		input.Email,
		time.Duration(input.TTLHours)*time.Hour,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

func ListInvitations(c *gin.Context) {
	profile := middlewares.CurrentProfile(c)

	invitations, err := services.ListInvitations(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invitations)
}
