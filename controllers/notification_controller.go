package controllers

import (
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
func ListNotifications(c *gin.Context) {
	profile := middlewares.CurrentProfile(c)

	notifications, err := services.ListNotifications(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// PUT /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	profile := middlewares.CurrentProfile(c)
	if err := services.MarkNotificationRead(profile.ID, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification read"})
}
