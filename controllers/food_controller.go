package controllers

import (
	"errors"
	"net/http"

	"github.com/vReis72/nutri-vita-plan-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateFood(c *gin.Context) {
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.CreateFood(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, food)
}

func SearchFoods(c *gin.Context) {
	foods, err := services.SearchFoods(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, foods)
}

func GetFood(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	food, err := services.GetFood(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	c.JSON(http.StatusOK, food)
}

func UpdateFood(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.UpdateFood(id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, food)
}

func DeleteFood(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := services.DeleteFood(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food removed"})
}
