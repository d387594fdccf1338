package services

import (
	"strings"

	"github.com/vReis72/nutri-vita-plan-sub000/config"
	"github.com/vReis72/nutri-vita-plan-sub000/models"
)

type FoodInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func CreateFood(input FoodInput) (*models.Food, error) {
	food := models.Food{
		Name:     input.Name,
		Category: input.Category,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// SearchFoods lists the catalog, optionally filtered by name substring.
func SearchFoods(query string) ([]models.Food, error) {
	var foods []models.Food
	q := config.DB.Order("name ASC")
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	err := q.Find(&foods).Error
	return foods, err
}

func GetFood(id uint) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func UpdateFood(id uint, input FoodInput) (*models.Food, error) {
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}

	food.Name = input.Name
	food.Category = input.Category
	food.Calories = input.Calories
	food.Protein = input.Protein
	food.Carbs = input.Carbs
	food.Fat = input.Fat

	if err := config.DB.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func DeleteFood(id uint) error {
	return config.DB.Delete(&models.Food{}, id).Error
}
