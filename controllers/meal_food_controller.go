package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/services"
)

type MealFoodController struct {
	svc *services.MealFoodService
}

func NewMealFoodController(svc *services.MealFoodService) *MealFoodController {
	return &MealFoodController{svc: svc}
}

func (ctl *MealFoodController) List(c *gin.Context) {
	mealID, ok := pathUUID(c, "mealId", "Refeição não encontrada")
	if !ok {
		return
	}

	foods, err := ctl.svc.List(mealID, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, foods)
}

func (ctl *MealFoodController) Add(c *gin.Context) {
	mealID, ok := pathUUID(c, "mealId", "Refeição não encontrada")
	if !ok {
		return
	}

	var input services.AddFoodToMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	mf, err := ctl.svc.Add(mealID, currentUserID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, mf)
}

func (ctl *MealFoodController) UpdateQuantity(c *gin.Context) {
	mealID, ok := pathUUID(c, "mealId", "Refeição não encontrada")
	if !ok {
		return
	}
	foodID, ok := pathUUID(c, "foodId", "Alimento não está na refeição")
	if !ok {
		return
	}

	var input struct {
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	mf, err := ctl.svc.UpdateQuantity(mealID, foodID, currentUserID(c), input.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, mf)
}

func (ctl *MealFoodController) Remove(c *gin.Context) {
	mealID, ok := pathUUID(c, "mealId", "Refeição não encontrada")
	if !ok {
		return
	}
	foodID, ok := pathUUID(c, "foodId", "Alimento não está na refeição")
	if !ok {
		return
	}

	if err := ctl.svc.Remove(mealID, foodID, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respondMessage(c, "Alimento removido da refeição")
}
