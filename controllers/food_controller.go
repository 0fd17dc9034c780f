package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/services"
)

type FoodController struct {
	svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{svc: svc}
}

func (ctl *FoodController) List(c *gin.Context) {
	foods, err := ctl.svc.List(c.Query("search"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, foods)
}

func (ctl *FoodController) Get(c *gin.Context) {
	foodID, ok := pathUUID(c, "id", "Alimento não encontrado")
	if !ok {
		return
	}

	food, err := ctl.svc.Get(foodID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, food)
}

func (ctl *FoodController) Create(c *gin.Context) {
	var input services.CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	food, err := ctl.svc.Create(input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, food)
}

func (ctl *FoodController) Update(c *gin.Context) {
	foodID, ok := pathUUID(c, "id", "Alimento não encontrado")
	if !ok {
		return
	}

	var input services.UpdateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	food, err := ctl.svc.Update(foodID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, food)
}

func (ctl *FoodController) Delete(c *gin.Context) {
	foodID, ok := pathUUID(c, "id", "Alimento não encontrado")
	if !ok {
		return
	}

	if err := ctl.svc.Delete(foodID); err != nil {
		respondErr(c, err)
		return
	}
	respondMessage(c, "Alimento excluído com sucesso")
}
