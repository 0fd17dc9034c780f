package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/models"
	"github.com/antoniofmoraes/nutri-plan/services"
)

type MealController struct {
	svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{svc: svc}
}

// dayParams parses the planId and day route params shared by the day-scoped
// meal routes.
func dayParams(c *gin.Context) (uuid.UUID, models.WeekDay, bool) {
	planID, ok := pathUUID(c, "planId", "Plano alimentar não encontrado")
	if !ok {
		return uuid.Nil, "", false
	}

	day, ok := models.ParseWeekDay(c.Param("day"))
	if !ok {
		respondErr(c, apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "day", Message: "Dia da semana inválido"}))
		return uuid.Nil, "", false
	}
	return planID, day, true
}

func (ctl *MealController) ListForDay(c *gin.Context) {
	planID, day, ok := dayParams(c)
	if !ok {
		return
	}

	meals, err := ctl.svc.ListForDay(planID, day, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, meals)
}

func (ctl *MealController) Create(c *gin.Context) {
	planID, day, ok := dayParams(c)
	if !ok {
		return
	}

	var input services.CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	meal, err := ctl.svc.Create(planID, day, currentUserID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, meal)
}

func (ctl *MealController) Update(c *gin.Context) {
	if _, _, ok := dayParams(c); !ok {
		return
	}
	mealID, ok := pathUUID(c, "mealId", "Refeição não encontrada")
	if !ok {
		return
	}

	var input services.UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	meal, err := ctl.svc.Update(mealID, currentUserID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
	if _, _, ok := dayParams(c); !ok {
		return
	}
	mealID, ok := pathUUID(c, "mealId", "Refeição não encontrada")
	if !ok {
		return
	}

	if err := ctl.svc.Delete(mealID, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respondMessage(c, "Refeição excluída com sucesso")
}
