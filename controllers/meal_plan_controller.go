package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniofmoraes/nutri-plan/services"
)

type MealPlanController struct {
	svc *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{svc: svc}
}

func (ctl *MealPlanController) List(c *gin.Context) {
	plans, err := ctl.svc.List(currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, plans)
}

func (ctl *MealPlanController) Get(c *gin.Context) {
	planID, ok := pathUUID(c, "planId", "Plano alimentar não encontrado")
	if !ok {
		return
	}

	plan, err := ctl.svc.Get(planID, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, plan)
}

func (ctl *MealPlanController) Create(c *gin.Context) {
	var input services.CreateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	plan, err := ctl.svc.Create(currentUserID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, plan)
}

func (ctl *MealPlanController) Update(c *gin.Context) {
	planID, ok := pathUUID(c, "planId", "Plano alimentar não encontrado")
	if !ok {
		return
	}

	var input services.UpdateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindErr(c, err)
		return
	}

	plan, err := ctl.svc.Update(planID, currentUserID(c), input)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, plan)
}

func (ctl *MealPlanController) Delete(c *gin.Context) {
	planID, ok := pathUUID(c, "planId", "Plano alimentar não encontrado")
	if !ok {
		return
	}

	if err := ctl.svc.Delete(planID, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respondMessage(c, "Plano alimentar excluído com sucesso")
}

func (ctl *MealPlanController) Macros(c *gin.Context) {
	planID, ok := pathUUID(c, "planId", "Plano alimentar não encontrado")
	if !ok {
		return
	}

	report, err := ctl.svc.Macros(planID, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, report)
}
