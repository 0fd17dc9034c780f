package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/models"
)

// ownedMeal resolves a meal together with its ownership chain
// (meal -> day slot -> plan) in a single query and authorizes the acting
// user against the plan's owner. Existence is checked before ownership, so a
// missing meal is always NotFound and never Forbidden.
func ownedMeal(db *gorm.DB, mealID, userID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := db.Preload("DayPlan.MealPlan").First(&meal, "id = ?", mealID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Refeição não encontrada")
	}
	if err != nil {
		return nil, err
	}
	if meal.DayPlan == nil || meal.DayPlan.MealPlan == nil {
		return nil, apperr.NotFound("Refeição não encontrada")
	}
	if meal.DayPlan.MealPlan.UserID != userID {
		return nil, apperr.Forbidden("Acesso negado")
	}
	return &meal, nil
}

// ownedPlan resolves a plan without its nested structure and authorizes the
// acting user.
func ownedPlan(db *gorm.DB, planID, userID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := db.First(&plan, "id = ?", planID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Plano alimentar não encontrado")
	}
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, apperr.Forbidden("Acesso negado")
	}
	return &plan, nil
}
