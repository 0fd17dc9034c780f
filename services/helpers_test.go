package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/models"
	"github.com/antoniofmoraes/nutri-plan/testutil"
)

func newPlanService(t *testing.T) (*MealPlanService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	return NewMealPlanService(db, testutil.Logger(t)), db
}

func createPlan(t *testing.T, svc *MealPlanService, user *models.User) *models.MealPlan {
	t.Helper()
	plan, err := svc.Create(user.ID, CreateMealPlanInput{
		Name:          "Plano de corte",
		Goal:          "emagrecer",
		DailyCalories: 1800,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	return plan
}

func qty(v float64) *float64 { return &v }

func createMeal(t *testing.T, db *gorm.DB, plan *models.MealPlan, day models.WeekDay, name string) *models.Meal {
	t.Helper()
	var slot models.DayPlan
	if err := db.First(&slot, "meal_plan_id = ? AND day = ?", plan.ID, day).Error; err != nil {
		t.Fatalf("find day slot: %v", err)
	}
	meal := &models.Meal{DayPlanID: slot.ID, Name: name}
	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("create meal: %v", err)
	}
	return meal
}
