package services

import (
	"testing"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/models"
	"github.com/antoniofmoraes/nutri-plan/testutil"
)

func TestUpdateUserEmailConflict(t *testing.T) {
	db := testutil.DB(t)
	svc := NewUserService(db, testutil.Logger(t))
	ana := testutil.SeedUser(t, db, "ana@example.com")
	testutil.SeedUser(t, db, "bia@example.com")

	taken := "bia@example.com"
	_, err := svc.Update(ana.ID, UpdateUserInput{Email: &taken})
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindConflict || e.Message != "Email já está em uso" {
		t.Fatalf("expected Conflict, got %v", err)
	}

	fresh := "ana.nova@example.com"
	updated, err := svc.Update(ana.ID, UpdateUserInput{Email: &fresh})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != fresh {
		t.Fatalf("expected email changed, got %q", updated.Email)
	}
}

func TestDeleteUserCascadesToPlans(t *testing.T) {
	db := testutil.DB(t)
	svc := NewUserService(db, testutil.Logger(t))
	planSvc := NewMealPlanService(db, testutil.Logger(t))
	ana := testutil.SeedUser(t, db, "ana@example.com")
	bia := testutil.SeedUser(t, db, "bia@example.com")

	anaPlan := createPlan(t, planSvc, ana)
	createMeal(t, db, anaPlan, models.Segunda, "Almoço")
	biaPlan := createPlan(t, planSvc, bia)

	if err := svc.Delete(ana.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var plans, days, meals int64
	db.Model(&models.MealPlan{}).Count(&plans)
	db.Model(&models.DayPlan{}).Count(&days)
	db.Model(&models.Meal{}).Count(&meals)
	if plans != 1 || days != 7 || meals != 0 {
		t.Fatalf("expected only bia's plan to survive, got plans=%d days=%d meals=%d", plans, days, meals)
	}

	if _, err := planSvc.Get(biaPlan.ID, bia.ID); err != nil {
		t.Fatalf("bia's plan should survive: %v", err)
	}
	if _, err := svc.Get(ana.ID); err == nil {
		t.Fatal("expected NotFound for deleted user")
	}
}
