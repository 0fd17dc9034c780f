package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/models"
	"github.com/antoniofmoraes/nutri-plan/testutil"
)

func TestCreatePlanBuildsSevenDays(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")

	plan := createPlan(t, svc, user)

	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 day slots, got %d", len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.Day != models.WeekDays[i] {
			t.Errorf("day %d: expected %s, got %s", i, models.WeekDays[i], day.Day)
		}
		if len(day.Meals) != 0 {
			t.Errorf("day %s: expected no meals, got %d", day.Day, len(day.Meals))
		}
	}
}

func TestCreatePlanValidation(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")

	_, err := svc.Create(user.ID, CreateMealPlanInput{Name: "", Goal: "bulking", DailyCalories: 0})
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(e.Details) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(e.Details), e.Details)
	}

	// Invalid creation must leave nothing behind.
	var count int64
	db.Model(&models.MealPlan{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no plan rows after failed create, got %d", count)
	}
}

func TestGetPlanNotFoundBeforeForbidden(t *testing.T) {
	svc, db := newPlanService(t)
	owner := testutil.SeedUser(t, db, "ana@example.com")
	intruder := testutil.SeedUser(t, db, "bia@example.com")
	plan := createPlan(t, svc, owner)

	// Nonexistent id: NotFound even for the rightful owner.
	_, err := svc.Get(uuid.New(), owner.ID)
	if e, ok := apperr.As(err); !ok || e.Kind != apperr.KindNotFound {
		t.Fatalf("expected NotFound for missing plan, got %v", err)
	}

	// Existing plan but wrong user: Forbidden.
	_, err = svc.Get(plan.ID, intruder.ID)
	if e, ok := apperr.As(err); !ok || e.Kind != apperr.KindForbidden {
		t.Fatalf("expected Forbidden for foreign plan, got %v", err)
	}
}

func TestGetPlanIsIdempotent(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")
	plan := createPlan(t, svc, user)

	first, err := svc.Get(plan.ID, user.ID)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := svc.Get(plan.ID, user.ID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}

	if first.ID != second.ID || len(first.Days) != len(second.Days) {
		t.Fatalf("consecutive reads differ: %+v vs %+v", first, second)
	}
	for i := range first.Days {
		if first.Days[i].ID != second.Days[i].ID || first.Days[i].Day != second.Days[i].Day {
			t.Fatalf("day %d differs between reads", i)
		}
	}
}

func TestListPlansNewestFirst(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")
	other := testutil.SeedUser(t, db, "bia@example.com")

	older := createPlan(t, svc, user)
	db.Model(&models.MealPlan{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour))
	newer := createPlan(t, svc, user)
	createPlan(t, svc, other)

	plans, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans for user, got %d", len(plans))
	}
	if plans[0].ID != newer.ID || plans[1].ID != older.ID {
		t.Fatalf("expected newest first, got %v then %v", plans[0].ID, plans[1].ID)
	}
}

func TestUpdatePlanPartialPatch(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")
	plan := createPlan(t, svc, user)

	name := "Plano ajustado"
	protein := 140
	updated, err := svc.Update(plan.ID, user.ID, UpdateMealPlanInput{
		Name:         &name,
		DailyProtein: &protein,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != name {
		t.Errorf("expected name %q, got %q", name, updated.Name)
	}
	if updated.Goal != models.Emagrecer {
		t.Errorf("goal should be untouched, got %s", updated.Goal)
	}
	if updated.DailyCalories != 1800 {
		t.Errorf("calories should be untouched, got %d", updated.DailyCalories)
	}
	if updated.DailyProtein == nil || *updated.DailyProtein != 140 {
		t.Errorf("expected protein 140, got %v", updated.DailyProtein)
	}
}

func TestUpdatePlanRejectsInvalidPatch(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")
	plan := createPlan(t, svc, user)

	calories := -10
	_, err := svc.Update(plan.ID, user.ID, UpdateMealPlanInput{DailyCalories: &calories})
	if e, ok := apperr.As(err); !ok || e.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeletePlanCascades(t *testing.T) {
	svc, db := newPlanService(t)
	user := testutil.SeedUser(t, db, "ana@example.com")
	plan := createPlan(t, svc, user)
	food := testutil.SeedFood(t, db, "Frango Grelhado", 165, 31, 0, 3.6)

	meal := createMeal(t, db, plan, models.Segunda, "Almoço")
	mf := models.MealFood{MealID: meal.ID, FoodID: food.ID, Quantity: 150}
	if err := db.Create(&mf).Error; err != nil {
		t.Fatalf("create meal food: %v", err)
	}

	if err := svc.Delete(plan.ID, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, check := range []struct {
		name  string
		model interface{}
	}{
		{"meal plans", &models.MealPlan{}},
		{"day plans", &models.DayPlan{}},
		{"meals", &models.Meal{}},
		{"meal foods", &models.MealFood{}},
	} {
		var count int64
		db.Model(check.model).Count(&count)
		if count != 0 {
			t.Errorf("expected 0 %s after delete, got %d", check.name, count)
		}
	}

	// The catalog entry is referenced, never owned.
	var foods int64
	db.Model(&models.Food{}).Count(&foods)
	if foods != 1 {
		t.Errorf("food catalog should survive plan deletion, got %d rows", foods)
	}

	if _, err := svc.Get(plan.ID, user.ID); err == nil {
		t.Fatal("expected NotFound after delete")
	}
}

func TestDeletePlanForbiddenForOtherUser(t *testing.T) {
	svc, db := newPlanService(t)
	owner := testutil.SeedUser(t, db, "ana@example.com")
	intruder := testutil.SeedUser(t, db, "bia@example.com")
	plan := createPlan(t, svc, owner)

	err := svc.Delete(plan.ID, intruder.ID)
	if e, ok := apperr.As(err); !ok || e.Kind != apperr.KindForbidden {
		t.Fatalf("expected Forbidden, got %v", err)
	}

	if _, err := svc.Get(plan.ID, owner.ID); err != nil {
		t.Fatalf("plan should survive a forbidden delete: %v", err)
	}
}
