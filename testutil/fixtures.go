package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/models"
)

func SeedUser(tb testing.TB, db *gorm.DB, email string) *models.User {
	tb.Helper()
	u := &models.User{
		Name:     "Teste",
		Email:    email,
		Password: "hash",
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedFood(tb testing.TB, db *gorm.DB, name string, calories, protein, carbs, fat float64) *models.Food {
	tb.Helper()
	f := &models.Food{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Portion:  "100g",
	}
	if err := db.Create(f).Error; err != nil {
		tb.Fatalf("seed food: %v", err)
	}
	return f
}
