package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
)

type MealFoodService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealFoodService(db *gorm.DB, log *logger.Logger) *MealFoodService {
	return &MealFoodService{db: db, log: log.With("service", "MealFoodService")}
}

type AddFoodToMealInput struct {
	FoodID   string   `json:"foodId"`
	Quantity *float64 `json:"quantity"`
}

func (s *MealFoodService) findAssociation(mealID, foodID uuid.UUID) (*models.MealFood, error) {
	var mf models.MealFood
	err := s.db.First(&mf, "meal_id = ? AND food_id = ?", mealID, foodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mf, nil
}

func (s *MealFoodService) reload(id uuid.UUID) (*models.MealFood, error) {
	var mf models.MealFood
	if err := s.db.Preload("Food").First(&mf, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mf, nil
}

// Add attaches a catalog food to a meal. When the food is already in the
// meal, the stored quantity is replaced with the new one; a food never
// appears twice in the same meal.
func (s *MealFoodService) Add(mealID, userID uuid.UUID, in AddFoodToMealInput) (*models.MealFood, error) {
	if _, err := ownedMeal(s.db, mealID, userID); err != nil {
		return nil, err
	}

	foodID, err := uuid.Parse(in.FoodID)
	if err != nil {
		return nil, apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "foodId", Message: "ID do alimento inválido"})
	}
	// Absent quantity defaults to one full portion basis.
	quantity := 100.0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity <= 0 {
		return nil, apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "quantity", Message: "Quantidade deve ser positivo"})
	}

	var food models.Food
	err = s.db.First(&food, "id = ?", foodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Alimento não encontrado")
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.findAssociation(mealID, foodID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity = quantity
		if err := s.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return s.reload(existing.ID)
	}

	mf := models.MealFood{MealID: mealID, FoodID: foodID, Quantity: quantity}
	if err := s.db.Create(&mf).Error; err != nil {
		return nil, err
	}
	s.log.Info("food added to meal", "mealId", mealID, "foodId", foodID)
	return s.reload(mf.ID)
}

func (s *MealFoodService) UpdateQuantity(mealID, foodID, userID uuid.UUID, quantity float64) (*models.MealFood, error) {
	if _, err := ownedMeal(s.db, mealID, userID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "quantity", Message: "Quantidade deve ser positivo"})
	}

	mf, err := s.findAssociation(mealID, foodID)
	if err != nil {
		return nil, err
	}
	if mf == nil {
		return nil, apperr.NotFound("Alimento não está na refeição")
	}

	mf.Quantity = quantity
	if err := s.db.Save(mf).Error; err != nil {
		return nil, err
	}
	return s.reload(mf.ID)
}

func (s *MealFoodService) Remove(mealID, foodID, userID uuid.UUID) error {
	if _, err := ownedMeal(s.db, mealID, userID); err != nil {
		return err
	}

	mf, err := s.findAssociation(mealID, foodID)
	if err != nil {
		return err
	}
	if mf == nil {
		return apperr.NotFound("Alimento não está na refeição")
	}
	return s.db.Delete(&models.MealFood{}, "id = ?", mf.ID).Error
}

// List returns the meal's food associations; an empty meal yields an empty
// list, not an error.
func (s *MealFoodService) List(mealID, userID uuid.UUID) ([]models.MealFood, error) {
	if _, err := ownedMeal(s.db, mealID, userID); err != nil {
		return nil, err
	}

	foods := []models.MealFood{}
	err := s.db.
		Preload("Food").
		Where("meal_id = ?", mealID).
		Order("created_at ASC").
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}
