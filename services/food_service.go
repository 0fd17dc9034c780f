package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
)

// FoodService is plain CRUD over the shared catalog. Foods belong to no user.
type FoodService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFoodService(db *gorm.DB, log *logger.Logger) *FoodService {
	return &FoodService{db: db, log: log.With("service", "FoodService")}
}

type CreateFoodInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Portion  string  `json:"portion"`
}

func (in CreateFoodInput) validate() error {
	var details []apperr.FieldError
	if in.Name == "" {
		details = append(details, apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	if in.Calories < 0 {
		details = append(details, apperr.FieldError{Field: "calories", Message: "Calorias deve ser positivo"})
	}
	if in.Protein < 0 {
		details = append(details, apperr.FieldError{Field: "protein", Message: "Proteína deve ser positivo"})
	}
	if in.Carbs < 0 {
		details = append(details, apperr.FieldError{Field: "carbs", Message: "Carboidratos deve ser positivo"})
	}
	if in.Fat < 0 {
		details = append(details, apperr.FieldError{Field: "fat", Message: "Gordura deve ser positivo"})
	}
	if len(details) > 0 {
		return apperr.Validation("Dados inválidos", details...)
	}
	return nil
}

type UpdateFoodInput struct {
	Name     *string  `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Portion  *string  `json:"portion"`
}

func (in UpdateFoodInput) validate() error {
	var details []apperr.FieldError
	if in.Name != nil && *in.Name == "" {
		details = append(details, apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	if in.Calories != nil && *in.Calories < 0 {
		details = append(details, apperr.FieldError{Field: "calories", Message: "Calorias deve ser positivo"})
	}
	if in.Protein != nil && *in.Protein < 0 {
		details = append(details, apperr.FieldError{Field: "protein", Message: "Proteína deve ser positivo"})
	}
	if in.Carbs != nil && *in.Carbs < 0 {
		details = append(details, apperr.FieldError{Field: "carbs", Message: "Carboidratos deve ser positivo"})
	}
	if in.Fat != nil && *in.Fat < 0 {
		details = append(details, apperr.FieldError{Field: "fat", Message: "Gordura deve ser positivo"})
	}
	if len(details) > 0 {
		return apperr.Validation("Dados inválidos", details...)
	}
	return nil
}

// List returns the catalog ordered by name. When search is given it filters
// by case-insensitive substring match; LOWER/LIKE keeps the query portable
// across postgres and the sqlite test database.
func (s *FoodService) List(search string) ([]models.Food, error) {
	foods := []models.Food{}
	q := s.db.Order("name ASC")
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := q.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodService) Get(foodID uuid.UUID) (*models.Food, error) {
	var food models.Food
	err := s.db.First(&food, "id = ?", foodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Alimento não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Create(in CreateFoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	portion := in.Portion
	if portion == "" {
		portion = "100g"
	}
	food := models.Food{
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Portion:  portion,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	s.log.Info("food created", "foodId", food.ID, "name", food.Name)
	return &food, nil
}

func (s *FoodService) Update(foodID uuid.UUID, in UpdateFoodInput) (*models.Food, error) {
	food, err := s.Get(foodID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.Name != nil {
		food.Name = *in.Name
	}
	if in.Calories != nil {
		food.Calories = *in.Calories
	}
	if in.Protein != nil {
		food.Protein = *in.Protein
	}
	if in.Carbs != nil {
		food.Carbs = *in.Carbs
	}
	if in.Fat != nil {
		food.Fat = *in.Fat
	}
	if in.Portion != nil {
		food.Portion = *in.Portion
	}

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes a catalog food and detaches it from every meal that uses
// it.
func (s *FoodService) Delete(foodID uuid.UUID) error {
	if _, err := s.Get(foodID); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", foodID).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Food{}, "id = ?", foodID).Error
	})
}
