package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
)

type MealService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealService(db *gorm.DB, log *logger.Logger) *MealService {
	return &MealService{db: db, log: log.With("service", "MealService")}
}

type CreateMealInput struct {
	Name string  `json:"name"`
	Time *string `json:"time"`
}

func (in CreateMealInput) validate() error {
	if in.Name == "" {
		return apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	return nil
}

type UpdateMealInput struct {
	Name *string `json:"name"`
	Time *string `json:"time"`
}

func (in UpdateMealInput) validate() error {
	if in.Name != nil && *in.Name == "" {
		return apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	return nil
}

// findDayPlan resolves the day slot of a plan the acting user owns. The
// seven-slot invariant should make a miss unreachable, but the slot is still
// checked.
func (s *MealService) findDayPlan(planID uuid.UUID, day models.WeekDay, userID uuid.UUID) (*models.DayPlan, error) {
	if _, err := ownedPlan(s.db, planID, userID); err != nil {
		return nil, err
	}

	var slot models.DayPlan
	err := s.db.First(&slot, "meal_plan_id = ? AND day = ?", planID, day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Dia não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// ListForDay returns the meals of one day slot, foods included.
func (s *MealService) ListForDay(planID uuid.UUID, day models.WeekDay, userID uuid.UUID) ([]models.Meal, error) {
	slot, err := s.findDayPlan(planID, day, userID)
	if err != nil {
		return nil, err
	}

	var meals []models.Meal
	err = s.db.
		Preload("Foods.Food").
		Where("day_plan_id = ?", slot.ID).
		Order("created_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *MealService) Create(planID uuid.UUID, day models.WeekDay, userID uuid.UUID, in CreateMealInput) (*models.Meal, error) {
	slot, err := s.findDayPlan(planID, day, userID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	meal := models.Meal{DayPlanID: slot.ID, Name: in.Name, Time: in.Time}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	s.log.Info("meal created", "mealId", meal.ID, "planId", planID, "day", day)
	return &meal, nil
}

func (s *MealService) Update(mealID, userID uuid.UUID, in UpdateMealInput) (*models.Meal, error) {
	meal, err := ownedMeal(s.db, mealID, userID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.Name != nil {
		meal.Name = *in.Name
	}
	if in.Time != nil {
		meal.Time = in.Time
	}
	meal.DayPlan = nil
	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(mealID, userID uuid.UUID) error {
	if _, err := ownedMeal(s.db, mealID, userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", mealID).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, "id = ?", mealID).Error
	})
}
