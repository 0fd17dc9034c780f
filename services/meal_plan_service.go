package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
)

type MealPlanService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealPlanService(db *gorm.DB, log *logger.Logger) *MealPlanService {
	return &MealPlanService{db: db, log: log.With("service", "MealPlanService")}
}

type CreateMealPlanInput struct {
	Name          string `json:"name"`
	Goal          string `json:"goal"`
	DailyCalories int    `json:"dailyCalories"`
	DailyProtein  *int   `json:"dailyProtein"`
	DailyCarbs    *int   `json:"dailyCarbs"`
	DailyFat      *int   `json:"dailyFat"`
}

func (in CreateMealPlanInput) validate() error {
	var details []apperr.FieldError
	if in.Name == "" {
		details = append(details, apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	if _, ok := models.ParsePlanGoal(in.Goal); !ok {
		details = append(details, apperr.FieldError{Field: "goal", Message: "Objetivo inválido"})
	}
	if in.DailyCalories <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyCalories", Message: "Calorias diárias deve ser positivo"})
	}
	if in.DailyProtein != nil && *in.DailyProtein <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyProtein", Message: "Proteína deve ser positivo"})
	}
	if in.DailyCarbs != nil && *in.DailyCarbs <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyCarbs", Message: "Carboidratos deve ser positivo"})
	}
	if in.DailyFat != nil && *in.DailyFat <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyFat", Message: "Gordura deve ser positivo"})
	}
	if len(details) > 0 {
		return apperr.Validation("Dados inválidos", details...)
	}
	return nil
}

type UpdateMealPlanInput struct {
	Name          *string `json:"name"`
	Goal          *string `json:"goal"`
	DailyCalories *int    `json:"dailyCalories"`
	DailyProtein  *int    `json:"dailyProtein"`
	DailyCarbs    *int    `json:"dailyCarbs"`
	DailyFat      *int    `json:"dailyFat"`
}

func (in UpdateMealPlanInput) validate() error {
	var details []apperr.FieldError
	if in.Name != nil && *in.Name == "" {
		details = append(details, apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	if in.Goal != nil {
		if _, ok := models.ParsePlanGoal(*in.Goal); !ok {
			details = append(details, apperr.FieldError{Field: "goal", Message: "Objetivo inválido"})
		}
	}
	if in.DailyCalories != nil && *in.DailyCalories <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyCalories", Message: "Calorias diárias deve ser positivo"})
	}
	if in.DailyProtein != nil && *in.DailyProtein <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyProtein", Message: "Proteína deve ser positivo"})
	}
	if in.DailyCarbs != nil && *in.DailyCarbs <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyCarbs", Message: "Carboidratos deve ser positivo"})
	}
	if in.DailyFat != nil && *in.DailyFat <= 0 {
		details = append(details, apperr.FieldError{Field: "dailyFat", Message: "Gordura deve ser positivo"})
	}
	if len(details) > 0 {
		return apperr.Validation("Dados inválidos", details...)
	}
	return nil
}

// findByID loads a plan with its full nested structure, days sorted in
// canonical weekday order.
func (s *MealPlanService) findByID(planID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.
		Preload("Days.Meals.Foods.Food").
		First(&plan, "id = ?", planID).Error
	if err != nil {
		return nil, err
	}
	models.SortDays(plan.Days)
	return &plan, nil
}

// List returns the user's plans newest first, fully nested. The query is
// already scoped by user, so no per-plan ownership check is needed.
func (s *MealPlanService) List(userID uuid.UUID) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.
		Preload("Days.Meals.Foods.Food").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	for i := range plans {
		models.SortDays(plans[i].Days)
	}
	return plans, nil
}

func (s *MealPlanService) Get(planID, userID uuid.UUID) (*models.MealPlan, error) {
	if _, err := ownedPlan(s.db, planID, userID); err != nil {
		return nil, err
	}
	return s.findByID(planID)
}

// Create persists the plan together with its seven day slots. gorm runs the
// plan insert and the association inserts in one transaction, so either all
// eight rows exist or none do.
func (s *MealPlanService) Create(userID uuid.UUID, in CreateMealPlanInput) (*models.MealPlan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	goal, _ := models.ParsePlanGoal(in.Goal)
	plan := models.MealPlan{
		UserID:        userID,
		Name:          in.Name,
		Goal:          goal,
		DailyCalories: in.DailyCalories,
		DailyProtein:  in.DailyProtein,
		DailyCarbs:    in.DailyCarbs,
		DailyFat:      in.DailyFat,
	}
	for _, day := range models.WeekDays {
		plan.Days = append(plan.Days, models.DayPlan{Day: day})
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	s.log.Info("meal plan created", "planId", plan.ID, "userId", userID)
	return s.findByID(plan.ID)
}

func (s *MealPlanService) Update(planID, userID uuid.UUID, in UpdateMealPlanInput) (*models.MealPlan, error) {
	plan, err := ownedPlan(s.db, planID, userID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.Name != nil {
		plan.Name = *in.Name
	}
	if in.Goal != nil {
		goal, _ := models.ParsePlanGoal(*in.Goal)
		plan.Goal = goal
	}
	if in.DailyCalories != nil {
		plan.DailyCalories = *in.DailyCalories
	}
	if in.DailyProtein != nil {
		plan.DailyProtein = in.DailyProtein
	}
	if in.DailyCarbs != nil {
		plan.DailyCarbs = in.DailyCarbs
	}
	if in.DailyFat != nil {
		plan.DailyFat = in.DailyFat
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return s.findByID(planID)
}

func (s *MealPlanService) Delete(planID, userID uuid.UUID) error {
	if _, err := ownedPlan(s.db, planID, userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return deletePlanTx(tx, planID)
	})
	if err != nil {
		return err
	}
	s.log.Info("meal plan deleted", "planId", planID, "userId", userID)
	return nil
}

// deletePlanTx removes a plan and everything it transitively owns, bottom-up,
// inside the caller's transaction.
func deletePlanTx(tx *gorm.DB, planID uuid.UUID) error {
	dayIDs := tx.Model(&models.DayPlan{}).Select("id").Where("meal_plan_id = ?", planID)
	mealIDs := tx.Model(&models.Meal{}).Select("id").Where("day_plan_id IN (?)", dayIDs)

	if err := tx.Where("meal_id IN (?)", mealIDs).Delete(&models.MealFood{}).Error; err != nil {
		return err
	}
	if err := tx.Where("day_plan_id IN (?)", tx.Model(&models.DayPlan{}).Select("id").Where("meal_plan_id = ?", planID)).Delete(&models.Meal{}).Error; err != nil {
		return err
	}
	if err := tx.Where("meal_plan_id = ?", planID).Delete(&models.DayPlan{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.MealPlan{}, "id = ?", planID).Error; err != nil {
		return err
	}
	return nil
}
