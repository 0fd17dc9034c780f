package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanGoal is the user's stated objective for a plan.
type PlanGoal string

const (
	Emagrecer PlanGoal = "emagrecer"
	Manter    PlanGoal = "manter"
	Ganhar    PlanGoal = "ganhar"
)

// ParsePlanGoal validates a raw goal value from a request body.
func ParsePlanGoal(s string) (PlanGoal, bool) {
	switch g := PlanGoal(s); g {
	case Emagrecer, Manter, Ganhar:
		return g, true
	}
	return "", false
}

// MealPlan is a weekly nutrition plan owned by one user. It always carries
// exactly seven day slots, created together with the plan.
type MealPlan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name          string    `gorm:"not null" json:"name"`
	Goal          PlanGoal  `gorm:"not null" json:"goal"`
	DailyCalories int       `gorm:"not null" json:"dailyCalories"`
	DailyProtein  *int      `json:"dailyProtein"`
	DailyCarbs    *int      `json:"dailyCarbs"`
	DailyFat      *int      `json:"dailyFat"`
	Days          []DayPlan `gorm:"foreignKey:MealPlanID" json:"days"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DayPlan is one weekday slot of a plan. Its lifecycle is tied to the plan:
// users never create or delete day slots directly.
type DayPlan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealPlanID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_day" json:"mealPlanId"`
	Day        WeekDay   `gorm:"not null;uniqueIndex:idx_plan_day" json:"day"`
	MealPlan   *MealPlan `gorm:"foreignKey:MealPlanID" json:"-"`
	Meals      []Meal    `gorm:"foreignKey:DayPlanID" json:"meals"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (d *DayPlan) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
