package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a named, optionally timed grouping of foods inside one day slot.
type Meal struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DayPlanID uuid.UUID  `gorm:"type:uuid;not null;index" json:"dayPlanId"`
	Name      string     `gorm:"not null" json:"name"`
	Time      *string    `json:"time"`
	DayPlan   *DayPlan   `gorm:"foreignKey:DayPlanID" json:"-"`
	Foods     []MealFood `gorm:"foreignKey:MealID" json:"foods"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealFood links a catalog food to a meal with a quantity. A food appears at
// most once per meal; re-adding replaces the stored quantity.
type MealFood struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meal_food" json:"mealId"`
	FoodID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meal_food" json:"foodId"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Food      *Food     `gorm:"foreignKey:FoodID" json:"food"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (mf *MealFood) BeforeCreate(tx *gorm.DB) error {
	if mf.ID == uuid.Nil {
		mf.ID = uuid.New()
	}
	return nil
}
