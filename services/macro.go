package services

import (
	"github.com/google/uuid"

	"github.com/antoniofmoraes/nutri-plan/models"
)

// Macro aggregation is derived on demand from the loaded aggregate and never
// persisted. Catalog macro values are stored per 100 units of the food's base
// portion, so each association scales linearly by quantity/100.

const daysPerWeek = 7

// MealMacros sums the scaled macros of every food in the meal.
func MealMacros(meal models.Meal) models.MacroSummary {
	var total models.MacroSummary
	for _, mf := range meal.Foods {
		if mf.Food == nil {
			continue
		}
		factor := mf.Quantity / 100
		total = total.Add(models.MacroSummary{
			Calories: mf.Food.Calories * factor,
			Protein:  mf.Food.Protein * factor,
			Carbs:    mf.Food.Carbs * factor,
			Fat:      mf.Food.Fat * factor,
		})
	}
	return total
}

// DayMacros sums MealMacros over the day's meals.
func DayMacros(day models.DayPlan) models.MacroSummary {
	var total models.MacroSummary
	for _, meal := range day.Meals {
		total = total.Add(MealMacros(meal))
	}
	return total
}

// PlanMacros returns the plan's daily average: the week total divided by the
// fixed seven calendar days. Days without meals contribute zero but stay in
// the divisor.
func PlanMacros(plan models.MealPlan) models.MacroSummary {
	var total models.MacroSummary
	for _, day := range plan.Days {
		total = total.Add(DayMacros(day))
	}
	return models.MacroSummary{
		Calories: total.Calories / daysPerWeek,
		Protein:  total.Protein / daysPerWeek,
		Carbs:    total.Carbs / daysPerWeek,
		Fat:      total.Fat / daysPerWeek,
	}
}

// DayMacroReport pairs a day slot with its computed totals.
type DayMacroReport struct {
	Day    models.WeekDay      `json:"day"`
	Macros models.MacroSummary `json:"macros"`
}

// PlanMacroReport is the response shape of the plan macros endpoint.
type PlanMacroReport struct {
	Days         []DayMacroReport    `json:"days"`
	DailyAverage models.MacroSummary `json:"dailyAverage"`
}

// Macros loads a plan the user owns and computes its per-day and averaged
// totals.
func (s *MealPlanService) Macros(planID, userID uuid.UUID) (*PlanMacroReport, error) {
	plan, err := s.Get(planID, userID)
	if err != nil {
		return nil, err
	}

	report := PlanMacroReport{DailyAverage: PlanMacros(*plan)}
	for _, day := range plan.Days {
		report.Days = append(report.Days, DayMacroReport{Day: day.Day, Macros: DayMacros(day)})
	}
	return &report, nil
}
