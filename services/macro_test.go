package services

import (
	"math"
	"testing"

	"github.com/antoniofmoraes/nutri-plan/models"
)

const eps = 1e-9

func almostEqual(a, b models.MacroSummary) bool {
	return math.Abs(a.Calories-b.Calories) < eps &&
		math.Abs(a.Protein-b.Protein) < eps &&
		math.Abs(a.Carbs-b.Carbs) < eps &&
		math.Abs(a.Fat-b.Fat) < eps
}

func mealWith(foods ...models.MealFood) models.Meal {
	return models.Meal{Name: "refeição", Foods: foods}
}

func assoc(quantity float64, food models.Food) models.MealFood {
	return models.MealFood{Quantity: quantity, Food: &food}
}

var frango = models.Food{Name: "Frango Grelhado", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}
var arroz = models.Food{Name: "Arroz Branco", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}

func TestMealMacrosScalesByQuantity(t *testing.T) {
	got := MealMacros(mealWith(assoc(150, frango)))
	want := models.MacroSummary{Calories: 247.5, Protein: 46.5, Carbs: 0, Fat: 5.4}
	if !almostEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestMealMacrosSumsAcrossFoods(t *testing.T) {
	got := MealMacros(mealWith(assoc(100, frango), assoc(200, arroz)))
	want := models.MacroSummary{
		Calories: 165 + 260,
		Protein:  31 + 5.4,
		Carbs:    0 + 56,
		Fat:      3.6 + 0.6,
	}
	if !almostEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDayMacrosEmptyDayIsZero(t *testing.T) {
	got := DayMacros(models.DayPlan{Day: models.Domingo})
	if !almostEqual(got, models.MacroSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestPlanMacrosAlwaysDividesBySeven(t *testing.T) {
	// Meals on a single day; the other six days still count in the divisor.
	plan := models.MealPlan{Days: make([]models.DayPlan, 7)}
	for i, day := range models.WeekDays {
		plan.Days[i] = models.DayPlan{Day: day}
	}
	plan.Days[0].Meals = []models.Meal{mealWith(assoc(100, frango))}

	got := PlanMacros(plan)
	want := models.MacroSummary{
		Calories: 165.0 / 7,
		Protein:  31.0 / 7,
		Carbs:    0,
		Fat:      3.6 / 7,
	}
	if !almostEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPlanMacrosRoundTrip(t *testing.T) {
	plan := models.MealPlan{Days: make([]models.DayPlan, 7)}
	for i, day := range models.WeekDays {
		plan.Days[i] = models.DayPlan{Day: day}
	}
	plan.Days[1].Meals = []models.Meal{mealWith(assoc(150, frango))}
	plan.Days[4].Meals = []models.Meal{mealWith(assoc(80, arroz), assoc(50, frango))}

	var weekTotal models.MacroSummary
	for _, day := range plan.Days {
		weekTotal = weekTotal.Add(DayMacros(day))
	}

	avg := PlanMacros(plan)
	restored := models.MacroSummary{
		Calories: avg.Calories * 7,
		Protein:  avg.Protein * 7,
		Carbs:    avg.Carbs * 7,
		Fat:      avg.Fat * 7,
	}
	if !almostEqual(restored, weekTotal) {
		t.Fatalf("average*7 = %+v, week total = %+v", restored, weekTotal)
	}
}
