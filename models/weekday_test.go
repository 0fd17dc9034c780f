package models

import "testing"

func TestParseWeekDay(t *testing.T) {
	for _, day := range WeekDays {
		got, ok := ParseWeekDay(string(day))
		if !ok || got != day {
			t.Errorf("ParseWeekDay(%q) = %v, %v", day, got, ok)
		}
	}
	if _, ok := ParseWeekDay("feriado"); ok {
		t.Error("expected unknown day to be rejected")
	}
	if _, ok := ParseWeekDay(""); ok {
		t.Error("expected empty day to be rejected")
	}
}

func TestSortDaysCanonicalOrder(t *testing.T) {
	days := []DayPlan{
		{Day: Domingo}, {Day: Quarta}, {Day: Segunda}, {Day: Sabado},
		{Day: Sexta}, {Day: Terca}, {Day: Quinta},
	}
	SortDays(days)
	for i, day := range days {
		if day.Day != WeekDays[i] {
			t.Fatalf("position %d: expected %s, got %s", i, WeekDays[i], day.Day)
		}
	}
}

func TestParsePlanGoal(t *testing.T) {
	for _, goal := range []PlanGoal{Emagrecer, Manter, Ganhar} {
		got, ok := ParsePlanGoal(string(goal))
		if !ok || got != goal {
			t.Errorf("ParsePlanGoal(%q) = %v, %v", goal, got, ok)
		}
	}
	if _, ok := ParsePlanGoal("bulking"); ok {
		t.Error("expected unknown goal to be rejected")
	}
}
