package models

import "sort"

// WeekDay is one of the seven fixed day slots of a plan.
type WeekDay string

const (
	Segunda WeekDay = "segunda"
	Terca   WeekDay = "terca"
	Quarta  WeekDay = "quarta"
	Quinta  WeekDay = "quinta"
	Sexta   WeekDay = "sexta"
	Sabado  WeekDay = "sabado"
	Domingo WeekDay = "domingo"
)

// WeekDays is the canonical weekday order. Day slots are always created and
// returned in this order.
var WeekDays = []WeekDay{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo}

var weekDayIndex = map[WeekDay]int{
	Segunda: 0, Terca: 1, Quarta: 2, Quinta: 3, Sexta: 4, Sabado: 5, Domingo: 6,
}

// ParseWeekDay validates a raw day string from a route param.
func ParseWeekDay(s string) (WeekDay, bool) {
	d := WeekDay(s)
	_, ok := weekDayIndex[d]
	return d, ok
}

// SortDays orders day slots by the canonical weekday sequence. The column is
// a plain string, so SQL ordering would be alphabetical; ordering lives here
// instead.
func SortDays(days []DayPlan) {
	sort.Slice(days, func(i, j int) bool {
		return weekDayIndex[days[i].Day] < weekDayIndex[days[j].Day]
	})
}
