package models

// MacroSummary holds the four tracked macros for a meal, a day or a plan.
type MacroSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the component-wise sum of two summaries.
func (m MacroSummary) Add(o MacroSummary) MacroSummary {
	return MacroSummary{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}
