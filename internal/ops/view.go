package ops

import "github.com/deepak04iiitn/nutrilog/internal/meal"

// View is the payload the CLI and MCP surfaces return after an action.
type View struct {
	Date    string       `json:"date"`
	Meals   meal.DayLog  `json:"meals"`
	Summary meal.Summary `json:"summary"`
	Saved   bool         `json:"saved"`
}

// NewView wraps an engine result for output.
func NewView(date string, res Result) View {
	return View{
		Date:    date,
		Meals:   res.Meals,
		Summary: res.Meals.Summary(),
		Saved:   res.Saved,
	}
}
