package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// ToggleSkipped flips the skipped flag of slot. Marking a meal skipped clears
// its food, feeling, symptoms and note; unmarking it restores nothing.
func (e *Engine) ToggleSkipped(ctx context.Context, log meal.DayLog, slot meal.Slot) Result {
	entry := log.Entry(slot)
	entry.IsSkipped = !entry.IsSkipped
	if entry.IsSkipped {
		entry.FoodText = ""
		entry.ParsedFoods = []meal.FoodItem{}
		entry.Feeling = ""
		entry.Symptoms = []meal.Symptom{}
		entry.Note = ""
	}
	return e.commit(ctx, log, slot, entry)
}
