package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// SetPortion sets the portion of the food item with the given id in slot.
// An unknown id leaves the log as it was; it is persisted regardless.
func (e *Engine) SetPortion(ctx context.Context, log meal.DayLog, slot meal.Slot, foodID string, portion meal.Portion) Result {
	entry := log.Entry(slot)
	for i := range entry.ParsedFoods {
		if entry.ParsedFoods[i].ID == foodID {
			entry.ParsedFoods[i].Portion = portion
		}
	}
	return e.commit(ctx, log, slot, entry)
}
