package ops

import (
	"context"
	"strings"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// SetFoodText replaces the food text of slot and re-parses it. Parsing issues
// fresh ids, so every portion chosen for the previous text is dropped, even
// when the new text yields the same items.
func (e *Engine) SetFoodText(ctx context.Context, log meal.DayLog, slot meal.Slot, text string) Result {
	entry := log.Entry(slot)
	entry.FoodText = text
	entry.ParsedFoods = meal.ParseFoods(text)
	return e.commit(ctx, log, slot, entry)
}

// SetFoodFromSuggestion behaves like SetFoodText and also records non-blank
// text in the suggestion book for slot.
func (e *Engine) SetFoodFromSuggestion(ctx context.Context, log meal.DayLog, slot meal.Slot, text string) Result {
	res := e.SetFoodText(ctx, log, slot, text)
	if e.suggestions != nil && slot.Valid() && strings.TrimSpace(text) != "" {
		e.suggestions.Record(ctx, slot, text)
	}
	return res
}
