package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// SetFeeling records how the user felt after the meal in slot.
func (e *Engine) SetFeeling(ctx context.Context, log meal.DayLog, slot meal.Slot, feeling meal.Feeling) Result {
	entry := log.Entry(slot)
	entry.Feeling = feeling
	return e.commit(ctx, log, slot, entry)
}
