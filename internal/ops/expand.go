package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// ToggleExpand flips the disclosure state of slot.
func (e *Engine) ToggleExpand(ctx context.Context, log meal.DayLog, slot meal.Slot) Result {
	entry := log.Entry(slot)
	entry.IsExpanded = !entry.IsExpanded
	return e.commit(ctx, log, slot, entry)
}
