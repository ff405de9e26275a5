package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// SetNote replaces the free-text note for slot.
func (e *Engine) SetNote(ctx context.Context, log meal.DayLog, slot meal.Slot, note string) Result {
	entry := log.Entry(slot)
	entry.Note = note
	return e.commit(ctx, log, slot, entry)
}
