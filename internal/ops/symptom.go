package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// ToggleSymptom adds or removes symptom for slot. Choosing "none" replaces
// the set with just "none"; choosing any other symptom drops "none".
func (e *Engine) ToggleSymptom(ctx context.Context, log meal.DayLog, slot meal.Slot, symptom meal.Symptom) Result {
	entry := log.Entry(slot)

	if symptom == meal.SymptomNone {
		entry.Symptoms = []meal.Symptom{meal.SymptomNone}
		return e.commit(ctx, log, slot, entry)
	}

	next := make([]meal.Symptom, 0, len(entry.Symptoms)+1)
	found := false
	for _, s := range entry.Symptoms {
		switch s {
		case symptom:
			found = true
		case meal.SymptomNone:
		default:
			next = append(next, s)
		}
	}
	if !found {
		next = append(next, symptom)
	}
	entry.Symptoms = next
	return e.commit(ctx, log, slot, entry)
}
