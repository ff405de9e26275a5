package ops

import (
	"context"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// DayPersister loads and saves the log for a given date stamp.
// *store.DayStore satisfies it.
type DayPersister interface {
	Load(ctx context.Context, today string) (meal.DayLog, bool)
	Save(ctx context.Context, today string, log meal.DayLog) bool
}

// SuggestionRecorder receives food texts the user committed from a quick pick.
// *store.SuggestionStore satisfies it.
type SuggestionRecorder interface {
	Record(ctx context.Context, slot meal.Slot, text string) bool
}

// Result is the outcome of every engine operation.
type Result struct {
	// Meals is the new snapshot. The input log is never modified.
	Meals meal.DayLog `json:"meals"`

	// Saved is false when persisting Meals failed. Meals is still authoritative.
	Saved bool `json:"saved"`
}

// Engine applies user actions to a DayLog and persists every resulting
// snapshot. Operations never fail: unknown slots and ids are no-ops, and
// storage failures only clear Result.Saved.
type Engine struct {
	days        DayPersister
	suggestions SuggestionRecorder
	today       func() string
}

// NewEngine creates an Engine. today supplies the date stamp used for
// persistence; nil means the local wall clock. suggestions may be nil.
func NewEngine(days DayPersister, suggestions SuggestionRecorder, today func() string) *Engine {
	if today == nil {
		today = meal.Today
	}
	return &Engine{days: days, suggestions: suggestions, today: today}
}

// Today returns the date stamp the engine persists under.
func (e *Engine) Today() string {
	return e.today()
}

// Initialize returns today's persisted log, or a fresh default log.
func (e *Engine) Initialize(ctx context.Context) meal.DayLog {
	if log, ok := e.days.Load(ctx, e.today()); ok {
		return log
	}
	return meal.NewDayLog()
}

// commit swaps in the updated entry for slot and persists the new log.
func (e *Engine) commit(ctx context.Context, log meal.DayLog, slot meal.Slot, entry meal.Entry) Result {
	next := log.With(slot, entry)
	return Result{
		Meals: next,
		Saved: e.days.Save(ctx, e.today(), next),
	}
}
