package ops

import (
	"strings"

	"github.com/deepak04iiitn/nutrilog/internal/errors"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// Helpers shared by the CLI, MCP and web surfaces to turn raw user input
// into the closed vocabularies the engine takes.

// ResolveSlot validates a slot name.
func ResolveSlot(s string) (meal.Slot, error) {
	if strings.TrimSpace(s) == "" {
		return "", errors.NewInvalidRequest("slot is required")
	}
	slot, ok := meal.ParseSlot(s)
	if !ok {
		return "", errors.NewInvalidValue("slot", s, meal.SlotValues())
	}
	return slot, nil
}

// ResolvePortion validates a portion value.
func ResolvePortion(s string) (meal.Portion, error) {
	p, ok := meal.ParsePortion(s)
	if !ok {
		return "", errors.NewInvalidValue("portion", s, meal.Values(meal.Portions))
	}
	return p, nil
}

// ResolveFeeling validates a feeling value.
func ResolveFeeling(s string) (meal.Feeling, error) {
	f, ok := meal.ParseFeeling(s)
	if !ok {
		return "", errors.NewInvalidValue("feeling", s, meal.Values(meal.Feelings))
	}
	return f, nil
}

// ResolveSymptom validates a symptom value.
func ResolveSymptom(s string) (meal.Symptom, error) {
	sym, ok := meal.ParseSymptom(s)
	if !ok {
		return "", errors.NewInvalidValue("symptom", s, meal.Values(meal.Symptoms))
	}
	return sym, nil
}

// RequireFood reports NOT_FOUND when slot has no food item with id. The match
// is exact, the same one SetPortion makes.
func RequireFood(log meal.DayLog, slot meal.Slot, id string) error {
	if _, ok := log.Entry(slot).Food(id); !ok {
		return errors.NewFoodNotFound(string(slot), id)
	}
	return nil
}

// Options bundles the static option tables.
type Options struct {
	Slots    []meal.SlotInfo `json:"slots"`
	Feelings []meal.Option   `json:"feelings"`
	Symptoms []meal.Option   `json:"symptoms"`
	Portions []meal.Option   `json:"portions"`
}

// AllOptions returns the static option tables.
func AllOptions() Options {
	return Options{
		Slots:    meal.Slots,
		Feelings: meal.Feelings,
		Symptoms: meal.Symptoms,
		Portions: meal.Portions,
	}
}
