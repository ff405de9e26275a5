package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deepak04iiitn/nutrilog/internal/config"
	"github.com/deepak04iiitn/nutrilog/internal/errors"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
	"github.com/deepak04iiitn/nutrilog/internal/ops"
	"github.com/deepak04iiitn/nutrilog/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	session     *ops.Session
	suggestions *store.SuggestionStore
	cfg         *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(session *ops.Session, suggestions *store.SuggestionStore, cfg *config.Config) *Handlers {
	return &Handlers{session: session, suggestions: suggestions, cfg: cfg}
}

// Request types for each tool

// SlotRequest is the argument shape for tools that only address a slot.
type SlotRequest struct {
	Slot string `json:"slot"`
}

// FoodRequest represents the arguments for meal_set_food and meal_pick_suggestion.
type FoodRequest struct {
	Slot string `json:"slot"`
	Text string `json:"text"`
}

// PortionRequest represents the arguments for meal_set_portion.
type PortionRequest struct {
	Slot    string `json:"slot"`
	FoodID  string `json:"food_id"`
	Portion string `json:"portion"`
}

// FeelingRequest represents the arguments for meal_set_feeling.
type FeelingRequest struct {
	Slot    string `json:"slot"`
	Feeling string `json:"feeling"`
}

// SymptomRequest represents the arguments for meal_toggle_symptom.
type SymptomRequest struct {
	Slot    string `json:"slot"`
	Symptom string `json:"symptom"`
}

// NoteRequest represents the arguments for meal_set_note.
type NoteRequest struct {
	Slot string `json:"slot"`
	Note string `json:"note"`
}

// SuggestionListRequest represents the arguments for suggestion_list.
type SuggestionListRequest struct {
	Slot  string `json:"slot"`
	Limit int    `json:"limit,omitempty"`
}

// SuggestionListOutput is the result of suggestion_list.
type SuggestionListOutput struct {
	Slot        meal.Slot `json:"slot"`
	Suggestions []string  `json:"suggestions"`
}

// action is an engine call bound to a validated slot.
type action func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result

// apply resolves the slot and runs act through the session.
func (h *Handlers) apply(ctx context.Context, rawSlot string, act action) (*mcp.CallToolResult, error) {
	slot, err := ops.ResolveSlot(rawSlot)
	if err != nil {
		return errorResult(err), nil
	}
	engine := h.session.Engine()
	res := h.session.Apply(ctx, func(log meal.DayLog) ops.Result {
		return act(ctx, engine, log, slot)
	})
	return successResult(ops.NewView(engine.Today(), res))
}

// Handler implementations

// HandleToday handles the meal_today tool call.
func (h *Handlers) HandleToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.session.Current(ctx)
	return successResult(ops.NewView(h.session.Engine().Today(), ops.Result{Meals: log, Saved: true}))
}

// HandleToggleExpand handles the meal_toggle_expand tool call.
func (h *Handlers) HandleToggleExpand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SlotRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.ToggleExpand(ctx, log, slot)
	})
}

// HandleToggleSkip handles the meal_toggle_skip tool call.
func (h *Handlers) HandleToggleSkip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SlotRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.ToggleSkipped(ctx, log, slot)
	})
}

// HandleSetFood handles the meal_set_food tool call.
func (h *Handlers) HandleSetFood(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FoodRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.SetFoodText(ctx, log, slot, input.Text)
	})
}

// HandlePickSuggestion handles the meal_pick_suggestion tool call.
func (h *Handlers) HandlePickSuggestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FoodRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.SetFoodFromSuggestion(ctx, log, slot, input.Text)
	})
}

// HandleSetPortion handles the meal_set_portion tool call.
func (h *Handlers) HandleSetPortion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PortionRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	slot, err := ops.ResolveSlot(input.Slot)
	if err != nil {
		return errorResult(err), nil
	}
	portion, err := ops.ResolvePortion(input.Portion)
	if err != nil {
		return errorResult(err), nil
	}
	id := strings.TrimSpace(input.FoodID)
	engine := h.session.Engine()
	res, err := h.session.ApplyChecked(ctx,
		func(log meal.DayLog) error { return ops.RequireFood(log, slot, id) },
		func(log meal.DayLog) ops.Result { return engine.SetPortion(ctx, log, slot, id, portion) },
	)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(ops.NewView(engine.Today(), res))
}

// HandleSetFeeling handles the meal_set_feeling tool call.
func (h *Handlers) HandleSetFeeling(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FeelingRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	feeling, err := ops.ResolveFeeling(input.Feeling)
	if err != nil {
		return errorResult(err), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.SetFeeling(ctx, log, slot, feeling)
	})
}

// HandleToggleSymptom handles the meal_toggle_symptom tool call.
func (h *Handlers) HandleToggleSymptom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SymptomRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	symptom, err := ops.ResolveSymptom(input.Symptom)
	if err != nil {
		return errorResult(err), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.ToggleSymptom(ctx, log, slot, symptom)
	})
}

// HandleSetNote handles the meal_set_note tool call.
func (h *Handlers) HandleSetNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	return h.apply(ctx, input.Slot, func(ctx context.Context, e *ops.Engine, log meal.DayLog, slot meal.Slot) ops.Result {
		return e.SetNote(ctx, log, slot, input.Note)
	})
}

// HandleOptions handles the meal_options tool call.
func (h *Handlers) HandleOptions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(ops.AllOptions())
}

// HandleSuggestionList handles the suggestion_list tool call.
func (h *Handlers) HandleSuggestionList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SuggestionListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	slot, err := ops.ResolveSlot(input.Slot)
	if err != nil {
		return errorResult(err), nil
	}
	limit := input.Limit
	if limit <= 0 {
		limit = h.cfg.QuickPicks
	}
	return successResult(SuggestionListOutput{
		Slot:        slot,
		Suggestions: h.suggestions.QuickPicks(ctx, slot, limit),
	})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var nErr *errors.NutrilogError
	if stderrors.As(err, &nErr) {
		errorObj := map[string]any{
			"code":    nErr.Code,
			"message": nErr.Message,
			"status":  nErr.Status,
		}
		if nErr.Code != errors.ErrInternal && nErr.Details != nil {
			errorObj["details"] = nErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
