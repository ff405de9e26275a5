package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deepak04iiitn/nutrilog/internal/config"
	"github.com/deepak04iiitn/nutrilog/internal/errors"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
	"github.com/deepak04iiitn/nutrilog/internal/ops"
	"github.com/deepak04iiitn/nutrilog/internal/store"
)

// actionNames lists the card actions accepted by POST /meals/{slot}/{action}.
var actionNames = []string{"expand", "skip", "food", "pick", "portion", "feeling", "symptom", "note"}

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	session     *ops.Session
	suggestions *store.SuggestionStore
	cfg         *config.Config
	renderer    *Renderer
	now         func() time.Time
}

// HandleToday handles GET / and renders the four meal cards.
func (h *Handlers) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.session.Current(ctx)

	cards := make([]CardData, 0, len(meal.AllSlots))
	for _, slot := range meal.AllSlots {
		cards = append(cards, h.card(ctx, slot, log.Entry(slot)))
	}

	h.renderer.renderPage(w, r, "today", TodayPageData{
		PageData: PageData{
			Title:   "Today",
			Version: h.renderer.version,
		},
		Greeting: meal.Greeting(h.now().Hour()),
		Date:     h.session.Engine().Today(),
		Summary:  log.Summary(),
		Unsaved:  r.URL.Query().Get("unsaved") == "1",
		Cards:    cards,
	})
}

// HandleAction handles POST /meals/{slot}/{action}.
func (h *Handlers) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slot, err := ops.ResolveSlot(chi.URLParam(r, "slot"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form body"))
		return
	}

	check, act, err := h.bind(ctx, r, slot, chi.URLParam(r, "action"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	res, err := h.session.ApplyChecked(ctx, check, act)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	switch {
	case wantsJSON(r):
		renderJSON(w, http.StatusOK, ops.NewView(h.session.Engine().Today(), res))
	case r.Header.Get("HX-Request") == "true":
		h.renderer.renderBlock(w, http.StatusOK, "today", "meal-card", h.card(ctx, slot, res.Meals.Entry(slot)))
	default:
		target := "/"
		if !res.Saved {
			target += "?unsaved=1"
		}
		http.Redirect(w, r, target+"#"+string(slot), http.StatusSeeOther)
	}
}

// precondition is checked against the current log right before an action runs.
type precondition func(meal.DayLog) error

// bind validates the form for action and returns the engine call to apply,
// with an optional precondition.
func (h *Handlers) bind(ctx context.Context, r *http.Request, slot meal.Slot, action string) (precondition, func(meal.DayLog) ops.Result, error) {
	e := h.session.Engine()

	switch action {
	case "expand":
		return nil, func(log meal.DayLog) ops.Result { return e.ToggleExpand(ctx, log, slot) }, nil
	case "skip":
		return nil, func(log meal.DayLog) ops.Result { return e.ToggleSkipped(ctx, log, slot) }, nil
	case "food":
		text := r.PostForm.Get("text")
		return nil, func(log meal.DayLog) ops.Result { return e.SetFoodText(ctx, log, slot, text) }, nil
	case "pick":
		text := r.PostForm.Get("text")
		return nil, func(log meal.DayLog) ops.Result { return e.SetFoodFromSuggestion(ctx, log, slot, text) }, nil
	case "portion":
		portion, err := ops.ResolvePortion(r.PostForm.Get("portion"))
		if err != nil {
			return nil, nil, err
		}
		id := strings.TrimSpace(r.PostForm.Get("food_id"))
		check := func(log meal.DayLog) error { return ops.RequireFood(log, slot, id) }
		return check, func(log meal.DayLog) ops.Result { return e.SetPortion(ctx, log, slot, id, portion) }, nil
	case "feeling":
		feeling, err := ops.ResolveFeeling(r.PostForm.Get("feeling"))
		if err != nil {
			return nil, nil, err
		}
		return nil, func(log meal.DayLog) ops.Result { return e.SetFeeling(ctx, log, slot, feeling) }, nil
	case "symptom":
		symptom, err := ops.ResolveSymptom(r.PostForm.Get("symptom"))
		if err != nil {
			return nil, nil, err
		}
		return nil, func(log meal.DayLog) ops.Result { return e.ToggleSymptom(ctx, log, slot, symptom) }, nil
	case "note":
		note := r.PostForm.Get("note")
		return nil, func(log meal.DayLog) ops.Result { return e.SetNote(ctx, log, slot, note) }, nil
	default:
		return nil, nil, errors.NewInvalidValue("action", action, actionNames)
	}
}

// HandleAPIToday handles GET /api/today.
func (h *Handlers) HandleAPIToday(w http.ResponseWriter, r *http.Request) {
	log := h.session.Current(r.Context())
	renderJSON(w, http.StatusOK, ops.NewView(h.session.Engine().Today(), ops.Result{Meals: log, Saved: true}))
}

// HandleAPISuggestions handles GET /api/suggestions/{slot}.
func (h *Handlers) HandleAPISuggestions(w http.ResponseWriter, r *http.Request) {
	slot, err := ops.ResolveSlot(chi.URLParam(r, "slot"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	limit := parseIntParam(r, "limit", h.cfg.QuickPicks)
	renderJSON(w, http.StatusOK, map[string]any{
		"slot":        slot,
		"suggestions": h.suggestions.QuickPicks(r.Context(), slot, limit),
	})
}

// card assembles the template data for one slot.
func (h *Handlers) card(ctx context.Context, slot meal.Slot, entry meal.Entry) CardData {
	info, _ := slot.Info()
	return CardData{
		Info:       info,
		Entry:      entry,
		QuickPicks: h.suggestions.QuickPicks(ctx, slot, h.cfg.QuickPicks),
		NoteHTML:   renderMarkdown(entry.Note),
		Feelings:   meal.Feelings,
		Symptoms:   meal.Symptoms,
		Portions:   meal.Portions,
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
