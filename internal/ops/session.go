package ops

import (
	"context"
	"sync"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// Session owns the in-memory DayLog for one long-running client (the MCP
// server or the web UI) and serializes its writes. When the calendar day
// changes between calls, the log is re-initialized before the next action.
type Session struct {
	mu     sync.Mutex
	engine *Engine
	stamp  string
	meals  meal.DayLog
}

// NewSession initializes a session from the engine's persisted state.
func NewSession(ctx context.Context, engine *Engine) *Session {
	return &Session{
		engine: engine,
		stamp:  engine.Today(),
		meals:  engine.Initialize(ctx),
	}
}

// Engine returns the engine the session applies actions with.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Current returns the session's log for today.
func (s *Session) Current(ctx context.Context) meal.DayLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover(ctx)
	return s.meals.Clone()
}

// Apply runs action against the current log and keeps its result.
func (s *Session) Apply(ctx context.Context, action func(meal.DayLog) Result) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover(ctx)
	res := action(s.meals)
	s.meals = res.Meals
	return Result{Meals: res.Meals.Clone(), Saved: res.Saved}
}

// ApplyChecked is Apply with a precondition evaluated under the same lock.
// When check fails the log is left unchanged and its error is returned. A nil
// check always passes.
func (s *Session) ApplyChecked(ctx context.Context, check func(meal.DayLog) error, action func(meal.DayLog) Result) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover(ctx)
	if check != nil {
		if err := check(s.meals); err != nil {
			return Result{}, err
		}
	}
	res := action(s.meals)
	s.meals = res.Meals
	return Result{Meals: res.Meals.Clone(), Saved: res.Saved}, nil
}

func (s *Session) rollover(ctx context.Context) {
	if today := s.engine.Today(); today != s.stamp {
		s.stamp = today
		s.meals = s.engine.Initialize(ctx)
	}
}
