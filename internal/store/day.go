package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/deepak04iiitn/nutrilog/internal/logger"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// DayKey is the fixed key holding the current day's log.
const DayKey = "nutrilog_meals"

// dayDocument is the persisted shape: {"date": ..., "meals": {...}}.
type dayDocument struct {
	Date  string       `json:"date"`
	Meals *meal.DayLog `json:"meals"`
}

// DayStore persists the meal log for a single calendar day. The caller
// supplies the date stamp, so the store never reads the wall clock.
type DayStore struct {
	kv  KV
	log *zap.Logger
}

// NewDayStore creates a DayStore over kv.
func NewDayStore(kv KV) *DayStore {
	return &DayStore{kv: kv, log: logger.L().Named("daystore")}
}

// Load returns the persisted log when it was saved under today's stamp.
// Missing, stale, unreadable or malformed payloads all report ok=false.
func (s *DayStore) Load(ctx context.Context, today string) (meal.DayLog, bool) {
	raw, ok, err := s.kv.Get(ctx, DayKey)
	if err != nil {
		s.log.Warn("loading meals failed", zap.String("key", DayKey), zap.Error(err))
		return meal.DayLog{}, false
	}
	if !ok {
		return meal.DayLog{}, false
	}

	var doc dayDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.log.Warn("discarding malformed meals payload", zap.String("key", DayKey), zap.Error(err))
		return meal.DayLog{}, false
	}
	if doc.Meals == nil {
		s.log.Warn("discarding meals payload without meals", zap.String("key", DayKey))
		return meal.DayLog{}, false
	}
	if doc.Date != today {
		s.log.Debug("stored meals are from another day", zap.String("stored", doc.Date), zap.String("today", today))
		return meal.DayLog{}, false
	}

	return doc.Meals.Normalize(), true
}

// Save writes the whole log stamped with today. A false return means the
// write did not happen; callers keep using their in-memory log.
func (s *DayStore) Save(ctx context.Context, today string, log meal.DayLog) bool {
	data, err := json.Marshal(dayDocument{Date: today, Meals: &log})
	if err != nil {
		s.log.Warn("encoding meals failed", zap.Error(err))
		return false
	}
	if err := s.kv.Set(ctx, DayKey, string(data)); err != nil {
		s.log.Warn("saving meals failed", zap.String("key", DayKey), zap.Error(err))
		return false
	}
	return true
}
