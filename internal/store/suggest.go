package store

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/deepak04iiitn/nutrilog/internal/logger"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

// SuggestionKey is the fixed key holding the suggestion book.
const SuggestionKey = "nutrilog_smart_defaults"

// MaxSuggestions bounds each slot's list.
const MaxSuggestions = 10

// Book maps each slot to previously committed food texts, most recent first.
type Book map[meal.Slot][]string

// Record returns a copy of b with text prepended to slot's list, truncated to
// MaxSuggestions. Blank text and text already in the list leave the book
// unchanged; changed reports which happened.
func (b Book) Record(slot meal.Slot, text string) (next Book, changed bool) {
	text = strings.TrimSpace(text)
	next = b.clone()
	if text == "" || !slot.Valid() {
		return next, false
	}
	for _, have := range next[slot] {
		if have == text {
			return next, false
		}
	}
	list := append([]string{text}, next[slot]...)
	if len(list) > MaxSuggestions {
		list = list[:MaxSuggestions]
	}
	next[slot] = list
	return next, true
}

func (b Book) clone() Book {
	out := make(Book, len(b))
	for slot, list := range b {
		out[slot] = append([]string(nil), list...)
	}
	return out
}

// SuggestionStore persists the Book. Unlike DayStore it is never day-scoped.
type SuggestionStore struct {
	kv  KV
	log *zap.Logger
}

// NewSuggestionStore creates a SuggestionStore over kv.
func NewSuggestionStore(kv KV) *SuggestionStore {
	return &SuggestionStore{kv: kv, log: logger.L().Named("suggestions")}
}

// Load returns the stored book, or an empty one when nothing usable is stored.
func (s *SuggestionStore) Load(ctx context.Context) Book {
	raw, ok, err := s.kv.Get(ctx, SuggestionKey)
	if err != nil {
		s.log.Warn("loading suggestions failed", zap.String("key", SuggestionKey), zap.Error(err))
		return Book{}
	}
	if !ok {
		return Book{}
	}

	var stored map[string][]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Warn("discarding malformed suggestions payload", zap.String("key", SuggestionKey), zap.Error(err))
		return Book{}
	}

	book := Book{}
	for k, list := range stored {
		slot, ok := meal.ParseSlot(k)
		if !ok {
			continue
		}
		if len(list) > MaxSuggestions {
			list = list[:MaxSuggestions]
		}
		book[slot] = list
	}
	return book
}

// Save writes the whole book.
func (s *SuggestionStore) Save(ctx context.Context, book Book) bool {
	data, err := json.Marshal(book)
	if err != nil {
		s.log.Warn("encoding suggestions failed", zap.Error(err))
		return false
	}
	if err := s.kv.Set(ctx, SuggestionKey, string(data)); err != nil {
		s.log.Warn("saving suggestions failed", zap.String("key", SuggestionKey), zap.Error(err))
		return false
	}
	return true
}

// Record commits text for slot. It writes only when the book changes and
// reports false only when that write fails.
func (s *SuggestionStore) Record(ctx context.Context, slot meal.Slot, text string) bool {
	next, changed := s.Load(ctx).Record(slot, text)
	if !changed {
		return true
	}
	return s.Save(ctx, next)
}

// QuickPicks returns up to n options for slot: the user's own book entries,
// or the built-in seeds while the book is empty for that slot.
func (s *SuggestionStore) QuickPicks(ctx context.Context, slot meal.Slot, n int) []string {
	list := s.Load(ctx)[slot]
	if len(list) == 0 {
		list = meal.SeedSuggestions[slot]
	}
	if n > 0 && len(list) > n {
		list = list[:n]
	}
	return append([]string{}, list...)
}
