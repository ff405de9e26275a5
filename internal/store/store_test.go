package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepak04iiitn/nutrilog/internal/db"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

const (
	today     = "Thu Oct 15 2026"
	yesterday = "Wed Oct 14 2026"
)

// brokenKV fails every call, standing in for disabled or full storage.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (brokenKV) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func sampleLog() meal.DayLog {
	d := meal.NewDayLog()
	d.Breakfast.IsExpanded = true
	d.Breakfast.FoodText = "idli, sambar"
	d.Breakfast.ParsedFoods = meal.ParseFoods(d.Breakfast.FoodText)
	d.Breakfast.ParsedFoods[1].Portion = meal.PortionMedium
	d.Breakfast.Feeling = meal.FeelingLight
	d.Breakfast.Symptoms = []meal.Symptom{meal.SymptomBloating, meal.SymptomReflux}
	d.Breakfast.Note = "ate *late*"
	d.Lunch.IsSkipped = true
	return d
}

func kvBackends(t *testing.T) map[string]KV {
	t.Helper()
	database, err := db.Init(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return map[string]KV{
		"memory": NewMemoryKV(),
		"sqlite": db.NewKV(database),
	}
}

func TestDayStore_RoundTrip(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := NewDayStore(kv)
			log := sampleLog()

			require.True(t, s.Save(ctx, today, log))
			got, ok := s.Load(ctx, today)
			require.True(t, ok)
			require.Equal(t, log, got)
		})
	}
}

func TestDayStore_EmptyIsAbsent(t *testing.T) {
	_, ok := NewDayStore(NewMemoryKV()).Load(context.Background(), today)
	require.False(t, ok)
}

func TestDayStore_Rollover(t *testing.T) {
	ctx := context.Background()
	s := NewDayStore(NewMemoryKV())

	require.True(t, s.Save(ctx, yesterday, sampleLog()))
	_, ok := s.Load(ctx, today)
	require.False(t, ok)

	_, ok = s.Load(ctx, yesterday)
	require.True(t, ok)
}

func TestDayStore_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{not json"},
		{"wrong type", `[1,2,3]`},
		{"missing meals", `{"date":"Thu Oct 15 2026"}`},
		{"null meals", `{"date":"Thu Oct 15 2026","meals":null}`},
		{"meals wrong shape", `{"date":"Thu Oct 15 2026","meals":"breakfast"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(ctx, DayKey, tt.payload))

			_, ok := NewDayStore(kv).Load(ctx, today)
			require.False(t, ok)
		})
	}
}

func TestDayStore_PartialPayloadNormalized(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DayKey, `{"date":"Thu Oct 15 2026","meals":{"dinner":{"foodText":"dal","parsedFoods":null}}}`))

	got, ok := NewDayStore(kv).Load(ctx, today)
	require.True(t, ok)
	require.Equal(t, "dal", got.Dinner.FoodText)
	require.NotNil(t, got.Dinner.ParsedFoods)
	require.NotNil(t, got.Breakfast.Symptoms)
}

func TestDayStore_StorageFailure(t *testing.T) {
	ctx := context.Background()
	s := NewDayStore(brokenKV{})

	require.False(t, s.Save(ctx, today, sampleLog()))
	_, ok := s.Load(ctx, today)
	require.False(t, ok)
}

func TestDayStore_PersistedShape(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.True(t, NewDayStore(kv).Save(ctx, today, meal.NewDayLog()))

	raw, ok, err := kv.Get(ctx, DayKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{
		"date": "Thu Oct 15 2026",
		"meals": {
			"breakfast": {"isExpanded":false,"isSkipped":false,"foodText":"","parsedFoods":[],"feeling":"","symptoms":[],"note":""},
			"lunch":     {"isExpanded":false,"isSkipped":false,"foodText":"","parsedFoods":[],"feeling":"","symptoms":[],"note":""},
			"dinner":    {"isExpanded":false,"isSkipped":false,"foodText":"","parsedFoods":[],"feeling":"","symptoms":[],"note":""},
			"snacks":    {"isExpanded":false,"isSkipped":false,"foodText":"","parsedFoods":[],"feeling":"","symptoms":[],"note":""}
		}
	}`, raw)
}
