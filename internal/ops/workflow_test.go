package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepak04iiitn/nutrilog/internal/db"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
	"github.com/deepak04iiitn/nutrilog/internal/store"
)

// TestBreakfastPortionWorkflow walks a breakfast entry through
// parse → portion → re-edit and checks the portion is dropped on re-edit.
func TestBreakfastPortionWorkflow(t *testing.T) {
	database, err := db.Init(t.TempDir())
	require.NoError(t, err)
	defer database.Close()

	kv := db.NewKV(database)
	engine := NewEngine(store.NewDayStore(kv), store.NewSuggestionStore(kv), func() string { return today })
	ctx := context.Background()

	// 1. Start from default state
	log := engine.Initialize(ctx)
	require.Equal(t, meal.NewDayLog(), log)

	// 2. Enter three foods
	res := engine.SetFoodText(ctx, log, meal.Breakfast, "idli, sambar, chutney")
	require.True(t, res.Saved)
	foods := res.Meals.Breakfast.ParsedFoods
	require.Len(t, foods, 3)
	require.Equal(t, "idli", foods[0].Name)
	require.Equal(t, "sambar", foods[1].Name)
	require.Equal(t, "chutney", foods[2].Name)
	for _, f := range foods {
		require.Empty(t, f.Portion)
	}

	// 3. Tag sambar as medium
	res = engine.SetPortion(ctx, res.Meals, meal.Breakfast, foods[1].ID, meal.PortionMedium)
	foods = res.Meals.Breakfast.ParsedFoods
	require.Empty(t, foods[0].Portion)
	require.Equal(t, meal.PortionMedium, foods[1].Portion)
	require.Empty(t, foods[2].Portion)

	// 4. Edit the text; all items are fresh
	res = engine.SetFoodText(ctx, res.Meals, meal.Breakfast, "idli, sambar")
	require.Len(t, res.Meals.Breakfast.ParsedFoods, 2)
	for _, f := range res.Meals.Breakfast.ParsedFoods {
		require.Empty(t, f.Portion)
	}

	// 5. A fresh engine over the same database sees the same log
	reopened := NewEngine(store.NewDayStore(kv), nil, func() string { return today })
	require.Equal(t, res.Meals, reopened.Initialize(ctx))
}

// TestSkipLunchWorkflow skips a populated lunch and unskips it.
func TestSkipLunchWorkflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	log := f.engine.SetFoodText(ctx, f.engine.Initialize(ctx), meal.Lunch, "rajma chawal, curd").Meals
	log = f.engine.SetNote(ctx, log, meal.Lunch, "office canteen").Meals

	log = f.engine.ToggleSkipped(ctx, log, meal.Lunch).Meals
	require.True(t, log.Lunch.IsSkipped)
	require.Empty(t, log.Lunch.FoodText)
	require.Empty(t, log.Lunch.ParsedFoods)
	require.Empty(t, log.Lunch.Note)

	log = f.engine.ToggleSkipped(ctx, log, meal.Lunch).Meals
	require.False(t, log.Lunch.IsSkipped)
	require.Empty(t, log.Lunch.FoodText)
	require.Empty(t, log.Lunch.Note)

	require.Equal(t, log, f.persisted(t))
}
