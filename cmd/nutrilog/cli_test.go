package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak04iiitn/nutrilog/internal/db"
	"github.com/deepak04iiitn/nutrilog/internal/errors"
	"github.com/deepak04iiitn/nutrilog/internal/ops"
)

// runCLI runs one command against dataDir and returns its stdout.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	app := newCLIApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"nutrilog", "--data-dir", dataDir}, args...))
	return out.String(), err
}

// runView runs a meal command and decodes the printed view.
func runView(t *testing.T, dataDir string, args ...string) ops.View {
	t.Helper()
	out, err := runCLI(t, dataDir, args...)
	require.NoError(t, err)
	var v ops.View
	require.NoError(t, json.Unmarshal([]byte(out), &v), "output: %s", out)
	return v
}

// errorCodeOf extracts the code from a CLI error.
func errorCodeOf(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(err.Error()), &payload), "error: %v", err)
	return payload.Error.Code
}

func TestCLIShow(t *testing.T) {
	oldNow := timeNow
	timeNow = func() time.Time { return time.Date(2026, 10, 15, 19, 0, 0, 0, time.Local) }
	defer func() { timeNow = oldNow }()

	out, err := runCLI(t, t.TempDir(), "show")
	require.NoError(t, err)

	var show ShowOutput
	require.NoError(t, json.Unmarshal([]byte(out), &show))
	assert.Equal(t, "Good evening", show.Greeting)
	assert.Equal(t, 4, show.Summary.Pending)
	assert.NotEmpty(t, show.Date)
	assert.True(t, show.Saved)
}

func TestCLIFoodAndPortion(t *testing.T) {
	dir := t.TempDir()

	v := runView(t, dir, "food", "breakfast", "idli,", "sambar")
	require.Len(t, v.Meals.Breakfast.ParsedFoods, 2)
	assert.Equal(t, "idli, sambar", v.Meals.Breakfast.FoodText)
	assert.True(t, v.Saved)

	id := v.Meals.Breakfast.ParsedFoods[1].ID
	v = runView(t, dir, "portion", "breakfast", id, "large")
	assert.EqualValues(t, "large", v.Meals.Breakfast.ParsedFoods[1].Portion)
	assert.EqualValues(t, "", v.Meals.Breakfast.ParsedFoods[0].Portion)

	v = runView(t, dir, "portion", "breakfast", " "+v.Meals.Breakfast.ParsedFoods[0].ID+" ", "small")
	assert.EqualValues(t, "small", v.Meals.Breakfast.ParsedFoods[0].Portion)

	// A fresh invocation sees the persisted day
	v = runView(t, dir, "show")
	assert.EqualValues(t, "large", v.Meals.Breakfast.ParsedFoods[1].Portion)
	assert.Equal(t, 1, v.Summary.Logged)
}

func TestCLISkipClearsEntry(t *testing.T) {
	dir := t.TempDir()

	runView(t, dir, "food", "lunch", "rice")
	runView(t, dir, "feeling", "lunch", "heavy")
	v := runView(t, dir, "skip", "lunch")

	assert.True(t, v.Meals.Lunch.IsSkipped)
	assert.Empty(t, v.Meals.Lunch.FoodText)
	assert.Empty(t, v.Meals.Lunch.Feeling)
	assert.Equal(t, 1, v.Summary.Skipped)

	v = runView(t, dir, "skip", "lunch")
	assert.False(t, v.Meals.Lunch.IsSkipped)
}

func TestCLISymptomNoteExpand(t *testing.T) {
	dir := t.TempDir()

	runView(t, dir, "symptom", "dinner", "bloating")
	v := runView(t, dir, "symptom", "dinner", "none")
	require.Len(t, v.Meals.Dinner.Symptoms, 1)
	assert.EqualValues(t, "none", v.Meals.Dinner.Symptoms[0])

	v = runView(t, dir, "note", "dinner", "ate", "late")
	assert.Equal(t, "ate late", v.Meals.Dinner.Note)

	v = runView(t, dir, "expand", "dinner")
	assert.True(t, v.Meals.Dinner.IsExpanded)
}

func TestCLIPickAndSuggestions(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "suggestions", "--limit", "3", "snacks")
	require.NoError(t, err)
	var seeds SuggestionsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &seeds))
	assert.Len(t, seeds.Suggestions, 3)

	v := runView(t, dir, "pick", "snacks", "Roasted", "makhana")
	assert.Equal(t, "Roasted makhana", v.Meals.Snacks.FoodText)

	out, err = runCLI(t, dir, "suggestions", "snacks")
	require.NoError(t, err)
	var got SuggestionsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"Roasted makhana"}, got.Suggestions)
}

func TestCLIOptions(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "options")
	require.NoError(t, err)

	var opts ops.Options
	require.NoError(t, json.Unmarshal([]byte(out), &opts))
	assert.Len(t, opts.Slots, 4)
	assert.Len(t, opts.Portions, 5)
	assert.Len(t, opts.Feelings, 3)
	assert.Len(t, opts.Symptoms, 5)
}

func TestCLIErrorHandling(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"missing slot", []string{"expand"}, errors.ErrInvalidRequest},
		{"unknown slot", []string{"skip", "brunch"}, errors.ErrInvalidRequest},
		{"bad portion", []string{"portion", "lunch", "x", "huge"}, errors.ErrInvalidRequest},
		{"portion missing args", []string{"portion", "lunch"}, errors.ErrInvalidRequest},
		{"unknown food", []string{"portion", "lunch", "x", "small"}, errors.ErrNotFound},
		{"bad feeling", []string{"feeling", "lunch", "sleepy"}, errors.ErrInvalidRequest},
		{"bad symptom", []string{"symptom", "lunch", "cough"}, errors.ErrInvalidRequest},
		{"empty pick", []string{"pick", "lunch"}, errors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, t.TempDir(), tt.args...)
			assert.Equal(t, string(tt.code), errorCodeOf(t, err))
		})
	}
}

func TestCLIStorageUnavailable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the database file should be cannot be opened as SQLite
	require.NoError(t, os.Mkdir(filepath.Join(dir, db.FileName), 0700))

	_, err := runCLI(t, dir, "show")
	assert.Equal(t, string(errors.ErrStorageUnavailable), errorCodeOf(t, err))
}

func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"no args", []string{"nutrilog"}, false},
		{"show command", []string{"nutrilog", "show"}, true},
		{"serve command", []string{"nutrilog", "serve"}, true},
		{"data dir then command", []string{"nutrilog", "--data-dir", "/tmp/x", "food"}, true},
		{"data dir without command", []string{"nutrilog", "--data-dir", "/tmp/x"}, false},
		{"data dir with equals", []string{"nutrilog", "--data-dir=/tmp/x", "show"}, true},
		{"short data dir with equals", []string{"nutrilog", "-d=/tmp/x", "pick"}, true},
		{"data dir with equals alone", []string{"nutrilog", "--data-dir=/tmp/x"}, false},
		{"help flag", []string{"nutrilog", "--help"}, true},
		{"short version flag", []string{"nutrilog", "-v"}, true},
		{"unknown arg defaults to MCP", []string{"nutrilog", "--unknown"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.expected, isCLIMode())
		})
	}
}
