package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deepak04iiitn/nutrilog/internal/meal"
)

func slotParam() mcp.ToolOption {
	return mcp.WithString("slot",
		mcp.Required(),
		mcp.Description("Meal slot"),
		mcp.Enum(meal.SlotValues()...),
	)
}

var todayToolDef = mcp.NewTool("meal_today",
	mcp.WithDescription("Return today's meal log. A new calendar day starts from an empty log."),
)

var toggleExpandToolDef = mcp.NewTool("meal_toggle_expand",
	mcp.WithDescription("Toggle whether a meal card is expanded."),
	slotParam(),
)

var toggleSkipToolDef = mcp.NewTool("meal_toggle_skip",
	mcp.WithDescription("Mark a meal as skipped (clears its food, feeling, symptoms and note) or unmark it."),
	slotParam(),
)

var setFoodToolDef = mcp.NewTool("meal_set_food",
	mcp.WithDescription("Replace what was eaten for a meal. Comma-separated items become individual foods; previously chosen portions are discarded."),
	slotParam(),
	mcp.WithString("text", mcp.Description("Free text, e.g. \"idli, sambar, chutney\"")),
)

var pickSuggestionToolDef = mcp.NewTool("meal_pick_suggestion",
	mcp.WithDescription("Same as meal_set_food, and remember the text as a quick-select suggestion for the slot."),
	slotParam(),
	mcp.WithString("text", mcp.Required(), mcp.Description("Suggestion text")),
)

var setPortionToolDef = mcp.NewTool("meal_set_portion",
	mcp.WithDescription("Set the portion size of one parsed food item."),
	slotParam(),
	mcp.WithString("food_id", mcp.Required(), mcp.Description("Food item id from the meal's parsedFoods")),
	mcp.WithString("portion", mcp.Required(), mcp.Enum(meal.Values(meal.Portions)...)),
)

var setFeelingToolDef = mcp.NewTool("meal_set_feeling",
	mcp.WithDescription("Record how the user felt after a meal."),
	slotParam(),
	mcp.WithString("feeling", mcp.Required(), mcp.Enum(meal.Values(meal.Feelings)...)),
)

var toggleSymptomToolDef = mcp.NewTool("meal_toggle_symptom",
	mcp.WithDescription("Toggle a post-meal symptom. \"none\" clears all others; any other symptom clears \"none\"."),
	slotParam(),
	mcp.WithString("symptom", mcp.Required(), mcp.Enum(meal.Values(meal.Symptoms)...)),
)

var setNoteToolDef = mcp.NewTool("meal_set_note",
	mcp.WithDescription("Replace the free-text note for a meal."),
	slotParam(),
	mcp.WithString("note", mcp.Description("Note text; empty clears it")),
)

var optionsToolDef = mcp.NewTool("meal_options",
	mcp.WithDescription("List meal slots and the portion, feeling and symptom vocabularies."),
)

var suggestionListToolDef = mcp.NewTool("suggestion_list",
	mcp.WithDescription("Quick-select food suggestions for a slot, most recent first. Falls back to built-in examples."),
	slotParam(),
	mcp.WithNumber("limit", mcp.Description("Maximum suggestions to return (default from config)")),
)
