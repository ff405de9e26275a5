package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/deepak04iiitn/nutrilog/internal/errors"
	"github.com/deepak04iiitn/nutrilog/internal/meal"
	"github.com/deepak04iiitn/nutrilog/internal/ops"
	"github.com/deepak04iiitn/nutrilog/internal/web"
)

// timeNow is replaced in tests.
var timeNow = time.Now

// ShowOutput is printed by the show command.
type ShowOutput struct {
	Greeting string `json:"greeting"`
	ops.View
}

// SuggestionsOutput is printed by the suggestions command.
type SuggestionsOutput struct {
	Slot        meal.Slot `json:"slot"`
	Suggestions []string  `json:"suggestions"`
}

// mealAction runs one engine operation for a resolved slot. args holds the
// positional arguments after the slot.
type mealAction func(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "nutrilog",
		Usage:   "Gentle daily meal log",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Aliases: []string{"d"}, Usage: "Data directory (default ~/.nutrilog)"},
		},
		Commands: []*cli.Command{
			showCmd(),
			mealCmd("expand", "Open or close a meal card", "<slot>", toggleExpand),
			mealCmd("skip", "Skip a meal, or unskip it", "<slot>", toggleSkip),
			mealCmd("food", "Set what you ate (comma-separated)", "<slot> <text>", setFood),
			mealCmd("pick", "Use a quick-select suggestion and remember it", "<slot> <text>", pickSuggestion),
			mealCmd("portion", "Set the portion for one food item", "<slot> <food-id> <portion>", setPortion),
			mealCmd("feeling", "Set how you felt after the meal", "<slot> <feeling>", setFeeling),
			mealCmd("symptom", "Toggle a symptom", "<slot> <symptom>", toggleSymptom),
			mealCmd("note", "Set the meal note", "<slot> <text>", setNote),
			suggestionsCmd(),
			optionsCmd(),
			serveCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// withEnv opens the data directory for the duration of a command.
func withEnv(fn func(c *cli.Context, env *appEnv) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := openEnv(c.String("data-dir"))
		if err != nil {
			return outputError(err)
		}
		defer env.Close()
		return fn(c, env)
	}
}

// showCmd creates the show command.
func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show today's meals",
		Action: withEnv(func(c *cli.Context, env *appEnv) error {
			log := env.engine.Initialize(c.Context)
			return outputJSON(c, ShowOutput{
				Greeting: meal.Greeting(timeNow().Hour()),
				View:     ops.NewView(env.engine.Today(), ops.Result{Meals: log, Saved: true}),
			})
		}),
	}
}

// mealCmd creates a command that applies one engine operation to a slot.
func mealCmd(name, usage, argsUsage string, act mealAction) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: argsUsage,
		Action: withEnv(func(c *cli.Context, env *appEnv) error {
			slot, err := ops.ResolveSlot(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			log := env.engine.Initialize(c.Context)
			res, err := act(c.Context, env, log, slot, c.Args().Tail())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, ops.NewView(env.engine.Today(), res))
		}),
	}
}

func toggleExpand(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, _ []string) (ops.Result, error) {
	return env.engine.ToggleExpand(ctx, log, slot), nil
}

func toggleSkip(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, _ []string) (ops.Result, error) {
	return env.engine.ToggleSkipped(ctx, log, slot), nil
}

func setFood(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error) {
	return env.engine.SetFoodText(ctx, log, slot, strings.Join(args, " ")), nil
}

func pickSuggestion(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error) {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return ops.Result{}, errors.NewInvalidRequest("suggestion text is required")
	}
	return env.engine.SetFoodFromSuggestion(ctx, log, slot, text), nil
}

func setPortion(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error) {
	if len(args) != 2 {
		return ops.Result{}, errors.NewInvalidRequest("usage: portion <slot> <food-id> <portion>")
	}
	portion, err := ops.ResolvePortion(args[1])
	if err != nil {
		return ops.Result{}, err
	}
	id := strings.TrimSpace(args[0])
	if err := ops.RequireFood(log, slot, id); err != nil {
		return ops.Result{}, err
	}
	return env.engine.SetPortion(ctx, log, slot, id, portion), nil
}

func setFeeling(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error) {
	feeling, err := ops.ResolveFeeling(strings.Join(args, " "))
	if err != nil {
		return ops.Result{}, err
	}
	return env.engine.SetFeeling(ctx, log, slot, feeling), nil
}

func toggleSymptom(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error) {
	symptom, err := ops.ResolveSymptom(strings.Join(args, " "))
	if err != nil {
		return ops.Result{}, err
	}
	return env.engine.ToggleSymptom(ctx, log, slot, symptom), nil
}

func setNote(ctx context.Context, env *appEnv, log meal.DayLog, slot meal.Slot, args []string) (ops.Result, error) {
	return env.engine.SetNote(ctx, log, slot, strings.Join(args, " ")), nil
}

// suggestionsCmd creates the suggestions command.
func suggestionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "suggestions",
		Usage:     "List quick-select suggestions for a slot",
		ArgsUsage: "<slot>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Maximum suggestions (default from config)"},
		},
		Action: withEnv(func(c *cli.Context, env *appEnv) error {
			slot, err := ops.ResolveSlot(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			limit := c.Int("limit")
			if limit <= 0 {
				limit = env.cfg.QuickPicks
			}
			return outputJSON(c, SuggestionsOutput{
				Slot:        slot,
				Suggestions: env.suggestions.QuickPicks(c.Context, slot, limit),
			})
		}),
	}
}

// optionsCmd creates the options command.
func optionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "options",
		Usage: "List slots, portions, feelings and symptoms",
		Action: func(c *cli.Context) error {
			return outputJSON(c, ops.AllOptions())
		},
	}
}

// serveCmd creates the serve command.
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Interface to listen on (default from config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on (default from config)"},
		},
		Action: withEnv(func(c *cli.Context, env *appEnv) error {
			if bind := c.String("bind"); bind != "" {
				env.cfg.WebBind = bind
			}
			if port := c.Int("port"); port > 0 {
				env.cfg.WebPort = port
			}
			session := ops.NewSession(c.Context, env.engine)
			srv, err := web.NewServer(session, env.suggestions, env.cfg, Version)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			if err := web.Run(srv); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		}),
	}
}

// outputJSON writes v as indented JSON to the app's writer.
func outputJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats err as a JSON error object and exits non-zero.
func outputError(err error) error {
	var nErr *errors.NutrilogError
	if !stderrors.As(err, &nErr) {
		nErr = errors.NewInternal(err)
	}
	errorObj := map[string]any{
		"code":    string(nErr.Code),
		"message": nErr.Message,
		"status":  nErr.Status,
	}
	if nErr.Code != errors.ErrInternal && nErr.Details != nil {
		errorObj["details"] = nErr.Details
	}
	data, _ := json.Marshal(map[string]any{"error": errorObj})
	return cli.Exit(string(data), 1)
}
