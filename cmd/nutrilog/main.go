package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/deepak04iiitn/nutrilog/internal/config"
	"github.com/deepak04iiitn/nutrilog/internal/db"
	"github.com/deepak04iiitn/nutrilog/internal/errors"
	"github.com/deepak04iiitn/nutrilog/internal/logger"
	"github.com/deepak04iiitn/nutrilog/internal/mcp"
	"github.com/deepak04iiitn/nutrilog/internal/ops"
	"github.com/deepak04iiitn/nutrilog/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"show": true, "expand": true, "skip": true,
	"food": true, "pick": true, "portion": true,
	"feeling": true, "symptom": true, "note": true,
	"suggestions": true, "options": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	// Global flags come before the subcommand
	if arg == "--data-dir" || arg == "-d" {
		return len(os.Args) > 3 && cliCommands[os.Args[3]]
	}
	if strings.HasPrefix(arg, "--data-dir=") || strings.HasPrefix(arg, "-d=") {
		return len(os.Args) > 2 && cliCommands[os.Args[2]]
	}
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _  _      _       _ _
  | \| |_  _| |_ _ _(_) |   ___  __ _
  | .' | || |  _| '_| | |__/ _ \/ _' |
  |_|\_|\_,_|\__|_| |_|____\___/\__, |
                                |___/
  Gentle daily meal log

  Usage: nutrilog <command> [options]
         nutrilog --help

  MCP server mode requires piped input.`)
}

// defaultDataDir returns ~/.nutrilog.
func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".nutrilog"), nil
}

// appEnv is everything a command needs once the data directory is open.
type appEnv struct {
	database    *sql.DB
	cfg         *config.Config
	suggestions *store.SuggestionStore
	engine      *ops.Engine
}

// openEnv loads config, starts logging, and opens the database under baseDir.
func openEnv(baseDir string) (*appEnv, error) {
	if baseDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		baseDir = dir
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := logger.Init(cfg.Debug); err != nil {
		return nil, errors.NewInternal(err)
	}

	database, err := db.Init(baseDir)
	if err != nil {
		logger.L().Warn("database unavailable", zap.String("dir", baseDir), zap.Error(err))
		return nil, errors.NewStorageUnavailable(err)
	}
	db.ConfigurePool(database, cfg)

	kv := db.NewKV(database)
	suggestions := store.NewSuggestionStore(kv)

	return &appEnv{
		database:    database,
		cfg:         cfg,
		suggestions: suggestions,
		engine:      ops.NewEngine(store.NewDayStore(kv), suggestions, nil),
	}, nil
}

// Close releases the database and flushes the logger.
func (e *appEnv) Close() {
	_ = e.database.Close()
	logger.Sync()
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	if isCLIMode() {
		if err := newCLIApp().Run(os.Args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'nutrilog --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	env, err := openEnv("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	session := ops.NewSession(context.Background(), env.engine)
	if err := mcp.Run(session, env.suggestions, env.cfg, Version); err != nil {
		logger.L().Error("mcp server stopped", zap.Error(err))
		env.Close()
		os.Exit(1)
	}
}
