package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/deepak04iiitn/nutrilog/internal/config"
	"github.com/deepak04iiitn/nutrilog/internal/logger"
	"github.com/deepak04iiitn/nutrilog/internal/ops"
	"github.com/deepak04iiitn/nutrilog/internal/store"
)

// KnownTypes lists all valid type names.
var KnownTypes = []string{"meal", "suggestion"}

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"meal_today": {
		def:     todayToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToday },
	},
	"meal_toggle_expand": {
		def:     toggleExpandToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToggleExpand },
	},
	"meal_toggle_skip": {
		def:     toggleSkipToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToggleSkip },
	},
	"meal_set_food": {
		def:     setFoodToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetFood },
	},
	"meal_pick_suggestion": {
		def:     pickSuggestionToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePickSuggestion },
	},
	"meal_set_portion": {
		def:     setPortionToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetPortion },
	},
	"meal_set_feeling": {
		def:     setFeelingToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetFeeling },
	},
	"meal_toggle_symptom": {
		def:     toggleSymptomToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToggleSymptom },
	},
	"meal_set_note": {
		def:     setNoteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetNote },
	},
	"meal_options": {
		def:     optionsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleOptions },
	},
	"suggestion_list": {
		def:     suggestionListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSuggestionList },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ValidateDisabledTypes returns a list of unknown type names from the given list.
func ValidateDisabledTypes(names []string) []string {
	known := make(map[string]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	unknown := make([]string, 0)
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GetTypeForTool extracts the type name from a tool name.
// Tool names follow the pattern "type_action" (e.g., "meal_set_food" → "meal").
func GetTypeForTool(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// ExpandTypesToTools returns all tool names belonging to the given types.
func ExpandTypesToTools(types []string) []string {
	if len(types) == 0 {
		return nil
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	tools := make([]string, 0)
	for name := range toolRegistry {
		if typeSet[GetTypeForTool(name)] {
			tools = append(tools, name)
		}
	}
	return tools
}

// NewServer creates a new MCP server with Nutrilog tools registered.
// Tools listed in cfg.DisabledTools or belonging to cfg.DisabledTypes
// are excluded from registration.
func NewServer(session *ops.Session, suggestions *store.SuggestionStore, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"nutrilog",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(session, suggestions, cfg)

	log := logger.L().Named("mcp")
	if unknown := ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		log.Warn("unknown disabled_tools ignored", zap.Strings("tools", unknown))
	}
	if unknown := ValidateDisabledTypes(cfg.DisabledTypes); len(unknown) > 0 {
		log.Warn("unknown disabled_types ignored", zap.Strings("types", unknown))
	}

	// Build set of disabled tools: first expand types, then add individual tools
	disabled := make(map[string]bool)
	for _, tool := range ExpandTypesToTools(cfg.DisabledTypes) {
		disabled[tool] = true
	}
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(session *ops.Session, suggestions *store.SuggestionStore, cfg *config.Config, version string) error {
	return server.ServeStdio(NewServer(session, suggestions, cfg, version))
}
