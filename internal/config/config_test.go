package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := DefaultConfig()
	if cfg.QuickPicks != def.QuickPicks {
		t.Fatalf("QuickPicks = %d, want %d", cfg.QuickPicks, def.QuickPicks)
	}
	if cfg.WebBind != def.WebBind || cfg.WebPort != def.WebPort {
		t.Fatalf("web = %s:%d, want %s:%d", cfg.WebBind, cfg.WebPort, def.WebBind, def.WebPort)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"quick_picks": 3, "web_port": 9000, "debug": true}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QuickPicks != 3 {
		t.Errorf("QuickPicks = %d, want 3", cfg.QuickPicks)
	}
	if cfg.WebPort != 9000 {
		t.Errorf("WebPort = %d, want 9000", cfg.WebPort)
	}
	if cfg.WebBind != "127.0.0.1" {
		t.Errorf("WebBind = %q, want default", cfg.WebBind)
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"disabled_tools": ["meal_set_note", "suggestion_list"]}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.DisabledTools) != 2 {
		t.Fatalf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if cfg.DisabledTools[0] != "meal_set_note" {
		t.Errorf("DisabledTools[0] = %q, want %q", cfg.DisabledTools[0], "meal_set_note")
	}
}

func TestMerge(t *testing.T) {
	base := &Config{QuickPicks: 5, WebBind: "127.0.0.1", DisabledTypes: []string{"suggestion"}}
	overlay := &Config{QuickPicks: -1, WebBind: "  ", DisabledTypes: []string{" suggestion ", "meal"}}

	got := Merge(base, overlay)
	if got.QuickPicks != 5 {
		t.Errorf("QuickPicks = %d, want 5", got.QuickPicks)
	}
	if got.WebBind != "127.0.0.1" {
		t.Errorf("WebBind = %q, want base", got.WebBind)
	}
	if len(got.DisabledTypes) != 2 || got.DisabledTypes[0] != "suggestion" || got.DisabledTypes[1] != "meal" {
		t.Errorf("DisabledTypes = %v", got.DisabledTypes)
	}
}

func TestMergeStringSlice_Empty(t *testing.T) {
	if got := mergeStringSlice(nil, []string{" ", ""}); got != nil {
		t.Errorf("mergeStringSlice = %v, want nil", got)
	}
}
