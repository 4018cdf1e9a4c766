package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/codetype/internal/config"
	"github.com/verte-zerg/codetype/internal/model"
)

func validConfig() model.Config {
	return model.Config{
		Root:            ".",
		Ext:             ".go",
		Depth:           8,
		FontSize:        14,
		Margin:          12,
		TranscriptColor: "#ffffff",
		CacheSize:       16,
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validConfig()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cases := map[string]func(*model.Config){
		"empty root":     func(c *model.Config) { c.Root = "" },
		"ext no dot":     func(c *model.Config) { c.Ext = "go" },
		"ext only dot":   func(c *model.Config) { c.Ext = "." },
		"depth zero":     func(c *model.Config) { c.Depth = 0 },
		"depth too deep": func(c *model.Config) { c.Depth = 65 },
		"font size":      func(c *model.Config) { c.FontSize = 0 },
		"margin":         func(c *model.Config) { c.Margin = -1 },
		"color":          func(c *model.Config) { c.TranscriptColor = "white" },
		"cache size":     func(c *model.Config) { c.CacheSize = 0 },
	}
	for name, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Practice.Ext != nil {
		t.Fatalf("expected commented template to leave values unset")
	}
}

func TestDiscoverRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.go")
	if err := os.WriteFile(path, []byte("package x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := validConfig()
	cfg.Root = path
	if _, err := discover(cfg); err == nil {
		t.Fatalf("expected error for non-directory root")
	}
}

func TestDiscoverFindsFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pkg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"main.go", "pkg/util.go", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("package x\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	cfg := validConfig()
	cfg.Root = dir
	cfg.Seed = 3
	smp, err := discover(cfg)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	got := smp.Candidates().Paths()
	if len(got) != 2 || got[0] != "main.go" || got[1] != "pkg/util.go" {
		t.Fatalf("unexpected candidates %v", got)
	}
}
