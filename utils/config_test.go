package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.RandomFillProbability != 0 {
		t.Fatal("random fill must be disabled by default")
	}
	if cfg.GenerationsPerSecond != 20 {
		t.Fatalf("generations per second = %d, expected 20", cfg.GenerationsPerSecond)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"dimension": 64, "random_fill_probability": 0.6, "renderer": "gl"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dimension != 64 || cfg.RandomFillProbability != 0.6 || cfg.Renderer != RendererGL {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.GenerationsPerSecond != 20 {
		t.Fatal("unset fields must keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("err = %v, expected a wrapped not-exist error", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestBindOverridesConfig(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-n", "128", "-fill", "0.25", "-renderer", "ebiten", "-pattern", "rle.life"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Dimension != 128 || cfg.RandomFillProbability != 0.25 || cfg.Renderer != RendererEbiten || cfg.PatternFile != "rle.life" {
		t.Fatalf("flags not applied: %+v", cfg)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(discard{})
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-n", "-3"}); err == nil {
		t.Fatal("expected error for negative dimension")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dimension", func(c *Config) { c.Dimension = 0 }},
		{"zero rate", func(c *Config) { c.GenerationsPerSecond = 0 }},
		{"negative probability", func(c *Config) { c.RandomFillProbability = -1 }},
		{"probability above one", func(c *Config) { c.RandomFillProbability = 1.1 }},
		{"unknown renderer", func(c *Config) { c.Renderer = "vulkan" }},
		{"window without size", func(c *Config) { c.Renderer = RendererGL; c.WindowSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, model.ErrInvalidConfiguration) {
				t.Fatalf("err = %v, expected ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomFillProbability = 0.6
	cfg.RandomSeed = 9
	opts := cfg.EngineOptions()
	if opts.RandomFillProbability != 0.6 || opts.RandomSeed != 9 {
		t.Fatalf("options = %+v", opts)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
