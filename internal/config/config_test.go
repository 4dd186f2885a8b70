package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"icosphere-renderer/internal/mesh"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writeConfig(t, `{"shape": "cube", "quality": 0, "frames": 10, "width": 300, "format": "tga"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{Quality: -1})

	if cfg.Shape != "cube" || *cfg.Quality != 0 || cfg.Frames != 10 {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Width != 300 || cfg.Height != 300 {
		t.Errorf("size = %dx%d, want 300x300", cfg.Width, cfg.Height)
	}
	if cfg.Supersample != 2 || cfg.Color != DefaultColor || !*cfg.CullBack || cfg.Workers <= 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if !filepath.IsAbs(cfg.OutputDir) {
		t.Errorf("output dir %q not absolute", cfg.OutputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `{"shape": "cube", "quality": 1, "format": "png"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{Shape: "icosphere", Quality: 4, Size: 128, Format: "webp"})

	if cfg.Shape != "icosphere" || *cfg.Quality != 4 || cfg.Width != 128 || cfg.Format != "webp" {
		t.Errorf("flags did not override: %+v", cfg)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{Quality: -1})
	if cfg.Shape != DefaultShape || *cfg.Quality != DefaultQuality || cfg.Frames != DefaultFrames {
		t.Errorf("defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, `{"quality": 1.5}`)); err == nil {
		t.Error("expected error for fractional quality")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"negative quality", func(c *Config) { q := -2; c.Quality = &q }, mesh.ErrInvalidQuality},
		{"too deep", func(c *Config) { q := mesh.MaxQuality + 1; c.Quality = &q }, mesh.ErrInvalidQuality},
		{"unknown shape", func(c *Config) { c.Shape = "torus" }, mesh.ErrUnknownShape},
		{"bad format", func(c *Config) { c.Format = "gif" }, ErrInvalid},
		{"bad color", func(c *Config) { c.Color = "red" }, ErrInvalid},
		{"bad background", func(c *Config) { c.Background = "#12345g" }, ErrInvalid},
		{"negative distance", func(c *Config) { c.Distance = -1 }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{Quality: -1})
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	rgb, err := ParseColor("#a0a0aa")
	if err != nil || rgb != [3]uint8{0xa0, 0xa0, 0xaa} {
		t.Errorf("ParseColor = %v, %v", rgb, err)
	}
}
