package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"icosphere-renderer/internal/imageio"
	"icosphere-renderer/internal/mesh"
)

var ErrInvalid = errors.New("config: invalid")

// Config holds the mesh selection, camera and render settings.
type Config struct {
	// Mesh
	Shape   string `json:"shape"`
	Quality *int   `json:"quality"` // nil = default; 0 is a valid depth

	// Camera
	FOV      float64 `json:"fov"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
	Distance float64 `json:"distance"`

	// Animation
	Frames  int     `json:"frames"`
	FrameMS float64 `json:"frame_ms"`

	// Output
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Color       string `json:"color"`      // "#rrggbb"
	Background  string `json:"background"` // "#rrggbb", empty = transparent
	CullBack    *bool  `json:"cull_back"`
	Workers     int    `json:"workers"`
}

// Defaults for fields left unset.
const (
	DefaultShape   = "icosphere"
	DefaultQuality = 3
	DefaultFrames  = 60
	DefaultFrameMS = 1000.0 / 60
	DefaultSize    = 512
	DefaultFormat  = "webp"
	DefaultColor   = "#a0a0aa"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given"; Quality uses -1 for that.
type Flags struct {
	Shape     string
	Quality   int
	Frames    int
	Size      int
	Workers   int
	OutputDir string
	Format    string
}

// Resolve applies CLI overrides and fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Shape != "" {
		c.Shape = flags.Shape
	}
	if flags.Quality >= 0 {
		q := flags.Quality
		c.Quality = &q
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Width, c.Height = flags.Size, flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.Shape == "" {
		c.Shape = DefaultShape
	}
	if c.Quality == nil {
		q := DefaultQuality
		c.Quality = &q
	}
	if c.Frames <= 0 {
		c.Frames = DefaultFrames
	}
	if c.FrameMS <= 0 {
		c.FrameMS = DefaultFrameMS
	}
	if c.Width <= 0 {
		c.Width = DefaultSize
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.CullBack == nil {
		cull := true
		c.CullBack = &cull
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	if c.OutputDir == "" {
		cwd, _ := os.Getwd()
		c.OutputDir = filepath.Join(cwd, "renders")
	} else if !filepath.IsAbs(c.OutputDir) {
		if abs, err := filepath.Abs(c.OutputDir); err == nil {
			c.OutputDir = abs
		}
	}
}

// Validate checks the resolved config at the program boundary. Camera fields left at
// zero take the scene defaults.
func (c *Config) Validate() error {
	if _, err := mesh.ParseShape(c.Shape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Quality == nil {
		return fmt.Errorf("%w: quality not resolved", ErrInvalid)
	}
	if err := mesh.CheckQuality(*c.Quality); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := imageio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			return err
		}
	}
	if c.Near < 0 || c.Far < 0 || c.Distance < 0 {
		return fmt.Errorf("%w: negative camera distance", ErrInvalid)
	}
	return nil
}

// ParseColor parses "#rrggbb".
func ParseColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	if len(s) != 7 || s[0] != '#' {
		return rgb, fmt.Errorf("%w: color %q (want #rrggbb)", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rgb, fmt.Errorf("%w: color %q: %w", ErrInvalid, s, err)
	}
	rgb[0], rgb[1], rgb[2] = uint8(v>>16), uint8(v>>8), uint8(v)
	return rgb, nil
}
