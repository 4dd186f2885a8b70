package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"icosphere-renderer/internal/batch"
	"icosphere-renderer/internal/config"
	"icosphere-renderer/internal/imageio"
	"icosphere-renderer/internal/mesh"
	"icosphere-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	shape := flag.String("shape", "", "Mesh shape: icosphere or cube (default: icosphere)")
	quality := flag.Int("quality", -1, fmt.Sprintf("Subdivision depth 0-%d (default: %d)", mesh.MaxQuality, config.DefaultQuality))
	frames := flag.Int("frames", 0, "Number of animation frames (default: 60)")
	size := flag.Int("size", 0, "Output width and height in pixels (default: 512)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: ./renders)")
	format := flag.String("format", "", "Image format: webp, tga or png (default: webp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Shape:     *shape,
		Quality:   *quality,
		Frames:    *frames,
		Size:      *size,
		Workers:   *workers,
		OutputDir: *outputDir,
		Format:    *format,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Validate has already accepted these.
	sh, _ := mesh.ParseShape(cfg.Shape)
	fm, _ := imageio.ParseFormat(cfg.Format)
	rgb, _ := config.ParseColor(cfg.Color)
	var bg *color.NRGBA
	if cfg.Background != "" {
		c, _ := config.ParseColor(cfg.Background)
		bg = &color.NRGBA{c[0], c[1], c[2], 255}
	}

	sc, err := scene.New(scene.Config{
		Shape:    sh,
		Quality:  *cfg.Quality,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FOV:      cfg.FOV,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Distance: cfg.Distance,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}
	m := sc.Mesh()

	fmt.Printf("Rendering %s (quality %d) → %s\n", sh, m.Quality, fm)
	fmt.Printf("Mesh: %d vertices, %d triangles\n", len(m.Vertices), len(m.Triangles))
	fmt.Printf("Frames: %d at %dx%d (x%d), Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      fm,
		Frames:      cfg.Frames,
		FrameTime:   time.Duration(cfg.FrameMS * float64(time.Millisecond)),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Color:       rgb,
		Background:  bg,
		CullBack:    *cfg.CullBack,
		Workers:     cfg.Workers,
	}

	results := batch.Run(batchCfg, sc)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, m, results)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
