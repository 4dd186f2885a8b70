package batch

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"icosphere-renderer/internal/imageio"
	"icosphere-renderer/internal/postprocess"
	"icosphere-renderer/internal/raster"
	"icosphere-renderer/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      imageio.Format
	Frames      int
	FrameTime   time.Duration
	Width       int
	Height      int
	Supersample int
	Color       [3]uint8
	Background  *color.NRGBA // nil = transparent
	CullBack    bool
	Workers     int
	Progress    time.Duration // 0 = every 2s
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Drawn   int
	Success bool
	Error   string
}

type job struct {
	index int
	frame scene.Frame
}

// Run animates sc for cfg.Frames ticks and renders every frame using a worker pool.
// Matrices are snapshotted on the calling goroutine; workers only read their copies.
func Run(cfg Config, sc *scene.Scene) []Result {
	total := cfg.Frames
	if total <= 0 {
		return nil
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	frames := make([]scene.Frame, total)
	for i := range frames {
		frames[i] = sc.Frame()
		sc.Tick(cfg.FrameTime)
	}

	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	interval := cfg.Progress
	if interval <= 0 {
		interval = 2 * time.Second
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = processFrame(cfg, j.index, j.frame)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i, f := range frames {
		jobs <- job{index: i, frame: f}
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// FramePath returns the output path of frame i.
func FramePath(cfg Config, i int) string {
	return filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d%s", i, cfg.Format.Ext()))
}

func processFrame(cfg Config, i int, f scene.Frame) Result {
	res := Result{Frame: i, Path: FramePath(cfg, i)}

	img, st := raster.Render(f, raster.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Color:       cfg.Color,
		CullBack:    cfg.CullBack,
	})
	res.Drawn = st.Drawn

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if cfg.Background != nil {
		img = postprocess.Flatten(img, *cfg.Background)
	}

	if err := imageio.Save(res.Path, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
