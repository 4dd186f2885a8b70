package batch

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"icosphere-renderer/internal/imageio"
	"icosphere-renderer/internal/mathutil"
	"icosphere-renderer/internal/mesh"
	"icosphere-renderer/internal/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc, err := scene.New(scene.Config{Shape: mesh.Icosphere, Quality: 1, Width: 32, Height: 32, Distance: 4})
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		Format:      imageio.TGA,
		Frames:      5,
		FrameTime:   100 * time.Millisecond,
		Width:       32,
		Height:      32,
		Supersample: 2,
		Color:       [3]uint8{200, 100, 50},
		CullBack:    true,
		Workers:     3,
	}
	sc := testScene(t)

	results := Run(cfg, sc)
	if len(results) != cfg.Frames {
		t.Fatalf("%d results, want %d", len(results), cfg.Frames)
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Frame != i {
			t.Errorf("result %d reports frame %d", i, r.Frame)
		}
		if want := filepath.Join(dir, "frame_000"+string(rune('0'+i))+".tga"); r.Path != want {
			t.Errorf("path = %s, want %s", r.Path, want)
		}
		img, err := imageio.Load(r.Path)
		if err != nil {
			t.Fatalf("load frame %d: %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Errorf("frame %d is %dx%d, want 32x32", i, b.Dx(), b.Dy())
		}
		if r.Drawn == 0 {
			t.Errorf("frame %d drew nothing", i)
		}
	}

	// The scene advanced once per frame on the calling goroutine.
	want := mathutil.Mat4Identity()
	for i := 0; i < cfg.Frames; i++ {
		mathutil.RotateX(&want, 100*scene.SpinRateX)
		mathutil.RotateY(&want, 100*scene.SpinRateY)
	}
	for i := range want {
		if d := want[i] - sc.Model[i]; d > 1e-12 || d < -1e-12 {
			t.Fatalf("model after run = %v, want %v", sc.Model, want)
		}
	}
}

func TestRunBackground(t *testing.T) {
	dir := t.TempDir()
	bg := color.NRGBA{0, 85, 85, 255}
	cfg := Config{
		OutputDir:   dir,
		Format:      imageio.PNG,
		Frames:      1,
		Width:       16,
		Height:      16,
		Supersample: 1,
		Color:       [3]uint8{255, 255, 255},
		Background:  &bg,
	}
	results := Run(cfg, testScene(t))
	if !results[0].Success {
		t.Fatal(results[0].Error)
	}
	img, err := imageio.Load(results[0].Path)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.NRGBAAt(0, 0); c != bg {
		t.Errorf("corner = %v, want background %v", c, bg)
	}
}

func TestRunNoFrames(t *testing.T) {
	if res := Run(Config{Frames: 0}, testScene(t)); res != nil {
		t.Errorf("expected no results, got %d", len(res))
	}
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{OutputDir: dir, Format: imageio.WebP, Width: 8, Height: 8, FrameTime: 20 * time.Millisecond}
	m := mesh.BuildIcosphere(2)
	results := []Result{
		{Frame: 0, Path: FramePath(cfg, 0), Drawn: 10, Success: true},
		{Frame: 1, Path: FramePath(cfg, 1), Error: "disk full"},
		{Frame: 2, Path: FramePath(cfg, 2), Drawn: 12, Success: true},
	}

	man := NewManifest(cfg, m, results)
	if len(man.Frames) != 2 {
		t.Fatalf("manifest lists %d frames, want 2", len(man.Frames))
	}
	if man.Frames[1].Image != "frame_0002.webp" {
		t.Errorf("image = %q, want frame_0002.webp", man.Frames[1].Image)
	}
	if man.Mesh.Vertices != 162 || man.Mesh.Triangles != 320 {
		t.Errorf("mesh stats = %+v", man.Mesh)
	}

	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, man); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Manifest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Shape != "icosphere" || back.Quality != 2 || back.FrameMS != 20 {
		t.Errorf("decoded manifest header = %s q%d %vms", back.Shape, back.Quality, back.FrameMS)
	}
}
