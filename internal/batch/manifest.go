package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"icosphere-renderer/internal/mesh"
)

// Manifest describes a rendered frame sequence.
type Manifest struct {
	Shape   string          `json:"shape"`
	Quality int             `json:"quality"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	FrameMS float64         `json:"frame_ms"`
	Mesh    mesh.Stats      `json:"mesh"`
	Frames  []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
	Drawn int    `json:"drawn_triangles"`
}

// NewManifest lists the successful results with image paths relative to the output dir.
func NewManifest(cfg Config, m *mesh.Mesh, results []Result) Manifest {
	man := Manifest{
		Shape:   m.Shape.String(),
		Quality: m.Quality,
		Width:   cfg.Width,
		Height:  cfg.Height,
		FrameMS: float64(cfg.FrameTime.Microseconds()) / 1000,
		Mesh:    m.Stats(),
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(cfg.OutputDir, r.Path)
		if err != nil {
			rel = r.Path
		}
		man.Frames = append(man.Frames, ManifestEntry{Frame: r.Frame, Image: filepath.ToSlash(rel), Drawn: r.Drawn})
	}
	return man
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, man Manifest) error {
	data, err := json.MarshalIndent(man, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
