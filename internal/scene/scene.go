package scene

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"icosphere-renderer/internal/mathutil"
	"icosphere-renderer/internal/mesh"
)

// Camera and animation defaults.
const (
	DefaultFOV      = 40.0
	DefaultNear     = 1.0
	DefaultFar      = 100.0
	DefaultDistance = 2.0

	// Spin rates in radians per millisecond of animation time.
	SpinRateX = 0.0001
	SpinRateY = 0.00005
)

var ErrInvalidViewport = errors.New("scene: invalid viewport")

// Config describes the camera and the initial mesh selection.
type Config struct {
	Shape    mesh.Shape
	Quality  int
	Width    int
	Height   int
	FOV      float64 // degrees
	Near     float64
	Far      float64
	Distance float64 // camera distance from the origin along +Z
}

func (c *Config) applyDefaults() {
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	if c.Distance == 0 {
		c.Distance = DefaultDistance
	}
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
}

// Scene owns the displayed mesh and the projection, view and model matrices.
//
// The mesh is published atomically, so Mesh and Select may be called from different
// goroutines. The matrices belong to the goroutine driving the animation.
type Scene struct {
	cfg  Config
	mesh atomic.Pointer[mesh.Mesh]

	Projection mathutil.Mat4
	View       mathutil.Mat4
	Model      mathutil.Mat4
}

// Frame is a self-contained snapshot of everything needed to draw one image.
type Frame struct {
	Mesh       *mesh.Mesh
	Projection mathutil.Mat4
	View       mathutil.Mat4
	Model      mathutil.Mat4
}

// New builds the initial mesh and camera.
func New(cfg Config) (*Scene, error) {
	cfg.applyDefaults()

	s := &Scene{cfg: cfg}
	if err := s.Select(cfg.Shape, cfg.Quality); err != nil {
		return nil, err
	}
	if err := s.Resize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	mathutil.Identity(&s.Model)
	mathutil.Identity(&s.View)
	mathutil.Translate(&s.View, &s.View, mathutil.Vec3{0, 0, -cfg.Distance})
	return s, nil
}

// Select builds a new mesh from scratch and publishes it. On error the current mesh
// stays in place.
func (s *Scene) Select(shape mesh.Shape, quality int) error {
	m, err := mesh.Build(shape, quality)
	if err != nil {
		return fmt.Errorf("scene: select %v/%d: %w", shape, quality, err)
	}
	s.mesh.Store(m)
	return nil
}

// Mesh returns the currently published mesh.
func (s *Scene) Mesh() *mesh.Mesh {
	return s.mesh.Load()
}

// Resize recomputes the projection for a new viewport.
func (s *Scene) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	p, err := mathutil.Perspective(s.cfg.FOV, float64(width)/float64(height), s.cfg.Near, s.cfg.Far)
	if err != nil {
		return fmt.Errorf("scene: resize: %w", err)
	}
	s.cfg.Width, s.cfg.Height = width, height
	s.Projection = p
	return nil
}

// Tick advances the animation by dt, spinning the model about X and Y.
func (s *Scene) Tick(dt time.Duration) {
	ms := float64(dt) / float64(time.Millisecond)
	mathutil.RotateX(&s.Model, ms*SpinRateX)
	mathutil.RotateY(&s.Model, ms*SpinRateY)
}

// Spin rotates the model about an arbitrary axis. A degenerate axis leaves the model
// unchanged and returns the error.
func (s *Scene) Spin(rad float64, axis mathutil.Vec3) error {
	if err := mathutil.RotateAxisAngle(&s.Model, &s.Model, rad, axis); err != nil {
		return fmt.Errorf("scene: spin: %w", err)
	}
	return nil
}

// Zoom moves the camera along its view axis; positive delta moves it closer.
// The camera distance stays between the near plane and the far plane.
func (s *Scene) Zoom(delta float64) {
	dist := -s.View[14] - delta
	dist = math.Max(dist, s.cfg.Near+0.01)
	dist = math.Min(dist, s.cfg.Far-0.01)
	mathutil.Translate(&s.View, &s.View, mathutil.Vec3{0, 0, -dist - s.View[14]})
}

// Distance returns the current camera distance from the origin.
func (s *Scene) Distance() float64 {
	return -s.View[14]
}

// Frame snapshots the current mesh and matrices.
func (s *Scene) Frame() Frame {
	return Frame{
		Mesh:       s.Mesh(),
		Projection: s.Projection,
		View:       s.View,
		Model:      s.Model,
	}
}

// MVP returns Projection × View × Model.
func (f Frame) MVP() mathutil.Mat4 {
	return mathutil.Mat4Mul(f.Projection, mathutil.Mat4Mul(f.View, f.Model))
}

// ModelView returns View × Model.
func (f Frame) ModelView() mathutil.Mat4 {
	return mathutil.Mat4Mul(f.View, f.Model)
}
