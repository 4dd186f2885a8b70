// Package viewer maps viewer input onto a scene. Mesh rebuilds run on a background
// goroutine and are published through the scene, so the draw loop never waits for a
// subdivision pass.
package viewer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"icosphere-renderer/internal/mathutil"
	"icosphere-renderer/internal/mesh"
	"icosphere-renderer/internal/scene"
)

// Action is a single user command.
type Action int

const (
	SelectIcosphere Action = iota
	SelectCube
	QualityUp
	QualityDown
	SpinLeft
	SpinRight
	SpinUp
	SpinDown
	ZoomIn
	ZoomOut
)

// Step sizes for continuous actions, applied once per Apply call.
const (
	SpinStep = 0.03 // radians
	ZoomStep = 0.05
)

type request struct {
	gen     int64
	shape   mesh.Shape
	quality int
}

// Controller owns the selection state of an interactive session.
// Apply and Status must be called from the goroutine that drives the scene's matrices.
type Controller struct {
	sc      *scene.Scene
	shape   mesh.Shape
	quality int

	reqs   chan request
	wanted atomic.Int64
	done   atomic.Int64

	mu      sync.Mutex
	lastErr error

	wg sync.WaitGroup
}

// NewController starts the rebuild worker. Call Close when finished.
func NewController(sc *scene.Scene) *Controller {
	m := sc.Mesh()
	c := &Controller{
		sc:      sc,
		shape:   m.Shape,
		quality: m.Quality,
		reqs:    make(chan request, 1),
	}
	c.wg.Add(1)
	go c.rebuild()
	return c
}

// rebuild serves requests in order. A request still queued when a newer one arrives
// is dropped, so at most one stale build runs.
func (c *Controller) rebuild() {
	defer c.wg.Done()
	for r := range c.reqs {
		err := c.sc.Select(r.shape, r.quality)
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		c.done.Store(r.gen)
	}
}

func (c *Controller) request() {
	r := request{gen: c.wanted.Add(1), shape: c.shape, quality: c.quality}
	for {
		select {
		case c.reqs <- r:
			return
		default:
		}
		select {
		case <-c.reqs:
		default:
		}
	}
}

// Apply performs a. Selection changes queue a rebuild and return immediately.
func (c *Controller) Apply(a Action) error {
	switch a {
	case SelectIcosphere, SelectCube:
		shape := mesh.Icosphere
		if a == SelectCube {
			shape = mesh.Cube
		}
		if shape == c.shape {
			return nil
		}
		c.shape = shape
		c.request()
	case QualityUp, QualityDown:
		q := c.quality + 1
		if a == QualityDown {
			q = c.quality - 1
		}
		if q < 0 || q > mesh.MaxQuality {
			return nil
		}
		c.quality = q
		// The cube does not subdivide; keep the depth for the next icosphere.
		if c.shape == mesh.Icosphere {
			c.request()
		}
	case SpinLeft:
		return c.sc.Spin(-SpinStep, mathutil.Vec3{0, 1, 0})
	case SpinRight:
		return c.sc.Spin(SpinStep, mathutil.Vec3{0, 1, 0})
	case SpinUp:
		return c.sc.Spin(-SpinStep, mathutil.Vec3{1, 0, 0})
	case SpinDown:
		return c.sc.Spin(SpinStep, mathutil.Vec3{1, 0, 0})
	case ZoomIn:
		c.sc.Zoom(ZoomStep)
	case ZoomOut:
		c.sc.Zoom(-ZoomStep)
	default:
		return fmt.Errorf("viewer: unknown action %d", a)
	}
	return nil
}

// Building reports whether a requested mesh has not been published yet.
func (c *Controller) Building() bool {
	return c.done.Load() < c.wanted.Load()
}

// Err returns the error of the most recent rebuild, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Status is a one-line summary for the on-screen overlay.
func (c *Controller) Status() string {
	m := c.sc.Mesh()
	s := fmt.Sprintf("%s q%d  %d verts  %d tris  dist %.2f", m.Shape, m.Quality, len(m.Vertices), len(m.Triangles), c.sc.Distance())
	if c.Building() {
		s += fmt.Sprintf("  (building %s q%d)", c.shape, c.quality)
	}
	if err := c.Err(); err != nil {
		s += "  error: " + err.Error()
	}
	return s
}

// Close stops the rebuild worker after any queued build finishes.
func (c *Controller) Close() {
	close(c.reqs)
	c.wg.Wait()
}
