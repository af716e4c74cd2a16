package geom

import (
	"fmt"
	"math"

	"github.com/gogpu/polyroot"
)

// DefaultMinT is the default lower bound for hit parameters. It keeps
// secondary rays from re-hitting the surface they start on.
const DefaultMinT = 1e-6

// SceneOption configures a Scene during creation.
//
// Example:
//
//	scene := geom.NewScene(
//	    geom.WithInterval(0.001, 100),
//	    geom.WithShapes(torus, sphere),
//	)
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	tMin, tMax float64
	shapes     []Shape
}

func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		tMin: DefaultMinT,
		tMax: math.Inf(1),
	}
}

// WithInterval restricts hits to tMin < t <= tMax.
// An empty or NaN interval is replaced by the default with a warning.
func WithInterval(tMin, tMax float64) SceneOption {
	return func(o *sceneOptions) {
		o.tMin = tMin
		o.tMax = tMax
	}
}

// WithShapes adds shapes to the scene at creation.
func WithShapes(shapes ...Shape) SceneOption {
	return func(o *sceneOptions) {
		o.shapes = append(o.shapes, shapes...)
	}
}

// Scene is a flat list of shapes searched for the nearest hit.
//
// Intersect is safe for concurrent use; Add is not and must not race with
// Intersect.
type Scene struct {
	shapes     []Shape
	tMin, tMax float64
}

// NewScene creates a scene with the given options.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !(o.tMin < o.tMax) {
		def := defaultSceneOptions()
		polyroot.Logger().Warn("geom: invalid scene interval, using default",
			"tMin", o.tMin, "tMax", o.tMax)
		o.tMin, o.tMax = def.tMin, def.tMax
	}

	s := &Scene{tMin: o.tMin, tMax: o.tMax}
	s.Add(o.shapes...)
	return s
}

// Add appends shapes to the scene. Nil shapes are skipped.
func (s *Scene) Add(shapes ...Shape) {
	for _, sh := range shapes {
		if sh == nil {
			polyroot.Logger().Warn("geom: skipping nil shape")
			continue
		}
		s.shapes = append(s.shapes, sh)
		polyroot.Logger().Debug("geom: shape added",
			"kind", fmt.Sprintf("%T", sh), "count", len(s.shapes))
	}
}

// Len returns the number of shapes in the scene.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Interval returns the hit parameter bounds.
func (s *Scene) Interval() (tMin, tMax float64) {
	return s.tMin, s.tMax
}

// Intersect returns the nearest hit along r over all shapes.
func (s *Scene) Intersect(r Ray) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	tMax := s.tMax
	for _, sh := range s.shapes {
		if h, ok := sh.Intersect(r, s.tMin, tMax); ok {
			best = h
			found = true
			tMax = h.T
		}
	}
	return best, found
}
