package geom

import (
	"math"

	"github.com/gogpu/polyroot"
)

// Sphere is a sphere given by its center and radius.
type Sphere struct {
	Center Vec3
	Radius float64
}

// NewSphere returns a sphere, rejecting non-positive or non-finite radii.
func NewSphere(center Vec3, radius float64) (Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Sphere{}, &ShapeError{Shape: "sphere", Param: "radius", Value: radius}
	}
	return Sphere{Center: center, Radius: radius}, nil
}

// Intersect solves |O + tD - C|^2 = r^2 for t.
func (s Sphere) Intersect(r Ray, tMin, tMax float64) (Hit, bool) {
	a := r.Dir.LengthSq()
	if a == 0 {
		return Hit{}, false
	}

	oc := r.Origin.Sub(s.Center)
	roots := polyroot.Quadratic(oc.LengthSq()-s.Radius*s.Radius, 2*oc.Dot(r.Dir), a)

	t, ok := roots.Nearest(tMin)
	if !ok || t > tMax {
		return Hit{}, false
	}

	p := r.At(t)
	return Hit{
		T:      t,
		Point:  p,
		Normal: p.Sub(s.Center).Mul(1 / s.Radius),
		Shape:  s,
	}, true
}
