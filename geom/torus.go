package geom

import (
	"math"

	"github.com/gogpu/polyroot"
)

// Torus is a ring torus centered at Center with its axis of revolution along
// +Y. Major is the distance from the center to the middle of the tube and
// Minor is the tube radius.
type Torus struct {
	Center Vec3
	Major  float64
	Minor  float64
}

// NewTorus returns a torus, rejecting non-positive or non-finite radii.
func NewTorus(center Vec3, major, minor float64) (Torus, error) {
	if !(major > 0) || math.IsInf(major, 0) {
		return Torus{}, &ShapeError{Shape: "torus", Param: "major radius", Value: major}
	}
	if !(minor > 0) || math.IsInf(minor, 0) {
		return Torus{}, &ShapeError{Shape: "torus", Param: "minor radius", Value: minor}
	}
	return Torus{Center: center, Major: major, Minor: minor}, nil
}

// Intersect substitutes the ray into the implicit surface
//
//	(x^2 + y^2 + z^2 + R^2 - r^2)^2 = 4R^2(x^2 + z^2)
//
// which gives a quartic in t.
func (tr Torus) Intersect(r Ray, tMin, tMax float64) (Hit, bool) {
	o := r.Origin.Sub(tr.Center)
	d := r.Dir

	dd := d.LengthSq()
	if dd == 0 {
		return Hit{}, false
	}

	rr := tr.Minor * tr.Minor
	fourRR := 4 * tr.Major * tr.Major
	e := o.LengthSq() - tr.Major*tr.Major - rr
	f := o.Dot(d)

	roots := polyroot.Quartic(
		e*e-fourRR*(rr-o.Y*o.Y),
		4*f*e+2*fourRR*o.Y*d.Y,
		2*dd*e+4*f*f+fourRR*d.Y*d.Y,
		4*dd*f,
		dd*dd,
	)

	t, ok := roots.Nearest(tMin)
	if !ok || t > tMax {
		return Hit{}, false
	}

	p := r.At(t)
	return Hit{
		T:      t,
		Point:  p,
		Normal: tr.normal(p.Sub(tr.Center)),
		Shape:  tr,
	}, true
}

// normal returns the unit gradient of the implicit surface at local point p.
func (tr Torus) normal(p Vec3) Vec3 {
	k := p.LengthSq() + tr.Major*tr.Major - tr.Minor*tr.Minor
	radial := k - 2*tr.Major*tr.Major
	return Vec3{X: p.X * radial, Y: p.Y * k, Z: p.Z * radial}.Normalize()
}
