package geom

import (
	"errors"
	"math"

	"github.com/gogpu/polyroot"
)

// negligible is the relative size below which a leading power-basis
// coefficient is treated as zero and the curve solved at a lower degree.
const negligible = 1e-12

// Bezier is a planar cubic Bezier curve.
type Bezier struct {
	P0, P1, P2, P3 Vec2
}

// Eval evaluates the curve at parameter t.
func (c Bezier) Eval(t float64) Vec2 {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Vec2{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// LineCrossings returns the curve parameters in [0, 1] at which the curve
// meets the infinite line through origin with direction dir, in ascending
// order. A curve lying on the line yields no crossings.
func (c Bezier) LineCrossings(origin, dir Vec2) ([]float64, error) {
	if dir.X == 0 && dir.Y == 0 {
		return nil, &ShapeError{Shape: "line", Param: "direction length", Value: 0}
	}
	n := dir.Perp()

	// Power basis a*t^3 + b*t^2 + c*t + d, projected onto the line normal.
	d0 := c.P0.Sub(origin).Dot(n)
	d1 := c.P1.Sub(origin).Dot(n)
	d2 := c.P2.Sub(origin).Dot(n)
	d3 := c.P3.Sub(origin).Dot(n)

	coeffs := []float64{
		d0,
		3 * (d1 - d0),
		3 * (d0 - 2*d1 + d2),
		d3 - d0 + 3*(d1-d2),
	}

	return crossings(coeffs)
}

// crossings solves the polynomial at the highest degree whose leading
// coefficient is not negligible and keeps the roots in [0, 1].
func crossings(coeffs []float64) ([]float64, error) {
	var scale float64
	for _, c := range coeffs {
		scale = math.Max(scale, math.Abs(c))
	}
	if scale == 0 {
		return nil, nil
	}

	buf := make([]float64, polyroot.MaxRoots)
	for degree := len(coeffs) - 1; degree >= 1; degree-- {
		if math.Abs(coeffs[degree]) <= negligible*scale {
			coeffs[degree] = 0
		}

		var (
			n   int
			err error
		)
		switch degree {
		case 3:
			n, err = polyroot.SolveCubic(coeffs[:4], buf)
		case 2:
			n, err = polyroot.SolveQuadratic(coeffs[:3], buf)
		case 1:
			if coeffs[1] == 0 {
				return nil, nil
			}
			buf[0] = -coeffs[0] / coeffs[1]
			n = 1
		}
		if errors.Is(err, polyroot.ErrInvalidInput) {
			// Leading coefficient vanished; drop a degree.
			continue
		}
		if err != nil {
			return nil, err
		}
		return polyroot.NewRoots(buf[:n]...).InInterval(0, 1).Sorted().Values(), nil
	}
	return nil, nil
}
