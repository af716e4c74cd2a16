package polyroot

import (
	"math"
	"slices"
)

// MaxRoots is the largest number of real roots any solver can report.
const MaxRoots = 4

// Roots is a fixed-capacity set of real roots returned by value from
// Quadratic, Cubic and Quartic. It never allocates; use Values or AppendTo to
// get a slice.
type Roots[T Float] struct {
	vals [MaxRoots]T
	n    int
}

// Quadratic returns the real roots of c2*x^2 + c1*x + c0.
// c2 must be nonzero; this is not checked (see SolveQuadratic).
func Quadratic[T Float](c0, c1, c2 T) Roots[T] {
	var r Roots[T]
	r.n = solveQuadratic(c0, c1, c2, r.vals[:])
	return r
}

// Cubic returns the real roots of c3*x^3 + c2*x^2 + c1*x + c0.
// c3 must be nonzero; this is not checked (see SolveCubic).
func Cubic[T Float](c0, c1, c2, c3 T) Roots[T] {
	var r Roots[T]
	r.n = solveCubic(c0, c1, c2, c3, r.vals[:])
	return r
}

// Quartic returns the real roots of c4*x^4 + c3*x^3 + c2*x^2 + c1*x + c0.
// c4 must be nonzero; this is not checked (see SolveQuartic).
func Quartic[T Float](c0, c1, c2, c3, c4 T) Roots[T] {
	var r Roots[T]
	r.n = solveQuartic(c0, c1, c2, c3, c4, r.vals[:])
	return r
}

// NewRoots collects vals into a Roots. Values beyond MaxRoots are dropped.
// It lets results of the buffer API use the Roots helpers.
func NewRoots[T Float](vals ...T) Roots[T] {
	var r Roots[T]
	r.n = copy(r.vals[:], vals)
	return r
}

// Len returns the number of roots.
func (r Roots[T]) Len() int {
	return r.n
}

// At returns the i-th root. It panics if i is out of range.
func (r Roots[T]) At(i int) T {
	if i < 0 || i >= r.n {
		panic("polyroot: root index out of range")
	}
	return r.vals[i]
}

// Values returns the roots as a newly allocated slice, or nil if there are none.
func (r Roots[T]) Values() []T {
	if r.n == 0 {
		return nil
	}
	return r.AppendTo(make([]T, 0, r.n))
}

// AppendTo appends the roots to dst and returns the extended slice.
func (r Roots[T]) AppendTo(dst []T) []T {
	return append(dst, r.vals[:r.n]...)
}

// Sorted returns a copy with the roots in ascending order.
func (r Roots[T]) Sorted() Roots[T] {
	slices.Sort(r.vals[:r.n])
	return r
}

// InInterval returns the roots lying in [lo, hi]. NaN roots are dropped.
// Roots within Epsilon outside the interval are clamped onto its boundary,
// which keeps parameter values on curve endpoints from being lost to rounding.
func (r Roots[T]) InInterval(lo, hi T) Roots[T] {
	eps := Epsilon[T]()
	var out Roots[T]
	for _, v := range r.vals[:r.n] {
		if math.IsNaN(float64(v)) || v < lo-eps || v > hi+eps {
			continue
		}
		// Clamp to exact boundary values
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		out.vals[out.n] = v
		out.n++
	}
	return out
}

// Nearest returns the smallest root strictly greater than after.
// The boolean is false when no root qualifies.
func (r Roots[T]) Nearest(after T) (T, bool) {
	var (
		best  T
		found bool
	)
	for _, v := range r.vals[:r.n] {
		if v > after && (!found || v < best) {
			best = v
			found = true
		}
	}
	return best, found
}
