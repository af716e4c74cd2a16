package polyroot

import "math"

// Polynomial root solvers for quadratic, cubic and quartic equations.
// These are used for ray/surface intersection where a closed form is cheaper
// than iteration.
//
// Based on Jochen Schwarze, "Cubic and Quartic Roots", Graphics Gems I (1990).
//
// Coefficients are ordered lowest degree first: coeffs[n] is the leading
// coefficient of a degree-n polynomial.

// SolveQuadratic finds the real roots of coeffs[2]*x^2 + coeffs[1]*x + coeffs[0] = 0.
// Roots are written to roots starting at index 0 and the number written is
// returned. Entries past the count are left untouched.
//
// An *InputError is returned when coeffs does not hold exactly 3 values,
// when the leading coefficient is zero, or when roots is shorter than 2.
func SolveQuadratic[T Float](coeffs, roots []T) (int, error) {
	if err := validate("SolveQuadratic", 2, coeffs, roots); err != nil {
		return 0, err
	}
	return solveQuadratic(coeffs[0], coeffs[1], coeffs[2], roots), nil
}

// SolveCubic finds the real roots of a cubic with coefficients
// [a0, a1, a2, a3], lowest degree first. See SolveQuadratic for the buffer
// contract; roots must hold at least 3 values.
//
// Multiple roots are reported once: a double root and a single root yield a
// count of 2, a triple root a count of 1.
func SolveCubic[T Float](coeffs, roots []T) (int, error) {
	if err := validate("SolveCubic", 3, coeffs, roots); err != nil {
		return 0, err
	}
	return solveCubic(coeffs[0], coeffs[1], coeffs[2], coeffs[3], roots), nil
}

// SolveQuartic finds the real roots of a quartic with coefficients
// [a0, a1, a2, a3, a4], lowest degree first. See SolveQuadratic for the
// buffer contract; roots must hold at least 4 values.
//
// Roots are not sorted and a repeated root may be reported more than once
// when it belongs to both quadratic factors.
func SolveQuartic[T Float](coeffs, roots []T) (int, error) {
	if err := validate("SolveQuartic", 4, coeffs, roots); err != nil {
		return 0, err
	}
	return solveQuartic(coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4], roots), nil
}

// validate checks the caller contract shared by the buffer API.
func validate[T Float](op string, degree int, coeffs, roots []T) error {
	if len(coeffs) != degree+1 {
		return &InputError{Op: op, Degree: degree, Reason: ReasonCoefficientCount}
	}
	lead := coeffs[degree]
	if lead == 0 || math.IsNaN(float64(lead)) {
		return &InputError{Op: op, Degree: degree, Reason: ReasonZeroLeading}
	}
	if len(roots) < degree {
		return &InputError{Op: op, Degree: degree, Reason: ReasonShortBuffer}
	}
	return nil
}

// solveQuadratic is the unchecked form of SolveQuadratic.
// out must hold 2 values.
func solveQuadratic[T Float](c0, c1, c2 T, out []T) int {
	// Normal form: x^2 + px + q = 0
	p := c1 / (2 * c2)
	q := c0 / c2

	d := p*p - q

	if IsZero(d) {
		out[0] = -p
		return 1
	}
	if d < 0 {
		return 0
	}

	sqrtD := sqrt(d)
	out[0] = sqrtD - p
	out[1] = -sqrtD - p
	return 2
}

// solveCubic is the unchecked form of SolveCubic.
// out must hold 3 values.
func solveCubic[T Float](c0, c1, c2, c3 T, out []T) int {
	const third = 1.0 / 3.0

	// Normal form: x^3 + Ax^2 + Bx + C = 0
	a := c2 / c3
	b := c1 / c3
	c := c0 / c3

	// Substitute x = y - A/3 to eliminate the quadric term:
	// y^3 + 3py + 2q = 0
	sqA := a * a
	p := third * (-third*sqA + b)
	q := 0.5 * (2.0/27.0*a*sqA - third*a*b + c)

	// Cardano
	cbP := p * p * p
	d := q*q + cbP

	var n int
	switch {
	case IsZero(d):
		if IsZero(q) {
			// One triple root
			out[0] = 0
			n = 1
		} else {
			// One single and one double root
			u := cbrt(-q)
			out[0] = 2 * u
			out[1] = -u
			n = 2
		}
	case d < 0:
		// Casus irreducibilis: three real roots
		arg := -q / sqrt(-cbP)
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		phi := third * acos(arg)
		t := 2 * sqrt(-p)
		piThird := T(math.Pi / 3)

		out[0] = t * cos(phi)
		out[1] = -t * cos(phi+piThird)
		out[2] = -t * cos(phi-piThird)
		n = 3
	default:
		// One real root
		sqrtD := sqrt(d)
		u := cbrt(sqrtD - q)
		v := -cbrt(sqrtD + q)
		out[0] = u + v
		n = 1
	}

	// Resubstitute
	sub := third * a
	for i := 0; i < n; i++ {
		out[i] -= sub
	}
	return n
}

// solveQuartic is the unchecked form of SolveQuartic.
// out must hold 4 values.
func solveQuartic[T Float](c0, c1, c2, c3, c4 T, out []T) int {
	// Normal form: x^4 + Ax^3 + Bx^2 + Cx + D = 0
	a := c3 / c4
	b := c2 / c4
	c := c1 / c4
	d := c0 / c4

	// Substitute x = y - A/4 to eliminate the cubic term:
	// y^4 + py^2 + qy + r = 0
	sqA := a * a
	p := -3.0/8.0*sqA + b
	q := 1.0/8.0*sqA*a - 0.5*a*b + c
	r := -3.0/256.0*sqA*sqA + 1.0/16.0*sqA*b - 0.25*a*c + d

	var n int
	if IsZero(r) {
		// No absolute term: y(y^3 + py + q) = 0
		n = solveCubic(q, p, 0, 1, out)
		out[n] = 0
		n++
	} else {
		// Resolvent cubic; its first root is enough to split the quartic.
		var s [3]T
		solveCubic(0.5*r*p-1.0/8.0*q*q, -r, -0.5*p, 1, s[:])
		z := s[0]

		// Two quadratics y^2 -/+ vy + z -/+ u
		u := z*z - r
		v := 2*z - p

		switch {
		case IsZero(u):
			u = 0
		case u > 0:
			u = sqrt(u)
		default:
			return 0
		}

		switch {
		case IsZero(v):
			v = 0
		case v > 0:
			v = sqrt(v)
		default:
			return 0
		}

		// The pairing of -v/+v with the sign of q selects which factor gets
		// which half of the roots.
		m1, m2 := v, -v
		if q < 0 {
			m1, m2 = -v, v
		}

		n = solveQuadratic(z-u, m1, 1, out)
		n += solveQuadratic(z+u, m2, 1, out[n:])
	}

	// Resubstitute
	sub := 0.25 * a
	for i := 0; i < n; i++ {
		out[i] -= sub
	}
	return n
}
