package polyroot

// Eval evaluates the polynomial with coefficients coeffs (lowest degree
// first) at x using Horner's scheme.
func Eval[T Float](coeffs []T, x T) T {
	var sum T
	for i := len(coeffs) - 1; i >= 0; i-- {
		sum = sum*x + coeffs[i]
	}
	return sum
}

// Residual returns |p(x)| relative to the size of the terms that produced it,
// using sum |c_i| * max(1, |x|)^i as the scale. The scale never falls below
// the sum of the coefficient magnitudes, so roots at or near zero are not
// penalized. It returns 0 for the zero polynomial.
func Residual[T Float](coeffs []T, x T) T {
	var (
		scale T
		pow   T = 1
	)
	ax := max(abs(x), 1)
	for _, c := range coeffs {
		scale += abs(c) * pow
		pow *= ax
	}
	if scale == 0 {
		return 0
	}
	return abs(Eval(coeffs, x)) / scale
}

// FromRoots expands lead * (x - roots[0]) * (x - roots[1]) * ... into
// coefficients, lowest degree first.
func FromRoots[T Float](lead T, roots ...T) []T {
	coeffs := make([]T, 1, len(roots)+1)
	coeffs[0] = lead
	for _, r := range roots {
		coeffs = append(coeffs, 0)
		for i := len(coeffs) - 1; i >= 0; i-- {
			var lower T
			if i > 0 {
				lower = coeffs[i-1]
			}
			coeffs[i] = lower - r*coeffs[i]
		}
	}
	return coeffs
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
