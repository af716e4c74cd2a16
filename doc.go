// Package polyroot provides closed-form real root solvers for quadratic,
// cubic and quartic polynomials.
//
// # Overview
//
// The solvers follow Jochen Schwarze's Graphics Gems formulation: normalize
// to monic form, depress the polynomial to remove the second-highest term,
// solve the reduced form analytically and shift the roots back. No iteration
// is performed, which makes them suitable for per-pixel ray/surface
// intersection.
//
// # Quick Start
//
//	import "github.com/gogpu/polyroot"
//
//	// x^2 - 5x + 6 = 0, coefficients lowest degree first
//	var roots [2]float64
//	n, err := polyroot.SolveQuadratic([]float64{6, -5, 1}, roots[:])
//	// n == 2, roots hold 3 and 2
//
//	// Allocation-free value form
//	r := polyroot.Quartic(9.0, 0, -10, 0, 1).Sorted()
//	// r.Values() == [-3 -1 1 3]
//
// # Coefficient Order
//
// Coefficients are always ordered lowest degree first: coeffs[n] is the
// leading coefficient of a degree-n polynomial.
//
// # Results
//
// Only real roots are reported, in no particular order. A double root of a
// quadratic or cubic is reported once; the quartic may report a repeated root
// once per quadratic factor. When the polynomial has no real roots the count
// is 0.
//
// # Precision
//
// Solvers are generic over float32 and float64. Near-zero decisions use a
// fixed tolerance per precision, see Epsilon.
//
// # Errors
//
// The slice API (SolveQuadratic, SolveCubic, SolveQuartic) validates its
// input and returns an *InputError matching ErrInvalidInput. The value API
// (Quadratic, Cubic, Quartic) does not validate; a zero leading coefficient
// yields unspecified roots.
package polyroot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
