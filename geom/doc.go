// Package geom intersects rays and lines with analytic surfaces and curves
// using the closed-form solvers in polyroot.
//
// # Shapes
//
//   - [Sphere]: a quadratic in the ray parameter
//   - [Torus]: a quartic in the ray parameter, axis along +Y
//   - [Bezier]: a planar cubic curve, crossed by a line through a cubic
//
// A [Scene] collects shapes and returns the nearest hit along a ray. Once
// built, a Scene may be queried from many goroutines at once; the solvers keep
// no state between calls.
//
// # Coordinate System
//
// Right-handed, Y up. Ray directions need not be unit length; hit parameters
// are expressed in multiples of the direction.
package geom
