package geom

// Ray is a half-line Origin + t*Dir for t >= 0.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point on the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit describes where a ray meets a shape.
type Hit struct {
	T      float64 // ray parameter of the intersection
	Point  Vec3
	Normal Vec3 // unit outward normal
	Shape  Shape
}

// Shape is a surface that can be intersected by a ray.
// Intersect reports the nearest hit with tMin < T <= tMax.
type Shape interface {
	Intersect(r Ray, tMin, tMax float64) (Hit, bool)
}
