// Command torusdemo ray-traces a torus around a sphere with the closed-form
// quartic and quadratic solvers and saves the result as a PNG.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/polyroot/geom"
	"github.com/gogpu/polyroot/internal/parallel"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "torus.png", "output file")
		workers = flag.Int("workers", 0, "render goroutines (0 = GOMAXPROCS)")
	)
	flag.Parse()

	scene, err := buildScene()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	dc := gg.NewContext(*width, *height)
	img := render(scene, newCamera(*width, *height), *workers)

	for y, row := range img {
		for x, c := range row {
			dc.SetPixel(x, y, c)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Torus saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildScene() (*geom.Scene, error) {
	torus, err := geom.NewTorus(geom.V3(0, 0, 0), 2, 0.6)
	if err != nil {
		return nil, err
	}
	sphere, err := geom.NewSphere(geom.V3(0, 0.2, 0), 1)
	if err != nil {
		return nil, err
	}
	return geom.NewScene(geom.WithShapes(torus, sphere)), nil
}

// camera is a pinhole camera looking at the origin.
type camera struct {
	eye                geom.Vec3
	forward, right, up geom.Vec3
	halfW, halfH       float64
	width, height      int
}

func newCamera(width, height int) camera {
	eye := geom.V3(0, 4.5, 6.5)
	forward := eye.Neg().Normalize()
	right := forward.Cross(geom.V3(0, 1, 0)).Normalize()
	up := right.Cross(forward)

	halfH := math.Tan(35 * math.Pi / 180 / 2)
	halfW := halfH * float64(width) / float64(height)

	return camera{
		eye: eye, forward: forward, right: right, up: up,
		halfW: halfW, halfH: halfH,
		width: width, height: height,
	}
}

func (c camera) ray(x, y int) geom.Ray {
	u := (2*(float64(x)+0.5)/float64(c.width) - 1) * c.halfW
	v := (1 - 2*(float64(y)+0.5)/float64(c.height)) * c.halfH
	dir := c.forward.Add(c.right.Mul(u)).Add(c.up.Mul(v))
	return geom.Ray{Origin: c.eye, Dir: dir.Normalize()}
}

// render traces every pixel, one image row per work item.
func render(scene *geom.Scene, cam camera, workers int) [][]gg.RGBA {
	img := make([][]gg.RGBA, cam.height)

	pool := parallel.NewPool(workers)
	defer pool.Close()

	light := geom.V3(-0.5, 1, 0.8).Normalize()

	pool.Run(cam.height, 1, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := make([]gg.RGBA, cam.width)
			for x := range row {
				row[x] = shade(scene, cam.ray(x, y), light, y, cam.height)
			}
			img[y] = row
		}
	})
	return img
}

func shade(scene *geom.Scene, r geom.Ray, light geom.Vec3, y, height int) gg.RGBA {
	h, ok := scene.Intersect(r)
	if !ok {
		t := float64(y) / float64(height)
		return gg.RGB(0.1+t*0.2, 0.15+t*0.2, 0.3+t*0.2)
	}

	diffuse := math.Max(0, h.Normal.Dot(light))

	// Hard shadow; the origin is lifted off the surface so quartic round-off
	// does not report the starting point as a blocker.
	shadow := geom.Ray{Origin: h.Point.Add(h.Normal.Mul(1e-4)), Dir: light}
	if _, blocked := scene.Intersect(shadow); blocked {
		diffuse *= 0.3
	}

	base := gg.RGB(0.9, 0.55, 0.2)
	if _, isSphere := h.Shape.(geom.Sphere); isSphere {
		base = gg.RGB(0.3, 0.6, 0.9)
	}

	k := 0.15 + 0.85*diffuse
	return gg.RGB(base.R*k, base.G*k, base.B*k)
}
